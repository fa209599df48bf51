// Package countdown supplies the wall-clock gate for the show: a display
// string and an "open" flag, recomputed each tick. The simulation core never
// does calendar arithmetic itself.
package countdown

import (
	"fmt"
	"time"
)

type Clock struct {
	target time.Time
	now    func() time.Time
}

func New(target time.Time) *Clock {
	return &Clock{target: target, now: time.Now}
}

// NewAt pins the clock source; used by tests.
func NewAt(target time.Time, now func() time.Time) *Clock {
	return &Clock{target: target, now: now}
}

// Status returns the HH:MM:SS remaining until the target and whether the
// target has been reached. Once reached, the display switches to the target
// year.
func (c *Clock) Status() (string, bool) {
	diff := c.target.Sub(c.now())
	if diff <= 0 {
		return fmt.Sprintf("%d", c.target.Year()), true
	}
	total := int(diff.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60), false
}
