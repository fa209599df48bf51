package countdown

import (
	"testing"
	"time"
)

func fixedClock(target time.Time, now time.Time) *Clock {
	return NewAt(target, func() time.Time { return now })
}

func TestStatusCountingDown(t *testing.T) {
	target := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	c := fixedClock(target, target.Add(-(time.Hour + 2*time.Minute + 3*time.Second)))

	display, open := c.Status()

	if open {
		t.Fatal("gate reported open before the target")
	}
	if display != "01:02:03" {
		t.Errorf("expected 01:02:03, got %q", display)
	}
}

func TestStatusLongCountdown(t *testing.T) {
	target := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	c := fixedClock(target, target.Add(-30*time.Hour))

	display, open := c.Status()

	if open {
		t.Fatal("gate reported open before the target")
	}
	// Hours roll past 24 rather than into days.
	if display != "30:00:00" {
		t.Errorf("expected 30:00:00, got %q", display)
	}
}

func TestStatusAtTarget(t *testing.T) {
	target := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	c := fixedClock(target, target)

	display, open := c.Status()

	if !open {
		t.Fatal("gate must open at exactly the target instant")
	}
	if display != "2027" {
		t.Errorf("expected target year, got %q", display)
	}
}

func TestStatusPastTarget(t *testing.T) {
	target := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	c := fixedClock(target, target.Add(48*time.Hour))

	display, open := c.Status()

	if !open || display != "2027" {
		t.Errorf("expected open gate showing 2027, got %q open=%v", display, open)
	}
}

func TestStatusZeroPadding(t *testing.T) {
	target := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	c := fixedClock(target, target.Add(-5*time.Second))

	display, _ := c.Status()

	if display != "00:00:05" {
		t.Errorf("expected 00:00:05, got %q", display)
	}
}
