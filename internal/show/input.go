package show

import (
	"io"
	"sync"
)

// Keyboard holds at most the last key pressed. A key overwritten before the
// next poll is lost; there is no buffering beyond the single slot.
type Keyboard struct {
	mu  sync.Mutex
	key byte
	set bool
}

// Listen reads bytes until the reader fails. Run it in a goroutine; it exits
// with the process once stdin is torn down.
func (k *Keyboard) Listen(r io.Reader) {
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			k.mu.Lock()
			k.key = buf[0]
			k.set = true
			k.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Poll returns the pending key, if any, and clears the slot. Never blocks.
func (k *Keyboard) Poll() (byte, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.set {
		return 0, false
	}
	k.set = false
	return k.key, true
}
