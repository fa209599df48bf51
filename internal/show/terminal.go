package show

import (
	"os"

	"golang.org/x/term"
)

const (
	enterScreen = "\x1b[?1049h\x1b[?25l\x1b[2J"
	leaveScreen = "\x1b[?1049l\x1b[?25h"
	cursorHome  = "\x1b[H"

	defaultCols = 80
	defaultRows = 24
)

// Terminal wraps raw-mode setup, size discovery, and restoration around the
// render loop.
type Terminal struct {
	fd    int
	saved *term.State
}

func NewTerminal() *Terminal {
	return &Terminal{fd: int(os.Stdin.Fd())}
}

func (t *Terminal) Raw() error {
	st, err := term.MakeRaw(t.fd)
	if err != nil {
		return err
	}
	t.saved = st
	return nil
}

func (t *Terminal) Restore() {
	if t.saved != nil {
		term.Restore(t.fd, t.saved)
		t.saved = nil
	}
}

// Size returns terminal columns and rows, falling back to 80x24 when
// discovery fails.
func (t *Terminal) Size() (int, int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return defaultCols, defaultRows
	}
	return cols, rows
}
