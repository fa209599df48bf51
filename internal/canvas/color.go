package canvas

import "fmt"

// Color is a tagged value: either one of the eight standard palette colors or
// an explicit 24-bit literal. The zero value is palette black.
type Color struct {
	truecolor bool
	index     uint8
	r, g, b   uint8
}

// Palette colors, matching the standard SGR 30-37 foreground codes.
const (
	Black uint8 = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

func Palette(index uint8) Color {
	return Color{index: index & 7}
}

func RGB(r, g, b uint8) Color {
	return Color{truecolor: true, r: r, g: g, b: b}
}

func (c Color) escape() string {
	if c.truecolor {
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.r, c.g, c.b)
	}
	return fmt.Sprintf("\x1b[3%dm", c.index)
}
