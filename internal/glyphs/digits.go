// Package glyphs holds the static pixel patterns for the countdown overlay:
// seven-segment style digits, 22 pixels tall, drawn straight onto the canvas.
package glyphs

import (
	"github.com/avensel/skyburst/internal/canvas"
)

const (
	// Height of every pattern in pixels.
	Height = 22
	// Spacing between characters in pixels.
	Spacing = 3
)

// Segment rows for the 11-pixel-wide digits.
const (
	rowFull  = "###########"
	rowBoth  = "##       ##"
	rowLeft  = "##         "
	rowRight = "         ##"
)

func repeatRow(row string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = row
	}
	return out
}

func stack(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var patterns = map[rune][]string{
	'0': stack(repeatRow(rowFull, 2), repeatRow(rowBoth, 18), repeatRow(rowFull, 2)),
	'1': repeatRow(rowRight, 22),
	'2': stack(repeatRow(rowFull, 2), repeatRow(rowRight, 8), repeatRow(rowFull, 2), repeatRow(rowLeft, 8), repeatRow(rowFull, 2)),
	'3': stack(repeatRow(rowFull, 2), repeatRow(rowRight, 8), repeatRow(rowFull, 2), repeatRow(rowRight, 8), repeatRow(rowFull, 2)),
	'4': stack(repeatRow(rowBoth, 10), repeatRow(rowFull, 2), repeatRow(rowRight, 10)),
	'5': stack(repeatRow(rowFull, 2), repeatRow(rowLeft, 8), repeatRow(rowFull, 2), repeatRow(rowRight, 8), repeatRow(rowFull, 2)),
	'6': stack(repeatRow(rowFull, 2), repeatRow(rowLeft, 8), repeatRow(rowFull, 2), repeatRow(rowBoth, 8), repeatRow(rowFull, 2)),
	'7': stack(repeatRow(rowFull, 2), repeatRow(rowRight, 20)),
	'8': stack(repeatRow(rowFull, 2), repeatRow(rowBoth, 8), repeatRow(rowFull, 2), repeatRow(rowBoth, 8), repeatRow(rowFull, 2)),
	'9': stack(repeatRow(rowFull, 2), repeatRow(rowBoth, 8), repeatRow(rowFull, 2), repeatRow(rowRight, 8), repeatRow(rowFull, 2)),
	':': stack(repeatRow("    ", 5), repeatRow(" ## ", 2), repeatRow("    ", 6), repeatRow(" ## ", 2), repeatRow("    ", 7)),
}

// Width returns the pixel width of the rendered text including spacing.
func Width(text string) int {
	total := 0
	for _, r := range text {
		if p, ok := patterns[r]; ok && len(p) > 0 {
			total += len(p[0]) + Spacing
		}
	}
	return total
}

// Overlay plots the text centered on the canvas in the given color.
// Characters without a pattern take no space. Pixels falling outside the
// canvas are clipped by Plot.
func Overlay(c *canvas.Canvas, text string, color canvas.Color) {
	total := Width(text)
	if total == 0 {
		return
	}
	startX := (c.Width - total) / 2
	startY := (c.Height - Height) / 2

	x := startX
	for _, r := range text {
		p, ok := patterns[r]
		if !ok || len(p) == 0 {
			continue
		}
		var pts []canvas.Point
		for dy, row := range p {
			for dx := 0; dx < len(row); dx++ {
				if row[dx] != ' ' {
					pts = append(pts, canvas.Point{X: x + dx, Y: startY + dy})
				}
			}
		}
		c.Plot(color, pts)
		x += len(p[0]) + Spacing
	}
}
