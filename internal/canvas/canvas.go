package canvas

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleOffset = 0x2800

// Point is a sub-pixel coordinate on the canvas.
type Point struct {
	X, Y int
}

// Cell is one character cell: an 8-dot mask plus the color of the last plot
// that touched it. Colors are not blended within a cell.
type Cell struct {
	Mask  uint8
	Color Color
}

// Canvas packs sub-pixel plots into braille cells. Width and Height are in
// pixels; the character grid is ceil(Width/2) x ceil(Height/4).
type Canvas struct {
	Width, Height int
	Cols, Rows    int
	cells         [][]Cell
}

func New(width, height int, fill Color) *Canvas {
	c := &Canvas{
		Width:  width,
		Height: height,
		Cols:   (width + 1) / 2,
		Rows:   (height + 3) / 4,
	}
	c.cells = make([][]Cell, c.Rows)
	for i := range c.cells {
		c.cells[i] = make([]Cell, c.Cols)
	}
	c.Clear(fill)
	return c
}

// Clear resets every cell to an empty mask with the given color. The color
// becomes the fill for all cells left empty until the next Clear.
func (c *Canvas) Clear(fill Color) {
	for i := range c.cells {
		row := c.cells[i]
		for j := range row {
			row[j] = Cell{Color: fill}
		}
	}
}

// Cell returns the cell at character coordinates (row, col).
func (c *Canvas) Cell(row, col int) Cell {
	return c.cells[row][col]
}

// Plot sets the dot for every in-bounds point and stamps the cell with color.
// Out-of-bounds points are clipped silently. Dot bits are only ever OR-ed in;
// the last plotted color wins per cell.
func (c *Canvas) Plot(color Color, points []Point) {
	for _, p := range points {
		if p.X < 0 || p.X >= c.Width || p.Y < 0 || p.Y >= c.Height {
			continue
		}
		cell := &c.cells[p.Y>>2][p.X>>1]
		cell.Mask |= dotBits[p.Y&3][p.X&1]
		cell.Color = color
	}
}

// LinePoints walks a line from (x0, y0) to (x1, y1) with Bresenham's
// algorithm, both endpoints inclusive. A degenerate line yields one point.
func LinePoints(x0, y0, x1, y1 int) []Point {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	pts := make([]Point, 0, max(dx, dy)+1)
	for {
		pts = append(pts, Point{x0, y0})
		if x0 == x1 && y0 == y1 {
			return pts
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Line draws a line between two points in the given color.
func (c *Canvas) Line(x0, y0, x1, y1 int, color Color) {
	c.Plot(color, LinePoints(x0, y0, x1, y1))
}

const (
	reset = "\x1b[0m"
	// Moves to the start of the next line without scrolling, so a full frame
	// can overwrite the previous one in place.
	rowSeparator = "\r\x1b[B"
)

// Render serializes the canvas with run-length color compression: a color
// escape is emitted only when the color changes along a row, preceded by a
// reset for every switch after the first. Each glyph is the braille base
// code point plus the cell's dot mask.
func (c *Canvas) Render() string {
	var b strings.Builder
	b.Grow(c.Rows * c.Cols * 4)
	for i, row := range c.cells {
		if i > 0 {
			b.WriteString(rowSeparator)
		}
		var current Color
		colored := false
		for _, cell := range row {
			if !colored || cell.Color != current {
				if colored {
					b.WriteString(reset)
				}
				b.WriteString(cell.Color.escape())
				current = cell.Color
				colored = true
			}
			b.WriteRune(rune(brailleOffset + int(cell.Mask)))
		}
		if colored {
			b.WriteString(reset)
		}
	}
	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
