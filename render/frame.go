package render

import (
	"strings"

	"github.com/lixenwraith/road-fighter/core"
)

// Cell is one composited character with its resolved color
type Cell struct {
	Rune  rune
	Color core.Color
}

// blankCell is the fill of a cleared frame
var blankCell = Cell{Rune: ' ', Color: core.ColorWhite}

// Frame is a height x width character buffer with a parallel color per cell
// Row-major; out-of-bounds writes are dropped
type Frame struct {
	cells  []Cell
	width  int
	height int
}

// NewFrame creates a cleared frame with the specified dimensions
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Resize adjusts frame dimensions, reallocates only if capacity insufficient
func (f *Frame) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(f.cells) < size {
		f.cells = make([]Cell, size)
	} else {
		f.cells = f.cells[:size]
	}
	f.width = width
	f.height = height
	f.Clear()
}

// Clear resets all cells to spaces using exponential copy
func (f *Frame) Clear() {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = blankCell
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
}

// Bounds returns frame dimensions
func (f *Frame) Bounds() (width, height int) {
	return f.width, f.height
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Set writes a cell, replacing whatever was composited there
func (f *Frame) Set(x, y int, r rune, c core.Color) {
	if !f.inBounds(x, y) {
		return
	}
	f.cells[y*f.width+x] = Cell{Rune: r, Color: c}
}

// Get returns the cell at (x, y); a blank cell when out of bounds
func (f *Frame) Get(x, y int) Cell {
	if !f.inBounds(x, y) {
		return blankCell
	}
	return f.cells[y*f.width+x]
}

// SetString writes s left to right starting at (x, y), clipped to the frame
func (f *Frame) SetString(x, y int, s string, c core.Color) {
	for _, r := range s {
		f.Set(x, y, r, c)
		x++
	}
}

// Blit copies src onto the frame with its top-left at (ox, oy)
func (f *Frame) Blit(src *Frame, ox, oy int) {
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			f.Set(ox+x, oy+y, src.cells[y*src.width+x].Rune, src.cells[y*src.width+x].Color)
		}
	}
}

// Row returns the characters of row y
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.height {
		return ""
	}
	var sb strings.Builder
	sb.Grow(f.width)
	for _, c := range f.cells[y*f.width : (y+1)*f.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns all rows joined by newlines
func (f *Frame) String() string {
	rows := make([]string, f.height)
	for y := range rows {
		rows[y] = f.Row(y)
	}
	return strings.Join(rows, "\n")
}
