package core

import "strings"

// GlyphGrid is an immutable, possibly ragged grid of single-width characters
// Width is the longest row; Height is the row count
type GlyphGrid struct {
	rows  [][]rune
	width int
}

// NewGlyphGrid copies rows into a new grid
func NewGlyphGrid(rows []string) GlyphGrid {
	g := GlyphGrid{rows: make([][]rune, len(rows))}
	for i, r := range rows {
		g.rows[i] = []rune(r)
		if len(g.rows[i]) > g.width {
			g.width = len(g.rows[i])
		}
	}
	return g
}

// ParseGlyphGrid splits newline separated text into a grid, dropping a trailing newline
func ParseGlyphGrid(text string) GlyphGrid {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return GlyphGrid{}
	}
	return NewGlyphGrid(strings.Split(text, "\n"))
}

func (g GlyphGrid) Width() int  { return g.width }
func (g GlyphGrid) Height() int { return len(g.rows) }

// Empty reports a grid with no rows
func (g GlyphGrid) Empty() bool { return len(g.rows) == 0 }

// RowLen returns the length of row r, 0 when out of range
func (g GlyphGrid) RowLen(r int) int {
	if r < 0 || r >= len(g.rows) {
		return 0
	}
	return len(g.rows[r])
}

// At returns the character at (r, c)
func (g GlyphGrid) At(r, c int) (rune, bool) {
	if r < 0 || r >= len(g.rows) || c < 0 || c >= len(g.rows[r]) {
		return 0, false
	}
	return g.rows[r][c], true
}

// String renders the grid back to newline separated text
func (g GlyphGrid) String() string {
	lines := make([]string, len(g.rows))
	for i, r := range g.rows {
		lines[i] = string(r)
	}
	return strings.Join(lines, "\n")
}

// ColorGrid is a per-cell color override parallel to a GlyphGrid
// A nil ColorGrid means the entity's base color applies everywhere
type ColorGrid struct {
	rows [][]Color
}

// ParseColorGrid decodes color shorthand text, one code per cell
func ParseColorGrid(text string) *ColorGrid {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	cg := &ColorGrid{rows: make([][]Color, len(lines))}
	for i, line := range lines {
		row := make([]Color, 0, len(line))
		for _, code := range line {
			row = append(row, ParseColorCode(code))
		}
		cg.rows[i] = row
	}
	return cg
}

// At returns the override at (r, c); false if the grid is nil or has no such cell
func (cg *ColorGrid) At(r, c int) (Color, bool) {
	if cg == nil || r < 0 || r >= len(cg.rows) || c < 0 || c >= len(cg.rows[r]) {
		return ColorWhite, false
	}
	return cg.rows[r][c], true
}
