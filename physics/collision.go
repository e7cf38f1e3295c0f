package physics

import (
	"sort"

	"github.com/lixenwraith/road-fighter/core"
	"github.com/lixenwraith/road-fighter/entity"
)

// CellSet is a set of absolute playfield cells
type CellSet map[core.Point]struct{}

// Has reports membership
func (s CellSet) Has(p core.Point) bool {
	_, ok := s[p]
	return ok
}

// Sorted returns the cells ordered by row then column
func (s CellSet) Sorted() []core.Point {
	out := make([]core.Point, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// OccupiedCells returns every absolute cell covered by the entity's glyph
// Every character counts, spaces included; recomputed on each call
func OccupiedCells(e *entity.Entity) CellSet {
	pos := e.Position()
	cells := make(CellSet, e.Width*e.Glyph.Height()+1)
	e.Cells(func(row, col int, _ rune) {
		cells[core.Point{X: pos.X + col, Y: pos.Y + row}] = struct{}{}
	})
	return cells
}

// Intersect returns the cells both entities occupy
func Intersect(a, b *entity.Entity) CellSet {
	ca, cb := OccupiedCells(a), OccupiedCells(b)
	if len(cb) < len(ca) {
		ca, cb = cb, ca
	}
	out := make(CellSet)
	for p := range ca {
		if cb.Has(p) {
			out[p] = struct{}{}
		}
	}
	return out
}

// Collides reports overlap between a collidable mover and a target
// Road and explosions never collide
func Collides(a, b *entity.Entity) bool {
	if !a.Collidable() || !b.Collidable() {
		return false
	}
	return len(Intersect(a, b)) > 0
}
