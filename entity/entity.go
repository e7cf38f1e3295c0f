package entity

import (
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/core"
)

// ID is assigned by the simulation when an entity joins the list
type ID uint64

// Entity is a tagged variant over Kind; only the fields of its kind are meaningful
type Entity struct {
	ID   ID
	Kind Kind
	Name string // Texture or track kind the entity was built from

	// Position is fractional; rounded at paint and collision time
	X, Y float64

	Glyph  core.GlyphGrid
	Colors *core.ColorGrid // Optional per-cell override of Color
	Color  core.Color

	// Fixed at construction from the glyph (Car height is its ride height)
	Width, Height int

	// Car
	AscentPhase int
	AscentLevel int
	wheels      []wheel

	// Explosion
	Blink bool
}

// wheel is a glyph cell whose character the car animates every tick
type wheel struct {
	row, col int
	ch       rune
}

func newGlyphEntity(kind Kind, name string, x, y float64, glyph core.GlyphGrid, colors *core.ColorGrid, color core.Color) *Entity {
	return &Entity{
		Kind:   kind,
		Name:   name,
		X:      x,
		Y:      y,
		Glyph:  glyph,
		Colors: colors,
		Color:  color,
		Width:  glyph.Width(),
		Height: glyph.Height(),
	}
}

// NewObstacle creates a scrolling obstacle (tree, wall, hole, house, cloud)
func NewObstacle(name string, x, y float64, glyph core.GlyphGrid, colors *core.ColorGrid, color core.Color) *Entity {
	return newGlyphEntity(KindObstacle, name, x, y, glyph, colors, color)
}

// NewBomb creates a scrolling bomb that also falls
func NewBomb(name string, x, y float64, glyph core.GlyphGrid, colors *core.ColorGrid, color core.Color) *Entity {
	return newGlyphEntity(KindBomb, name, x, y, glyph, colors, color)
}

// NewProjectile creates a projectile travelling right
func NewProjectile(x, y float64, glyph core.GlyphGrid, colors *core.ColorGrid, color core.Color) *Entity {
	return newGlyphEntity(KindProjectile, constants.ProjectileTexture, x, y, glyph, colors, color)
}

// NewCar creates the player car
// Height is the ride height, never less than the glyph itself
func NewCar(x, y float64, glyph core.GlyphGrid, colors *core.ColorGrid, color core.Color) *Entity {
	e := newGlyphEntity(KindCar, constants.CarTexture, x, y, glyph, colors, color)
	e.Height = max(constants.CarHeight, glyph.Height())
	for _, col := range []int{constants.WheelLeft, constants.WheelRight} {
		if ch, ok := glyph.At(constants.WheelRow, col); ok {
			e.wheels = append(e.wheels, wheel{row: constants.WheelRow, col: col, ch: ch})
		}
	}
	return e
}

// NewRoad creates the full-width road strip along the bottom of the playfield
func NewRoad(pf core.Playfield) *Entity {
	rows := make([]string, constants.RoadRows)
	fill := []rune{constants.RoadSurface, constants.RoadFill, constants.RoadFill}
	for i := range rows {
		row := make([]rune, pf.Width)
		for j := range row {
			row[j] = fill[min(i, len(fill)-1)]
		}
		rows[i] = string(row)
	}
	return newGlyphEntity(KindRoad, "road", 0, float64(pf.Height-constants.RoadRows), core.NewGlyphGrid(rows), nil, core.ColorRed)
}

// NewExplosion creates a blinking marker at an absolute cell
func NewExplosion(p core.Point) *Entity {
	return &Entity{
		Kind:   KindExplosion,
		Name:   "explosion",
		X:      float64(p.X),
		Y:      float64(p.Y),
		Color:  core.ColorYellow,
		Width:  1,
		Height: 1,
		Blink:  true,
	}
}

// Position returns the rounded top-left cell
func (e *Entity) Position() core.Point {
	return core.Point{X: core.Round(e.X), Y: core.Round(e.Y)}
}

// Collidable reports whether the entity takes part in collision checks
// Road and explosions never do
func (e *Entity) Collidable() bool {
	return e.Kind != KindRoad && e.Kind != KindExplosion
}

// Grounded reports whether the car is not in a jump
func (e *Entity) Grounded() bool {
	return e.AscentLevel == 0
}

// Cells visits every glyph cell with its current character
// Spaces are reported like any other character
func (e *Entity) Cells(fn func(row, col int, ch rune)) {
	if e.Kind == KindExplosion {
		fn(0, 0, constants.BlinkRuneOn)
		return
	}
	for r := 0; r < e.Glyph.Height(); r++ {
		for c := 0; c < e.Glyph.RowLen(r); c++ {
			ch, _ := e.Glyph.At(r, c)
			fn(r, c, e.wheelAt(r, c, ch))
		}
	}
}

// ColorAt resolves the color of glyph cell (row, col)
func (e *Entity) ColorAt(row, col int) core.Color {
	if c, ok := e.Colors.At(row, col); ok {
		return c
	}
	return e.Color
}

func (e *Entity) wheelAt(r, c int, ch rune) rune {
	for _, w := range e.wheels {
		if w.row == r && w.col == c {
			return w.ch
		}
	}
	return ch
}
