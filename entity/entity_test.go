package entity

import (
	"testing"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/core"
)

var testField = core.Playfield{Width: 40, Height: 20}

func carGlyph() core.GlyphGrid {
	return core.NewGlyphGrid([]string{
		" _/^\\_ ",
		"|_____|",
		" x---x ",
	})
}

func TestObstacleWrapInvariant(t *testing.T) {
	glyphs := []core.GlyphGrid{
		core.NewGlyphGrid([]string{"#"}),
		core.NewGlyphGrid([]string{"####", "#  #"}),
		core.NewGlyphGrid([]string{"  ^  ", " /|\\ ", "  |"}),
	}

	for _, g := range glyphs {
		e := NewObstacle("tree", 5, 10, g, nil, core.ColorRed)
		for tick := 0; tick < 200; tick++ {
			if !e.Update(testField) {
				t.Fatal("Expected obstacle to never leave the list")
			}
			if e.X+float64(e.Width) < 2 {
				t.Fatalf("Tick %d: x+width=%v below wrap margin", tick, e.X+float64(e.Width))
			}
		}
	}
}

func TestObstacleWrapsToRightEdge(t *testing.T) {
	e := NewObstacle("wall", 1, 10, core.NewGlyphGrid([]string{"#"}), nil, core.ColorRed)
	e.Update(testField)
	if e.X != float64(testField.Width) {
		t.Errorf("Expected wrap to x=%d, got %v", testField.Width, e.X)
	}
}

func TestBombSawtooth(t *testing.T) {
	e := NewBomb("bomb", 30, 2, core.NewGlyphGrid([]string{"o", "V"}), nil, core.ColorYellow)

	limit := float64(testField.Height - constants.GroundClearance)
	resets := 0
	prevY := e.Y
	for tick := 0; tick < 100; tick++ {
		e.Update(testField)
		if e.Y+float64(e.Height) > limit {
			t.Fatalf("Tick %d: bomb below ground line at y=%v", tick, e.Y)
		}
		if e.Y < prevY {
			resets++
			if e.Y != constants.BombResetY {
				t.Errorf("Expected reset to y=%v, got %v", constants.BombResetY, e.Y)
			}
		}
		prevY = e.Y
	}
	if resets == 0 {
		t.Error("Expected bomb to reset at least once in 100 ticks")
	}
}

func TestProjectileLeavesRightEdge(t *testing.T) {
	e := NewProjectile(34, 5, core.NewGlyphGrid([]string{"-"}), nil, core.ColorRed)

	if !e.Update(testField) { // 36
		t.Fatal("Expected projectile to survive at x=36")
	}
	if !e.Update(testField) { // 38
		t.Fatal("Expected projectile to survive at x=38")
	}
	if e.Update(testField) { // 40 >= 39
		t.Error("Expected projectile to be removed past the right edge")
	}
}

func TestCarGroundsOnFirstTick(t *testing.T) {
	car := NewCar(constants.CarStartX, constants.CarStartY, carGlyph(), nil, core.ColorMagenta)
	if car.Height != constants.CarHeight {
		t.Fatalf("Expected ride height %d, got %d", constants.CarHeight, car.Height)
	}
	if car.Width != 7 {
		t.Fatalf("Expected width 7, got %d", car.Width)
	}

	car.Update(testField)
	if car.Y != 14 {
		t.Errorf("Expected grounded y=14, got %v", car.Y)
	}
}

func TestCarAscentReturnsAfterTwentyTicks(t *testing.T) {
	car := NewCar(10, 14, carGlyph(), nil, core.ColorMagenta)
	car.Update(testField)
	ground := car.Y

	car.GoUp()
	peak := ground
	for tick := 1; tick <= 20; tick++ {
		car.Update(testField)
		if tick < 20 && car.AscentLevel != constants.AscentLevelMax {
			t.Fatalf("Tick %d: expected ascent level %d, got %d", tick, constants.AscentLevelMax, car.AscentLevel)
		}
		if car.Y < peak {
			peak = car.Y
		}
	}

	if car.Y != ground {
		t.Errorf("Expected car back at y=%v, got %v", ground, car.Y)
	}
	if car.AscentLevel != 0 || car.AscentPhase != 0 {
		t.Errorf("Expected ascent reset, got level=%d phase=%d", car.AscentLevel, car.AscentPhase)
	}
	if peak != ground-6 {
		t.Errorf("Expected peak 6 rows above ground, got %v", ground-peak)
	}
}

func TestCarGoUpIgnoredMidJump(t *testing.T) {
	car := NewCar(10, 14, carGlyph(), nil, core.ColorMagenta)
	car.GoUp()
	for i := 0; i < 5; i++ {
		car.Update(testField)
	}
	car.GoUp()
	if car.AscentPhase != 5 {
		t.Errorf("Expected phase to continue at 5, got %d", car.AscentPhase)
	}
}

func TestCarGoDownRules(t *testing.T) {
	car := NewCar(10, 14, carGlyph(), nil, core.ColorMagenta)
	car.GoUp()
	car.Update(testField)

	car.GoDown(DescentNone)
	if car.AscentLevel != constants.AscentLevelMax {
		t.Errorf("Expected baseline go-down to be a no-op, level=%d", car.AscentLevel)
	}

	for want := constants.AscentLevelMax - 1; want >= 0; want-- {
		car.GoDown(DescentGraduated)
		if car.AscentLevel != want {
			t.Errorf("Expected level %d, got %d", want, car.AscentLevel)
		}
	}
	car.GoDown(DescentGraduated)
	if car.AscentLevel != 0 {
		t.Errorf("Expected level to stay at 0, got %d", car.AscentLevel)
	}

	car.Update(testField)
	if car.Y != car.GroundY(testField) {
		t.Errorf("Expected car to land after descent, y=%v", car.Y)
	}
}

func TestCarWheelAnimation(t *testing.T) {
	car := NewCar(10, 14, carGlyph(), nil, core.ColorMagenta)

	wheelChars := func() (rune, rune) {
		var left, right rune
		car.Cells(func(r, c int, ch rune) {
			if r == constants.WheelRow && c == constants.WheelLeft {
				left = ch
			}
			if r == constants.WheelRow && c == constants.WheelRight {
				right = ch
			}
		})
		return left, right
	}

	l, r := wheelChars()
	if l != 'x' || r != 'x' {
		t.Fatalf("Expected initial wheels 'x', got %q %q", l, r)
	}

	car.Update(testField)
	l, r = wheelChars()
	if l != '+' || r != '+' {
		t.Errorf("Expected wheels '+', got %q %q", l, r)
	}

	car.Update(testField)
	l, r = wheelChars()
	if l != 'x' || r != 'x' {
		t.Errorf("Expected wheels back to 'x', got %q %q", l, r)
	}

	// Glyph itself is never modified
	if ch, _ := car.Glyph.At(constants.WheelRow, constants.WheelLeft); ch != 'x' {
		t.Errorf("Expected source glyph untouched, got %q", ch)
	}
}

func TestCarWithoutWheelCells(t *testing.T) {
	car := NewCar(0, 0, core.NewGlyphGrid([]string{"C"}), nil, core.ColorMagenta)
	car.Update(testField)

	count := 0
	car.Cells(func(r, c int, ch rune) {
		count++
		if ch != 'C' {
			t.Errorf("Expected 'C', got %q", ch)
		}
	})
	if count != 1 {
		t.Errorf("Expected 1 cell, got %d", count)
	}
}

func TestExplosionBlinks(t *testing.T) {
	e := NewExplosion(core.Point{X: 3, Y: 4})
	if !e.Blink {
		t.Fatal("Expected explosion to start visible")
	}
	for i := 0; i < 4; i++ {
		want := i%2 == 1
		if !e.Update(testField) {
			t.Fatal("Expected explosion to stay in the list")
		}
		if e.Blink != want {
			t.Errorf("Tick %d: expected blink=%v, got %v", i, want, e.Blink)
		}
	}
	if e.Collidable() {
		t.Error("Expected explosion to be excluded from collisions")
	}
}

func TestRoadShape(t *testing.T) {
	road := NewRoad(testField)

	if road.Y != 17 || road.X != 0 {
		t.Errorf("Expected road at (0,17), got (%v,%v)", road.X, road.Y)
	}
	if road.Width != testField.Width || road.Height != 3 {
		t.Errorf("Expected 40x3 road, got %dx%d", road.Width, road.Height)
	}
	if ch, _ := road.Glyph.At(0, 39); ch != '-' {
		t.Errorf("Expected surface '-', got %q", ch)
	}
	if ch, _ := road.Glyph.At(2, 0); ch != '%' {
		t.Errorf("Expected fill '%%', got %q", ch)
	}

	x, y := road.X, road.Y
	road.Update(testField)
	if road.X != x || road.Y != y {
		t.Error("Expected road to stay put")
	}
	if road.Collidable() {
		t.Error("Expected road to be excluded from collisions")
	}
}

func TestCellsIncludeSpaces(t *testing.T) {
	e := NewObstacle("house", 0, 0, core.NewGlyphGrid([]string{"# #"}), nil, core.ColorRed)
	count := 0
	e.Cells(func(r, c int, ch rune) { count++ })
	if count != 3 {
		t.Errorf("Expected spaces to count as cells (3), got %d", count)
	}
}

func TestColorAt(t *testing.T) {
	colors := core.ParseColorGrid("gr")
	e := NewObstacle("tree", 0, 0, core.NewGlyphGrid([]string{"abc"}), colors, core.ColorBlue)

	tests := []struct {
		col  int
		want core.Color
	}{
		{0, core.ColorGreen},
		{1, core.ColorRed},
		{2, core.ColorBlue}, // beyond the color row: base color
	}
	for _, tt := range tests {
		if got := e.ColorAt(0, tt.col); got != tt.want {
			t.Errorf("ColorAt(0,%d): expected %v, got %v", tt.col, tt.want, got)
		}
	}
}

func TestParseDescentRule(t *testing.T) {
	tests := []struct {
		in   string
		want DescentRule
		ok   bool
	}{
		{"", DescentNone, true},
		{"none", DescentNone, true},
		{"graduated", DescentGraduated, true},
		{"steep", DescentNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseDescentRule(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDescentRule(%q): expected (%v,%v), got (%v,%v)", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}
