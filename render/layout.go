package render

import (
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/core"
)

// Layout places the bordered playfield window and the text box beneath it on screen
type Layout struct {
	ScreenWidth  int
	ScreenHeight int

	// Playfield is the interior of the window; entity (0,0) lands on Origin
	Playfield core.Playfield
	Origin    core.Point

	// BoxY is the first screen row of the text box
	BoxY int
}

// LayoutForScreen fits the largest playfield into a cols x lines terminal
func LayoutForScreen(cols, lines int) Layout {
	pf := core.Playfield{
		Width:  max(cols-2*constants.BorderSize, 0),
		Height: max(lines-constants.StatusBoxHeight-2*constants.BorderSize, 0),
	}
	return LayoutForPlayfield(pf)
}

// LayoutForPlayfield returns the screen layout needed to show pf in full
func LayoutForPlayfield(pf core.Playfield) Layout {
	windowHeight := pf.Height + 2*constants.BorderSize
	return Layout{
		ScreenWidth:  pf.Width + 2*constants.BorderSize,
		ScreenHeight: windowHeight + constants.StatusBoxHeight,
		Playfield:    pf,
		Origin:       core.Point{X: constants.BorderSize, Y: constants.BorderSize},
		BoxY:         windowHeight,
	}
}

// Fits reports whether the layout is visible in full on a cols x lines terminal
func (l Layout) Fits(cols, lines int) bool {
	return l.ScreenWidth <= cols && l.ScreenHeight <= lines
}
