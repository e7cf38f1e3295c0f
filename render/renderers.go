package render

import (
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/core"
)

const (
	borderHorizontal = '-'
	borderVertical   = '|'
	borderCorner     = '+'
)

// BorderRenderer frames the playfield window and the text box
type BorderRenderer struct{}

func (BorderRenderer) Render(ctx RenderContext, f *Frame) {
	l := ctx.Layout
	drawBox(f, 0, 0, l.ScreenWidth, l.BoxY)
	drawBox(f, 0, l.BoxY, l.ScreenWidth, constants.StatusBoxHeight)
}

func drawBox(f *Frame, x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for i := x + 1; i < right; i++ {
		f.Set(i, y, borderHorizontal, core.ColorWhite)
		f.Set(i, bottom, borderHorizontal, core.ColorWhite)
	}
	for j := y + 1; j < bottom; j++ {
		f.Set(x, j, borderVertical, core.ColorWhite)
		f.Set(right, j, borderVertical, core.ColorWhite)
	}
	for _, p := range [...]core.Point{{X: x, Y: y}, {X: right, Y: y}, {X: x, Y: bottom}, {X: right, Y: bottom}} {
		f.Set(p.X, p.Y, borderCorner, core.ColorWhite)
	}
}

// EntityRenderer composites the entity list into the playfield window
type EntityRenderer struct {
	playfield *Frame
}

// NewEntityRenderer creates a renderer with its own playfield buffer
func NewEntityRenderer() *EntityRenderer {
	return &EntityRenderer{playfield: NewFrame(0, 0)}
}

func (r *EntityRenderer) Render(ctx RenderContext, f *Frame) {
	pf := ctx.Layout.Playfield
	if w, h := r.playfield.Bounds(); w != pf.Width || h != pf.Height {
		r.playfield.Resize(pf.Width, pf.Height)
	} else {
		r.playfield.Clear()
	}
	ComposeInto(r.playfield, ctx.Entities)
	f.Blit(r.playfield, ctx.Layout.Origin.X, ctx.Layout.Origin.Y)
}

// StatusRenderer writes the status text into the box
type StatusRenderer struct{}

func (StatusRenderer) Render(ctx RenderContext, f *Frame) {
	f.SetString(constants.StatusTextX, ctx.Layout.BoxY+constants.StatusTextY, ctx.Status, core.ColorWhite)
}
