package render

import (
	"github.com/lixenwraith/road-fighter/entity"
)

// Compose paints entities onto a fresh width x height frame
func Compose(ents []*entity.Entity, width, height int) *Frame {
	f := NewFrame(width, height)
	ComposeInto(f, ents)
	return f
}

// ComposeInto paints entities onto f in list order; later entities win on overlap
// Cells outside the frame are clipped. An explosion whose blink is off paints nothing
func ComposeInto(f *Frame, ents []*entity.Entity) {
	for _, e := range ents {
		if e.Kind == entity.KindExplosion && !e.Blink {
			continue
		}
		pos := e.Position()
		e.Cells(func(row, col int, ch rune) {
			f.Set(pos.X+col, pos.Y+row, ch, e.ColorAt(row, col))
		})
	}
}
