package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/road-fighter/core"
)

// TcellColor converts a named color to its truecolor tcell value
// tcell falls back to the nearest palette entry on terminals without truecolor
func TcellColor(c core.Color) tcell.Color {
	rgb := c.RGB()
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// Style returns the foreground style for a named color
func Style(c core.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(TcellColor(c))
}
