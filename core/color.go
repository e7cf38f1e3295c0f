package core

// Color is one of the seven named colors an entity may be drawn in
type Color uint8

const (
	ColorWhite Color = iota
	ColorRed
	ColorBlue
	ColorGreen
	ColorCyan
	ColorMagenta
	ColorYellow
)

var colorNames = [...]string{
	ColorWhite:   "white",
	ColorRed:     "red",
	ColorBlue:    "blue",
	ColorGreen:   "green",
	ColorCyan:    "cyan",
	ColorMagenta: "magenta",
	ColorYellow:  "yellow",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "white"
}

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

var colorRGB = [...]RGB{
	ColorWhite:   {229, 229, 229},
	ColorRed:     {205, 49, 49},
	ColorBlue:    {36, 114, 200},
	ColorGreen:   {13, 188, 121},
	ColorCyan:    {17, 168, 205},
	ColorMagenta: {188, 63, 188},
	ColorYellow:  {229, 229, 16},
}

// RGB returns the truecolor value used when the terminal supports it
func (c Color) RGB() RGB {
	if int(c) < len(colorRGB) {
		return colorRGB[c]
	}
	return colorRGB[ColorWhite]
}

// ParseColorCode maps a one-character color file code to a Color
// Codes are the first letter of the color name; anything else is white
func ParseColorCode(code rune) Color {
	switch code {
	case 'r':
		return ColorRed
	case 'b':
		return ColorBlue
	case 'g':
		return ColorGreen
	case 'c':
		return ColorCyan
	case 'm':
		return ColorMagenta
	case 'y':
		return ColorYellow
	default:
		return ColorWhite
	}
}

// ParseColorName resolves a full color name, false if unknown
func ParseColorName(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return ColorWhite, false
}
