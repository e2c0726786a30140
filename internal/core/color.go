package core

// Color identifies the foreground color of a screen cell.
// The platform maps each value to an ANSI color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorCyan
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorPurple
	ColorRed
	ColorGray
	ColorWhite
)

var colorNames = map[string]Color{
	"default": ColorDefault,
	"cyan":    ColorCyan,
	"blue":    ColorBlue,
	"orange":  ColorOrange,
	"yellow":  ColorYellow,
	"green":   ColorGreen,
	"purple":  ColorPurple,
	"red":     ColorRed,
	"gray":    ColorGray,
	"white":   ColorWhite,
}

// ParseColor resolves a color name as written in config files.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}

// String returns the config name of the color.
func (c Color) String() string {
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return "unknown"
}
