package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
)

// colorCodes maps core.Color to ANSI color codes.
var colorCodes = map[core.Color]string{
	core.ColorCyan:   "6",
	core.ColorBlue:   "4",
	core.ColorOrange: "208",
	core.ColorYellow: "3",
	core.ColorGreen:  "2",
	core.ColorPurple: "5",
	core.ColorRed:    "1",
	core.ColorGray:   "245",
	core.ColorWhite:  "15",
}

// Styles maps screen colors to lipgloss styles bound to one renderer.
// SSH sessions get their own renderer so color detection follows the
// client terminal rather than the server's.
type Styles map[core.Color]lipgloss.Style

// NewStyles builds the color styles for r. A nil r uses the default renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := Styles{core.ColorDefault: r.NewStyle()}
	for c, code := range colorCodes {
		styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

var defaultStyles = NewStyles(nil)

// Render converts a Screen buffer to a styled string.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (st Styles) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := st[startColor]
			if !ok {
				style = st[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
