package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// palette maps core colors to xterm-256 codes.
var palette = map[core.Color]string{
	core.ColorRed:     "1",
	core.ColorGreen:   "10",
	core.ColorYellow:  "11",
	core.ColorBlue:    "4",
	core.ColorMagenta: "13",
	core.ColorCyan:    "6",
	core.ColorWhite:   "15",
	core.ColorOrange:  "208",
	core.ColorGray:    "248",
	core.ColorBrown:   "95",
	core.ColorSand:    "187",
	core.ColorSky:     "110",
}

// skyBackground fills the whole arena.
var skyBackground = lipgloss.Color("17")

// colorStyles holds one arena style per core color.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	base := lipgloss.NewStyle().Background(skyBackground)
	styles[core.ColorDefault] = base
	for c, code := range palette {
		styles[c] = base.Foreground(lipgloss.Color(code))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts the arena cell buffer to a styled string.
// Runs of same-colored cells share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		runColor := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		sb.WriteString(styleFor(runColor).Render(run.String()))
		run.Reset()
	}
	return sb.String()
}
