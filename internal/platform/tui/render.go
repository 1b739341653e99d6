package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorRed:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorDarkGray: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorPurple:   lipgloss.NewStyle().Foreground(lipgloss.Color("55")),
	core.ColorNavy:     lipgloss.NewStyle().Foreground(lipgloss.Color("18")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
