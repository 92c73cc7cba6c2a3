package styles

import "github.com/charmbracelet/lipgloss"

// Styles defines the styles used around the watch face
var (
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9"))

	// RectBezel frames a rectangular display
	RectBezel = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#626262"))

	// RoundBezel frames a round display
	RoundBezel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262"))
)
