package styles

import (
	"wristlist/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the display colours shared by the watch windows.
type Theme struct {
	Background          lipgloss.Color
	Foreground          lipgloss.Color
	HighlightBackground lipgloss.Color
	HighlightForeground lipgloss.Color
	DialogBackground    lipgloss.Color
	DialogForeground    lipgloss.Color
}

// ThemeFromConfig builds a Theme from the configured colours.
func ThemeFromConfig(cfg *config.Config) Theme {
	return Theme{
		Background:          lipgloss.Color(cfg.Theme.Background),
		Foreground:          lipgloss.Color(cfg.Theme.Foreground),
		HighlightBackground: lipgloss.Color(cfg.Theme.HighlightBackground),
		HighlightForeground: lipgloss.Color(cfg.Theme.HighlightForeground),
		DialogBackground:    lipgloss.Color(cfg.Theme.DialogBackground),
		DialogForeground:    lipgloss.Color(cfg.Theme.Foreground),
	}
}

// DefaultTheme is the theme of the default configuration.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.New())
}

// Bezel returns the frame drawn around the display.
func Bezel(round bool) lipgloss.Style {
	if round {
		return RoundBezel
	}
	return RectBezel
}
