package main

import "github.com/charmbracelet/lipgloss"

// Output styles for the non-interactive commands. lipgloss drops the
// colours when stdout is not a terminal.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5A9"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E55"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#69C"))
	checkedStyle = lipgloss.NewStyle().Strikethrough(true).Faint(true)
)

func successText(s string) string { return successStyle.Render(s) }
func errorText(s string) string   { return errorStyle.Render(s) }
func infoText(s string) string    { return infoStyle.Render(s) }
