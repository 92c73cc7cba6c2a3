package components

import (
	"time"

	"wristlist/internal/tui/messages"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatusBar is the one-line bar across the top of the face. It shows the
// time, and a spinner with a short text while something is in progress.
type StatusBar struct {
	text    string
	now     time.Time
	style   lipgloss.Style
	spinner spinner.Model
	loading bool
}

func NewStatusBar(bg, fg lipgloss.Color) *StatusBar {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(fg).Background(bg)

	return &StatusBar{
		now:     time.Now(),
		style:   lipgloss.NewStyle().Foreground(fg).Background(bg),
		spinner: s,
	}
}

// SetLoading starts or stops the spinner. Starting returns the first
// spinner tick.
func (s *StatusBar) SetLoading(loading bool) tea.Cmd {
	s.loading = loading
	if loading {
		return s.spinner.Tick
	}
	return nil
}

func (s *StatusBar) SetText(text string) {
	s.text = text
}

// ClockTick schedules the next clock refresh at the top of the minute
// after now. The host owns the schedule; status bars only observe it.
func ClockTick(now time.Time) tea.Cmd {
	wait := time.Until(now.Truncate(time.Minute).Add(time.Minute))
	if wait <= 0 {
		wait = time.Minute
	}
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return messages.ClockTickMsg{Time: t}
	})
}

func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case messages.ClockTickMsg:
		s.now = msg.Time
	case spinner.TickMsg:
		if s.loading {
			var cmd tea.Cmd
			s.spinner, cmd = s.spinner.Update(msg)
			return cmd
		}
	}
	return nil
}

// View renders the bar at the given width.
func (s *StatusBar) View(width int) string {
	content := s.now.Format("15:04")
	if s.loading {
		content = s.spinner.View() + " " + s.text
	}
	return s.style.Width(width).Align(lipgloss.Center).Render(content)
}
