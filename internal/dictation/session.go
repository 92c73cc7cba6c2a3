package dictation

import (
	"strings"

	"wristlist/internal/log"
	"wristlist/internal/tui/components"
	"wristlist/internal/tui/messages"
	"wristlist/internal/tui/styles"
	"wristlist/internal/tui/window"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Session is a modal window that takes the transcription from the
// keyboard. Enter accepts, Esc rejects. A session is reusable: every Start
// pushes it again with an empty input.
type Session struct {
	input  textinput.Model
	status *components.StatusBar
	theme  styles.Theme
	active bool
}

// NewSession creates a session that accepts at most maxLen characters.
func NewSession(theme styles.Theme, maxLen int) *Session {
	ti := textinput.New()
	ti.Placeholder = "Say something"
	ti.Prompt = "> "
	ti.CharLimit = maxLen
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Foreground).Background(theme.Background)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Foreground).Background(theme.Background)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.HighlightBackground).Background(theme.Background)

	status := components.NewStatusBar(theme.Background, theme.Foreground)
	status.SetText("Listening")

	return &Session{
		input:  ti,
		status: status,
		theme:  theme,
	}
}

// Start implements Service.
func (s *Session) Start() tea.Cmd {
	return window.Push(s)
}

// Active reports whether the session is waiting for input.
func (s *Session) Active() bool {
	return s.active
}

// CapturesText tells the host to route every key to the session.
func (s *Session) CapturesText() bool {
	return s.active
}

func (s *Session) Load() tea.Cmd {
	s.active = true
	s.input.Reset()
	log.Debugf("Dictation session started")
	return tea.Batch(s.input.Focus(), textinput.Blink, s.status.SetLoading(true))
}

func (s *Session) Unload() {
	s.input.Blur()
	s.status.SetLoading(false)
	if s.active {
		s.active = false
		log.Debugf("Dictation session aborted")
	}
}

func (s *Session) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !s.active {
			return nil
		}
		switch msg.Type {
		case tea.KeyEnter:
			text := strings.TrimSpace(s.input.Value())
			if text == "" {
				return s.finish(ResultMsg{Status: StatusNoSpeechDetected})
			}
			return s.finish(ResultMsg{Status: StatusSuccess, Text: text})
		case tea.KeyEsc:
			return s.finish(ResultMsg{Status: StatusRejected})
		}
	case spinner.TickMsg, messages.ClockTickMsg:
		return s.status.Update(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// finish closes the session and then delivers the result, so the view
// behind it is on top again when the result arrives.
func (s *Session) finish(result ResultMsg) tea.Cmd {
	s.active = false
	log.LogWithFields(log.F("status", result.Status.String())).Debug("Dictation session finished")
	return tea.Sequence(window.Pop(s), func() tea.Msg { return result })
}

func (s *Session) View(width, height int) string {
	s.input.Width = width - lipgloss.Width(s.input.Prompt) - 1

	hint := lipgloss.NewStyle().
		Foreground(s.theme.HighlightBackground).
		Background(s.theme.Background).
		Render("enter done · esc cancel")

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.status.View(width),
		"",
		s.input.View(),
		"",
		hint,
	)
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(s.theme.Background))
}
