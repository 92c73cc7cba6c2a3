package dictation

import (
	"testing"

	"wristlist/internal/tui/styles"
	"wristlist/internal/tui/window"
	"wristlist/pkg/testutils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(s *Session, text string) {
	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestSessionResults(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		key    tea.KeyType
		result ResultMsg
	}{
		{
			name:   "enter accepts the text",
			text:   "  buy milk ",
			key:    tea.KeyEnter,
			result: ResultMsg{Status: StatusSuccess, Text: "buy milk"},
		},
		{
			name:   "empty input is no speech",
			text:   "   ",
			key:    tea.KeyEnter,
			result: ResultMsg{Status: StatusNoSpeechDetected},
		},
		{
			name:   "escape rejects",
			text:   "eggs",
			key:    tea.KeyEsc,
			result: ResultMsg{Status: StatusRejected},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(styles.DefaultTheme(), 64)
			stack := window.NewStack()
			stack.Push(s)

			require.True(t, s.Active())
			require.True(t, s.CapturesText())

			typeText(s, tt.text)
			cmd := s.Update(tea.KeyMsg{Type: tt.key})
			require.NotNil(t, cmd)
			assert.False(t, s.Active())

			msgs := testutils.Msgs(cmd)
			require.Len(t, msgs, 2)
			assert.Equal(t, window.PopMsg{W: s}, msgs[0], "the session closes before the result is delivered")
			assert.Equal(t, tt.result, msgs[1])
		})
	}
}

func TestSessionIsReusable(t *testing.T) {
	s := NewSession(styles.DefaultTheme(), 64)
	stack := window.NewStack()

	assert.Equal(t, window.PushMsg{W: s}, s.Start()())

	stack.Push(s)
	typeText(s, "first")
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	stack.PopWindow(s)

	stack.Push(s)
	assert.True(t, s.Active())
	assert.Equal(t, "", s.input.Value(), "a new session starts empty")
}

func TestSessionCharLimitAndAbort(t *testing.T) {
	s := NewSession(styles.DefaultTheme(), 4)
	stack := window.NewStack()
	stack.Push(s)

	typeText(s, "abcdefgh")
	assert.Equal(t, "abcd", s.input.Value())

	stack.Clear()
	assert.False(t, s.Active())
	assert.Nil(t, s.Update(tea.KeyMsg{Type: tea.KeyEnter}), "keys after teardown are ignored")
}

func TestSessionView(t *testing.T) {
	s := NewSession(styles.DefaultTheme(), 64)
	window.NewStack().Push(s)
	typeText(s, "tea")

	view := testutils.StripANSI(s.View(30, 8))
	assert.Contains(t, view, "Listening")
	assert.Contains(t, view, "tea")
	assert.Contains(t, view, "esc cancel")
}

func TestDisabledService(t *testing.T) {
	msg := Disabled{}.Start()()
	assert.Equal(t, ResultMsg{Status: StatusDisabled}, msg)
	assert.Equal(t, "disabled", StatusDisabled.String())
}
