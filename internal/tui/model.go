package tui

import (
	"time"

	"wristlist/internal/config"
	"wristlist/internal/log"
	"wristlist/internal/tui/components"
	"wristlist/internal/tui/messages"
	"wristlist/internal/tui/styles"
	"wristlist/internal/tui/window"
	"wristlist/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// textCapturer is implemented by windows that want every key while they
// are on top, such as the dictation session.
type textCapturer interface {
	CapturesText() bool
}

// Model hosts the window stack. The top window is drawn inside the bezel
// and receives keys; every other message is delivered to all windows.
type Model struct {
	stack *window.Stack
	root  window.Window
	keys  types.KeyMap
	help  help.Model

	width    int
	height   int
	round    bool
	showHelp bool
	quitting bool
	err      error
}

// New creates the host with root as the first window.
func New(cfg *config.Config, root window.Window, keys types.KeyMap) *Model {
	return &Model{
		stack:  window.NewStack(),
		root:   root,
		keys:   keys,
		help:   help.New(),
		width:  cfg.Display.Width,
		height: cfg.Display.Height,
		round:  cfg.IsRound(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.stack.Push(m.root), components.ClockTick(time.Now()))
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)

	case window.PushMsg:
		return m, m.stack.Push(msg.W)

	case window.PopMsg:
		if m.stack.PopWindow(msg.W) && m.stack.Len() == 0 {
			return m, m.quit()
		}
		return m, nil

	case messages.ErrorMsg:
		m.err = msg.Err
		log.LogWithError(msg.Err).Error("Closing after fatal error")
		return m, m.quit()

	case messages.ClockTickMsg:
		return m, tea.Batch(m.broadcast(msg), components.ClockTick(msg.Time))
	}

	return m, m.broadcast(msg)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	top := m.stack.Top()
	if top == nil {
		return m.quit()
	}
	if c, ok := top.(textCapturer); ok && c.CapturesText() {
		return top.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return nil
	case key.Matches(msg, m.keys.Back):
		m.stack.Pop()
		if m.stack.Len() == 0 {
			return m.quit()
		}
		return nil
	}
	return top.Update(msg)
}

func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	m.stack.Each(func(w window.Window) {
		cmds = append(cmds, w.Update(msg))
	})
	return tea.Batch(cmds...)
}

// quit unloads every window before the program exits.
func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.stack.Clear()
	return tea.Quit
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	top := m.stack.Top()
	if top == nil {
		return ""
	}

	face := styles.Bezel(m.round).Render(top.View(m.width, m.height))

	m.help.ShowAll = m.showHelp
	footer := styles.Help.Render(m.help.View(m.keys))

	return styles.App.Render(lipgloss.JoinVertical(lipgloss.Center, face, footer))
}

// Err returns the error that closed the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Stack exposes the window stack.
func (m *Model) Stack() *window.Stack {
	return m.stack
}
