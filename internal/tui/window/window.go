// Package window implements the display stack: windows are pushed on top of
// each other, receive Load when pushed and Unload when popped, and only the
// top window is drawn and receives key input.
package window

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Window is a full-screen controller managed by the Stack.
type Window interface {
	// Load is called when the window is pushed. The returned command is
	// run by the program, typically to start timers.
	Load() tea.Cmd
	// Unload is called when the window is popped and must release
	// everything Load acquired, including pending timers.
	Unload()
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// PushMsg asks the host to push W.
type PushMsg struct {
	W Window
}

// PopMsg asks the host to pop W. Popping a window that is no longer on
// top is a no-op, so a dialog that closes itself cannot pop its parent.
type PopMsg struct {
	W Window
}

// Push returns a command that pushes w.
func Push(w Window) tea.Cmd {
	return func() tea.Msg { return PushMsg{W: w} }
}

// Pop returns a command that pops w.
func Pop(w Window) tea.Cmd {
	return func() tea.Msg { return PopMsg{W: w} }
}

// Stack holds the pushed windows, bottom first.
type Stack struct {
	windows []Window
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push loads w and puts it on top. Pushing the window already on top does
// nothing; a window deeper in the stack is moved to the top without being
// reloaded.
func (s *Stack) Push(w Window) tea.Cmd {
	if top := s.Top(); top == w {
		return nil
	}
	for i, existing := range s.windows {
		if existing == w {
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			s.windows = append(s.windows, w)
			return nil
		}
	}
	s.windows = append(s.windows, w)
	return w.Load()
}

// Pop unloads and removes the top window. It returns false when the stack
// was empty.
func (s *Stack) Pop() bool {
	if len(s.windows) == 0 {
		return false
	}
	top := s.windows[len(s.windows)-1]
	s.windows = s.windows[:len(s.windows)-1]
	top.Unload()
	return true
}

// PopWindow pops w only if it is on top.
func (s *Stack) PopWindow(w Window) bool {
	if s.Top() != w {
		return false
	}
	return s.Pop()
}

// Top returns the top window or nil.
func (s *Stack) Top() Window {
	if len(s.windows) == 0 {
		return nil
	}
	return s.windows[len(s.windows)-1]
}

// Len returns the number of pushed windows.
func (s *Stack) Len() int {
	return len(s.windows)
}

// Contains reports whether w is on the stack.
func (s *Stack) Contains(w Window) bool {
	for _, existing := range s.windows {
		if existing == w {
			return true
		}
	}
	return false
}

// Each calls fn for every window, bottom first.
func (s *Stack) Each(fn func(Window)) {
	for _, w := range append([]Window(nil), s.windows...) {
		fn(w)
	}
}

// Clear unloads every window, top first.
func (s *Stack) Clear() {
	for s.Pop() {
	}
}
