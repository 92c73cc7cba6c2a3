// Package dictation captures a short free-text transcription for a new
// checklist item. On the terminal the microphone is the keyboard: a
// session window collects the text and reports the outcome as a ResultMsg.
package dictation

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Status is the outcome of a dictation session.
type Status int

const (
	StatusSuccess Status = iota
	// The user cancelled the transcription
	StatusRejected
	StatusNoSpeechDetected
	// The session was torn down before it completed
	StatusSystemAborted
	StatusDisabled
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusRejected:
		return "rejected"
	case StatusNoSpeechDetected:
		return "no speech detected"
	case StatusSystemAborted:
		return "system aborted"
	case StatusDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ResultMsg delivers the outcome of a session. Text is only set on
// success.
type ResultMsg struct {
	Status Status
	Text   string
}

// Service starts dictation sessions. Start returns immediately; the
// result arrives later as a ResultMsg.
type Service interface {
	Start() tea.Cmd
}

// Disabled is a Service that always fails.
type Disabled struct{}

func (Disabled) Start() tea.Cmd {
	return func() tea.Msg { return ResultMsg{Status: StatusDisabled} }
}
