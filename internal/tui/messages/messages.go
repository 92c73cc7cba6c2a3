package messages

import "time"

type ErrorMsg struct {
	Err error
}

// StoreChangedMsg reports that the checklist database was modified outside
// the running view.
type StoreChangedMsg struct {
	Path string
}

// ClockTickMsg refreshes the status bar clock.
type ClockTickMsg struct {
	Time time.Time
}
