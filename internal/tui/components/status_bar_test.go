package components

import (
	"testing"
	"time"

	"wristlist/internal/tui/messages"
	"wristlist/pkg/testutils"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
)

func TestStatusBar(t *testing.T) {
	s := NewStatusBar("#FFFF00", "#000000")
	s.SetText("Listening")

	assert.Nil(t, s.Update(messages.ClockTickMsg{Time: time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC)}))
	assert.Contains(t, testutils.StripANSI(s.View(20)), "09:30")
	assert.Nil(t, s.Update(spinner.TickMsg{}), "the spinner is idle until loading")

	assert.NotNil(t, s.SetLoading(true))
	view := testutils.StripANSI(s.View(20))
	assert.Contains(t, view, "Listening")
	assert.NotContains(t, view, "09:30")
	assert.NotNil(t, s.Update(spinner.TickMsg{}))

	assert.Nil(t, s.SetLoading(false))
	assert.Contains(t, testutils.StripANSI(s.View(20)), "09:30")
}
