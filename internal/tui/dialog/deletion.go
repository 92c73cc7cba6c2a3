// Package dialog holds the modal windows shown over the checklist.
package dialog

import (
	"time"

	"wristlist/internal/log"
	"wristlist/internal/resources"
	"wristlist/internal/tui/canvas"
	"wristlist/internal/tui/styles"
	"wristlist/internal/tui/window"

	tea "github.com/charmbracelet/bubbletea"
)

// State is the animation state of the deletion dialog.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StateClosing
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateClosing:
		return "closing"
	default:
		return "idle"
	}
}

// FrameTickMsg advances the animation. Ticks carrying an outdated Tag
// belong to a cancelled timer and are dropped.
type FrameTickMsg struct {
	Tag int
}

// Deletion plays the "deleted" animation with a message underneath and
// closes itself after the last frame. One Deletion is created lazily and
// reused for every Show.
type Deletion struct {
	loader   resources.Loader
	interval time.Duration
	theme    styles.Theme

	message string
	seq     *resources.Sequence
	state   State
	index   int
	shown   int
	frame   resources.Frame
	tag     int
}

// NewDeletion creates a dialog that advances one frame every interval.
func NewDeletion(loader resources.Loader, interval time.Duration, theme styles.Theme) *Deletion {
	return &Deletion{
		loader:   loader,
		interval: interval,
		theme:    theme,
		shown:    -1,
	}
}

// SetMessage replaces the text shown under the animation.
func (d *Deletion) SetMessage(message string) {
	d.message = message
}

func (d *Deletion) Message() string {
	return d.message
}

// Show sets the message and pushes the dialog.
func (d *Deletion) Show(message string) tea.Cmd {
	d.SetMessage(message)
	return window.Push(d)
}

func (d *Deletion) State() State {
	return d.state
}

// FrameIndex returns the index of the frame on screen, or -1 before the
// first frame.
func (d *Deletion) FrameIndex() int {
	return d.shown
}

// Tick selects the frame at the current index and advances. It returns
// false, and moves to closing, once every frame has been shown.
func (d *Deletion) Tick() bool {
	if d.index >= d.seq.NumFrames() {
		d.state = StateClosing
		return false
	}
	frame, _ := d.seq.FrameByIndex(d.index)
	d.frame = frame
	d.shown = d.index
	d.index++
	return true
}

func (d *Deletion) Load() tea.Cmd {
	seq, err := d.loader.Sequence(resources.DeletedSequence)
	if err != nil {
		log.LogWithError(err).Warn("Deletion animation unavailable")
	}
	d.seq = seq
	d.index = 0
	d.shown = -1
	d.state = StatePlaying
	d.tag++

	if !d.Tick() {
		return d.close()
	}
	return d.schedule()
}

// Unload cancels any pending frame timer and releases the sequence.
func (d *Deletion) Unload() {
	d.tag++
	d.state = StateIdle
	d.seq = nil
}

func (d *Deletion) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(FrameTickMsg)
	if !ok || tick.Tag != d.tag || d.state != StatePlaying {
		return nil
	}
	if d.Tick() {
		return d.schedule()
	}
	return d.close()
}

func (d *Deletion) schedule() tea.Cmd {
	tag := d.tag
	return tea.Tick(d.interval, func(time.Time) tea.Msg {
		return FrameTickMsg{Tag: tag}
	})
}

func (d *Deletion) close() tea.Cmd {
	d.tag++
	log.LogWithFields(log.F("frames", d.seq.NumFrames())).Debug("Deletion dialog closing")
	return window.Pop(d)
}

func (d *Deletion) View(width, height int) string {
	return d.Render(width, height).Render()
}

// Render draws the current frame centred near the top with the message
// below it.
func (d *Deletion) Render(width, height int) *canvas.Canvas {
	c := canvas.New(width, height, d.theme.DialogBackground, d.theme.DialogForeground)

	y := 1
	if d.shown >= 0 {
		fw := 0
		for _, row := range d.frame.Rows {
			if w := canvas.TextWidth(row); w > fw {
				fw = w
			}
		}
		c.DrawFrame(width/2-fw/2, y, d.frame)
		y += len(d.frame.Rows)
	}

	c.SetBold(true)
	c.DrawTextAligned(y+1, d.message, canvas.AlignCenter, 1)
	return c
}
