// Package resources supplies the bitmaps and animation sequences drawn by
// the watch face. Everything is compiled in and loads synchronously.
package resources

import (
	"wristlist/internal/errors"

	"github.com/charmbracelet/lipgloss"
)

// ID identifies a bundled resource.
type ID string

const (
	TickBlack       ID = "TICK_BLACK"
	TickWhite       ID = "TICK_WHITE"
	AddBlack        ID = "ADD_BLACK"
	AddWhite        ID = "ADD_WHITE"
	DeletedSequence ID = "DELETED_SEQUENCE"
)

// Bitmap is a small glyph image. Spaces are transparent when drawn.
type Bitmap struct {
	ID         ID
	Rows       []string
	Foreground lipgloss.Color
}

// Size returns the bitmap width in columns and height in lines.
func (b *Bitmap) Size() (w, h int) {
	for _, r := range b.Rows {
		if rw := lipgloss.Width(r); rw > w {
			w = rw
		}
	}
	return w, len(b.Rows)
}

// Frame is one image of an animation sequence.
type Frame struct {
	Rows []string
}

// Sequence is an ordered list of frames.
type Sequence struct {
	ID     ID
	frames []Frame
}

// NewSequence builds a sequence from frames.
func NewSequence(id ID, frames ...Frame) *Sequence {
	return &Sequence{ID: id, frames: frames}
}

// NumFrames returns the number of frames; zero for a nil sequence.
func (s *Sequence) NumFrames() int {
	if s == nil {
		return 0
	}
	return len(s.frames)
}

// FrameByIndex returns frame i, or false when i is out of range.
func (s *Sequence) FrameByIndex(i int) (Frame, bool) {
	if s == nil || i < 0 || i >= len(s.frames) {
		return Frame{}, false
	}
	return s.frames[i], true
}

// Loader resolves resources by identifier.
type Loader interface {
	Bitmap(id ID) (*Bitmap, error)
	Sequence(id ID) (*Sequence, error)
}

// Bundle is an in-memory Loader.
type Bundle struct {
	bitmaps   map[ID]*Bitmap
	sequences map[ID]*Sequence
}

// NewBundle returns the resources shipped with the app.
func NewBundle() *Bundle {
	b := &Bundle{
		bitmaps:   make(map[ID]*Bitmap),
		sequences: make(map[ID]*Sequence),
	}
	for _, bmp := range builtinBitmaps() {
		b.AddBitmap(bmp)
	}
	b.AddSequence(deletedSequence())
	return b
}

// AddBitmap registers or replaces a bitmap.
func (b *Bundle) AddBitmap(bmp *Bitmap) {
	b.bitmaps[bmp.ID] = bmp
}

// AddSequence registers or replaces a sequence.
func (b *Bundle) AddSequence(seq *Sequence) {
	b.sequences[seq.ID] = seq
}

func (b *Bundle) Bitmap(id ID) (*Bitmap, error) {
	bmp, ok := b.bitmaps[id]
	if !ok {
		return nil, errors.NewResourceError("bitmap not found", string(id), nil)
	}
	return bmp, nil
}

func (b *Bundle) Sequence(id ID) (*Sequence, error) {
	seq, ok := b.sequences[id]
	if !ok {
		return nil, errors.NewResourceError("sequence not found", string(id), nil)
	}
	return seq, nil
}

func builtinBitmaps() []*Bitmap {
	black := lipgloss.Color("#000000")
	white := lipgloss.Color("#FFFFFF")
	return []*Bitmap{
		{ID: TickBlack, Rows: []string{" ✓"}, Foreground: black},
		{ID: TickWhite, Rows: []string{" ✓"}, Foreground: white},
		{ID: AddBlack, Rows: []string{"(+)"}, Foreground: black},
		{ID: AddWhite, Rows: []string{"(+)"}, Foreground: white},
	}
}
