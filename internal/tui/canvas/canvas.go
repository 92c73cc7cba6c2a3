// Package canvas is a cell grid drawing context for the watch face. Layers
// draw text, rectangles, bitmaps and lines into it, and Render turns the
// grid into styled terminal output.
//
// Every rune occupies one cell; wide glyphs are not supported.
package canvas

import (
	"strings"

	"wristlist/internal/resources"

	"github.com/charmbracelet/lipgloss"
)

// Align controls horizontal text placement.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type cell struct {
	r      rune
	fg     lipgloss.Color
	bg     lipgloss.Color
	strike bool
	bold   bool
}

// Canvas is a fixed-size grid of styled cells.
type Canvas struct {
	w, h   int
	cells  []cell
	fill   lipgloss.Color
	text   lipgloss.Color
	stroke lipgloss.Color
	bold   bool
}

// New returns a w x h canvas filled with bg, drawing text and strokes in fg.
func New(w, h int, bg, fg lipgloss.Color) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		w:      w,
		h:      h,
		cells:  make([]cell, w*h),
		fill:   bg,
		text:   fg,
		stroke: fg,
	}
	c.FillRect(0, 0, w, h)
	return c
}

// Size returns the canvas width and height.
func (c *Canvas) Size() (w, h int) {
	return c.w, c.h
}

func (c *Canvas) SetStrokeColor(col lipgloss.Color) { c.stroke = col }
func (c *Canvas) SetBold(bold bool)                 { c.bold = bold }

func (c *Canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return nil
	}
	return &c.cells[y*c.w+x]
}

// FillRect paints a rectangle with the fill colour, clearing its content.
func (c *Canvas) FillRect(x, y, w, h int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if p := c.at(xx, yy); p != nil {
				*p = cell{r: ' ', fg: c.text, bg: c.fill}
			}
		}
	}
}

// DrawText writes text starting at (x, y), clipped to the canvas.
func (c *Canvas) DrawText(x, y int, text string) {
	for i, r := range []rune(text) {
		if p := c.at(x+i, y); p != nil {
			p.r = r
			p.fg = c.text
			p.bold = c.bold
		}
	}
}

// DrawTextAligned writes text on line y inside [margin, w-margin), cutting
// it with a trailing ellipsis when it does not fit. It returns the column
// the text starts at and its drawn width.
func (c *Canvas) DrawTextAligned(y int, text string, align Align, margin int) (x, width int) {
	avail := c.w - 2*margin
	if avail <= 0 {
		return margin, 0
	}
	text = Truncate(text, avail)
	width = TextWidth(text)
	switch align {
	case AlignCenter:
		x = c.w/2 - width/2
	case AlignRight:
		x = c.w - margin - width
	default:
		x = margin
	}
	c.DrawText(x, y, text)
	return x, width
}

// DrawRect outlines a rectangle in the stroke colour. One line tall
// rectangles are drawn as brackets.
func (c *Canvas) DrawRect(x, y, w, h int) {
	if w < 2 || h < 1 {
		return
	}
	set := func(xx, yy int, r rune) {
		if p := c.at(xx, yy); p != nil {
			p.r = r
			p.fg = c.stroke
		}
	}
	if h == 1 {
		set(x, y, '[')
		set(x+w-1, y, ']')
		return
	}
	for xx := x + 1; xx < x+w-1; xx++ {
		set(xx, y, '─')
		set(xx, y+h-1, '─')
	}
	for yy := y + 1; yy < y+h-1; yy++ {
		set(x, yy, '│')
		set(x+w-1, yy, '│')
	}
	set(x, y, '┌')
	set(x+w-1, y, '┐')
	set(x, y+h-1, '└')
	set(x+w-1, y+h-1, '┘')
}

// DrawBitmap composites bmp with its top-left corner at (x, y). Spaces in
// the bitmap are transparent.
func (c *Canvas) DrawBitmap(x, y int, bmp *resources.Bitmap) {
	if bmp == nil {
		return
	}
	for dy, row := range bmp.Rows {
		for dx, r := range []rune(row) {
			if r == ' ' {
				continue
			}
			if p := c.at(x+dx, y+dy); p != nil {
				p.r = r
				p.fg = bmp.Foreground
			}
		}
	}
}

// DrawFrame composites an animation frame in the text colour.
func (c *Canvas) DrawFrame(x, y int, frame resources.Frame) {
	for dy, row := range frame.Rows {
		for dx, r := range []rune(row) {
			if r == ' ' {
				continue
			}
			if p := c.at(x+dx, y+dy); p != nil {
				p.r = r
				p.fg = c.text
			}
		}
	}
}

// DrawHLine strikes through the cells in [x0, x1) on line y using the
// stroke colour.
func (c *Canvas) DrawHLine(x0, x1, y int) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	for x := x0; x < x1; x++ {
		if p := c.at(x, y); p != nil {
			p.strike = true
			p.fg = c.stroke
		}
	}
}

// Blit copies src onto c with its top-left corner at (x, y).
func (c *Canvas) Blit(x, y int, src *Canvas) {
	for sy := 0; sy < src.h; sy++ {
		for sx := 0; sx < src.w; sx++ {
			if p := c.at(x+sx, y+sy); p != nil {
				*p = src.cells[sy*src.w+sx]
			}
		}
	}
}

// Lines returns the canvas content without styling.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var sb strings.Builder
		for x := 0; x < c.w; x++ {
			sb.WriteRune(c.cells[y*c.w+x].r)
		}
		lines[y] = sb.String()
	}
	return lines
}

// Struck reports whether the cell at (x, y) is struck through.
func (c *Canvas) Struck(x, y int) bool {
	p := c.at(x, y)
	return p != nil && p.strike
}

// ColorsAt returns the foreground and background of a cell.
func (c *Canvas) ColorsAt(x, y int) (fg, bg lipgloss.Color) {
	if p := c.at(x, y); p != nil {
		return p.fg, p.bg
	}
	return "", ""
}

// Render produces styled output, one styled run per stretch of identical
// cells.
func (c *Canvas) Render() string {
	var out strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		var run strings.Builder
		var style cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			out.WriteString(lipgloss.NewStyle().
				Foreground(style.fg).
				Background(style.bg).
				Strikethrough(style.strike).
				Bold(style.bold).
				Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			p := c.cells[y*c.w+x]
			if run.Len() > 0 && !sameStyle(p, style) {
				flush()
			}
			style = p
			run.WriteRune(p.r)
		}
		flush()
	}
	return out.String()
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.strike == b.strike && a.bold == b.bold
}

// TextWidth measures text in cells.
func TextWidth(text string) int {
	return len([]rune(text))
}

// Truncate shortens text to max cells, ending in an ellipsis when cut.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max == 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
