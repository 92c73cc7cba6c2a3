package components

import (
	"wristlist/internal/tui/canvas"
	"wristlist/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CellMargin is the horizontal padding of cell titles on rectangular
// displays.
const CellMargin = 1

// MenuDataSource supplies the rows of a Menu. Every method is called on
// each render, so implementations must derive rows from current state.
type MenuDataSource interface {
	RowCount() int
	RowHeight(row int) int
	// DrawRow draws one row into a cell-sized canvas that has already been
	// filled with the normal or highlight colours.
	DrawRow(c *canvas.Canvas, row int, highlighted bool)
	OnSelect(row int) tea.Cmd
}

// MenuColors are the cell colours in the normal and highlighted state.
type MenuColors struct {
	NormalBackground    lipgloss.Color
	NormalForeground    lipgloss.Color
	HighlightBackground lipgloss.Color
	HighlightForeground lipgloss.Color
}

// Menu is a vertically scrolling list of rows with one selected row.
type Menu struct {
	src           MenuDataSource
	keys          types.KeyMap
	colors        MenuColors
	selected      int
	offset        int
	centerFocused bool
}

func NewMenu(src MenuDataSource, keys types.KeyMap, colors MenuColors) *Menu {
	return &Menu{
		src:    src,
		keys:   keys,
		colors: colors,
	}
}

// SetCenterFocused keeps the selected row in the middle of the viewport,
// as round displays do.
func (m *Menu) SetCenterFocused(center bool) {
	m.centerFocused = center
}

func (m *Menu) Selected() int {
	return m.selected
}

// SetSelected moves the selection, clamped to the current rows.
func (m *Menu) SetSelected(row int) {
	m.selected = row
	m.clamp()
}

// ReloadData re-reads the row count from the data source. Rows are never
// cached, so this only keeps the selection in range.
func (m *Menu) ReloadData() {
	m.clamp()
}

func (m *Menu) clamp() {
	n := m.src.RowCount()
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Menu) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.selected < m.src.RowCount()-1 {
			m.selected++
		}
	case key.Matches(keyMsg, m.keys.Select):
		m.clamp()
		if m.src.RowCount() == 0 {
			return nil
		}
		return m.src.OnSelect(m.selected)
	}
	return nil
}

// Render draws the visible rows into a width x height canvas.
func (m *Menu) Render(width, height int) *canvas.Canvas {
	out := canvas.New(width, height, m.colors.NormalBackground, m.colors.NormalForeground)
	m.clamp()

	n := m.src.RowCount()
	if n == 0 {
		return out
	}

	tops := make([]int, n+1)
	for row := 0; row < n; row++ {
		tops[row+1] = tops[row] + m.src.RowHeight(row)
	}
	total := tops[n]
	selTop, selBottom := tops[m.selected], tops[m.selected+1]

	if m.centerFocused {
		m.offset = selTop + (selBottom-selTop)/2 - height/2
	} else {
		if selTop < m.offset {
			m.offset = selTop
		}
		if selBottom > m.offset+height {
			m.offset = selBottom - height
		}
		if maxOffset := total - height; m.offset > maxOffset {
			m.offset = maxOffset
		}
		if m.offset < 0 {
			m.offset = 0
		}
	}

	for row := 0; row < n; row++ {
		top, bottom := tops[row], tops[row+1]
		if bottom <= m.offset || top >= m.offset+height {
			continue
		}
		highlighted := row == m.selected
		bg, fg := m.colors.NormalBackground, m.colors.NormalForeground
		if highlighted {
			bg, fg = m.colors.HighlightBackground, m.colors.HighlightForeground
		}
		cell := canvas.New(width, bottom-top, bg, fg)
		m.src.DrawRow(cell, row, highlighted)
		out.Blit(0, top-m.offset, cell)
	}
	return out
}

// View renders the menu as styled text.
func (m *Menu) View(width, height int) string {
	return m.Render(width, height).Render()
}

// BasicDrawCell draws a bold title on the middle line of a cell: centred on
// round displays, left-aligned otherwise. It returns where the title
// starts and its drawn width.
func BasicDrawCell(c *canvas.Canvas, title string, round bool) (x, width int) {
	return DrawCellTitle(c, title, round, 0)
}

// DrawCellTitle is BasicDrawCell keeping reserve columns free for an
// accessory: on the right for left-aligned titles, on both sides for
// centred ones.
func DrawCellTitle(c *canvas.Canvas, title string, round bool, reserve int) (x, width int) {
	w, h := c.Size()
	c.SetBold(true)
	defer c.SetBold(false)

	if round {
		return c.DrawTextAligned(h/2, title, canvas.AlignCenter, CellMargin+reserve)
	}
	title = canvas.Truncate(title, w-reserve-2*CellMargin)
	c.DrawText(CellMargin, h/2, title)
	return CellMargin, canvas.TextWidth(title)
}
