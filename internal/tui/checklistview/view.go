// Package checklistview is the main window: a menu of checklist items with
// an Add row on top and a Clear completed row at the bottom.
package checklistview

import (
	"wristlist/internal/checklist"
	"wristlist/internal/config"
	"wristlist/internal/dictation"
	"wristlist/internal/errors"
	"wristlist/internal/log"
	"wristlist/internal/resources"
	"wristlist/internal/tui/canvas"
	"wristlist/internal/tui/components"
	"wristlist/internal/tui/dialog"
	"wristlist/internal/tui/messages"
	"wristlist/internal/tui/styles"
	"wristlist/pkg/types"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	clearLabel = "Clear completed"
	emptyLabel = "No items"
)

// View is one checklist session. It is created once by the program and
// owned by the window stack; everything acquired in Load is released in
// Unload.
type View struct {
	cfg     *config.Config
	store   checklist.Store
	loader  resources.Loader
	dictate func() dictation.Service
	theme   styles.Theme
	round   bool

	menu   *components.Menu
	status *components.StatusBar

	tickBlack *resources.Bitmap
	tickWhite *resources.Bitmap
	addBlack  *resources.Bitmap
	addWhite  *resources.Bitmap
	session   dictation.Service
	dialog    *dialog.Deletion

	emptyHidden bool
	loaded      bool
}

// New creates the view. dictate is called on every Load to open the
// dictation session used by the Add row.
func New(cfg *config.Config, store checklist.Store, loader resources.Loader, dictate func() dictation.Service, keys types.KeyMap) *View {
	theme := styles.ThemeFromConfig(cfg)
	v := &View{
		cfg:     cfg,
		store:   store,
		loader:  loader,
		dictate: dictate,
		theme:   theme,
		round:   cfg.IsRound(),
		status:  components.NewStatusBar(theme.Background, theme.Foreground),
	}
	v.menu = components.NewMenu(v, keys, components.MenuColors{
		NormalBackground:    theme.Background,
		NormalForeground:    theme.Foreground,
		HighlightBackground: theme.HighlightBackground,
		HighlightForeground: theme.HighlightForeground,
	})
	v.menu.SetCenterFocused(v.round)
	return v
}

// Load initialises the store and acquires the bitmaps and dictation
// session.
func (v *View) Load() tea.Cmd {
	if err := v.store.Init(); err != nil {
		log.LogWithError(err).Error("Failed to initialise checklist store")
		return fatal(err)
	}

	bitmaps := []struct {
		id  resources.ID
		dst **resources.Bitmap
	}{
		{resources.TickBlack, &v.tickBlack},
		{resources.TickWhite, &v.tickWhite},
		{resources.AddBlack, &v.addBlack},
		{resources.AddWhite, &v.addWhite},
	}
	for _, b := range bitmaps {
		bmp, err := v.loader.Bitmap(b.id)
		if err != nil {
			log.LogWithError(err).Error("Failed to load bitmap")
			v.release()
			return fatal(err)
		}
		*b.dst = bmp
	}

	if v.dictate != nil {
		v.session = v.dictate()
	}
	v.loaded = true
	v.menu.SetSelected(0)

	log.LogWithFields(
		log.F("items", v.store.ItemCount()),
		log.F("checked", v.store.CheckedCount()),
	).Debug("Checklist view loaded")
	return nil
}

func fatal(err error) tea.Cmd {
	return func() tea.Msg { return messages.ErrorMsg{Err: err} }
}

// Unload releases everything Load acquired and deinitialises the store.
func (v *View) Unload() {
	if !v.loaded {
		return
	}
	v.release()
	log.Debugf("Checklist view unloaded")
}

// release drops the bitmaps and session and deinitialises the store. A
// partial Load calls it too, since the store is already open by then.
func (v *View) release() {
	v.tickBlack, v.tickWhite = nil, nil
	v.addBlack, v.addWhite = nil, nil
	v.session = nil
	v.loaded = false
	if err := v.store.Deinit(); err != nil {
		log.LogWithError(err).Error("Failed to deinitialise checklist store")
	}
}

func (v *View) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.menu.Update(msg)

	case dictation.ResultMsg:
		if !v.loaded {
			return nil
		}
		if msg.Status != dictation.StatusSuccess {
			log.LogWithFields(log.F("status", msg.Status.String())).Debug("Dictation failed")
			return nil
		}
		if err := v.store.AddItem(msg.Text); err != nil {
			if errors.IsChecklistFull(err) {
				log.LogWithError(err).Warn("Checklist is full, item not added")
			} else {
				log.LogWithError(err).Error("Failed to add item")
			}
		}
		v.reload()

	case messages.StoreChangedMsg:
		if !v.loaded {
			return nil
		}
		if r, ok := v.store.(checklist.Reloader); ok {
			if err := r.Reload(); err != nil {
				log.LogWithError(err).Error("Failed to reload checklist store")
				return nil
			}
		}
		log.LogWithFields(log.F("path", msg.Path)).Debug("Checklist changed on disk")
		v.reload()

	case messages.ClockTickMsg, spinner.TickMsg:
		return v.status.Update(msg)
	}
	return nil
}

// reload redraws from the store. Nothing is cached, so only the selection
// needs to follow the new row count.
func (v *View) reload() {
	v.menu.ReloadData()
}

// RowCount implements components.MenuDataSource.
func (v *View) RowCount() int {
	return RowCount(v.store)
}

// RowHeight implements components.MenuDataSource.
func (v *View) RowHeight(int) int {
	return v.cfg.Menu.RowHeight
}

// DrawRow implements components.MenuDataSource.
func (v *View) DrawRow(c *canvas.Canvas, row int, highlighted bool) {
	v.emptyHidden = v.store.ItemCount() != 0

	switch KindOfRow(v.store, row) {
	case RowAdd:
		bmp := v.addBlack
		if highlighted {
			bmp = v.addWhite
		}
		if bmp == nil {
			return
		}
		w, h := c.Size()
		bw, bh := bmp.Size()
		c.DrawBitmap(w/2-bw/2, h/2-bh/2, bmp)

	case RowClear:
		components.BasicDrawCell(c, clearLabel, v.round)

	case RowItem:
		v.drawItem(c, row, highlighted)
	}
}

func (v *View) drawItem(c *canvas.Canvas, row int, highlighted bool) {
	item, err := v.store.ItemByID(ItemID(v.store, row))
	if err != nil {
		log.LogWithError(err).Warn("Row has no item")
		return
	}

	w, h := c.Size()
	box := v.cfg.Menu.BoxSize
	boxX := w - 2*box

	stroke, tick := v.theme.Foreground, v.tickBlack
	if highlighted {
		stroke, tick = v.theme.HighlightForeground, v.tickWhite
	}
	c.SetStrokeColor(stroke)

	_, tw := components.DrawCellTitle(c, item.Name, v.round, 2*box)
	c.DrawRect(boxX, h/2, box, 1)

	if !item.IsChecked {
		return
	}
	c.DrawBitmap(boxX, h/2, tick)

	x0, x1 := StrikeSpan(w, tw, v.round)
	c.DrawHLine(x0, x1, h/2)
}

// StrikeSpan returns the columns [x0, x1) struck through over a label of
// width textW in a cell of width cellW.
func StrikeSpan(cellW, textW int, round bool) (x0, x1 int) {
	if round {
		x0 = cellW/2 - textW/2
	} else {
		x0 = components.CellMargin
	}
	return x0, x0 + textW
}

// OnSelect implements components.MenuDataSource.
func (v *View) OnSelect(row int) tea.Cmd {
	switch KindOfRow(v.store, row) {
	case RowAdd:
		if v.session == nil {
			return nil
		}
		return v.session.Start()

	case RowClear:
		n, err := v.store.DeleteCompleted()
		if err != nil {
			log.LogWithError(err).Error("Failed to delete completed items")
			return nil
		}
		message := checklist.DeletedMessage(n)
		log.LogWithFields(log.F("deleted", n)).Info(message)

		if v.dialog == nil {
			v.dialog = dialog.NewDeletion(v.loader, v.cfg.FrameInterval(), v.theme)
		}
		cmd := v.dialog.Show(message)
		v.reload()
		return cmd

	default:
		if err := v.store.ToggleChecked(ItemID(v.store, row)); err != nil {
			log.LogWithError(err).Error("Failed to toggle item")
		}
		v.reload()
		return nil
	}
}

// EmptyLabelVisible reports whether "No items" is shown.
func (v *View) EmptyLabelVisible() bool {
	return !v.emptyHidden
}

func (v *View) View(width, height int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		v.status.View(width),
		v.Render(width, height-1).Render(),
	)
}

// Render draws the menu and, when the list is empty, the "No items" label
// under the Add row.
func (v *View) Render(width, height int) *canvas.Canvas {
	c := v.menu.Render(width, height)
	if v.emptyHidden {
		return c
	}

	rh := v.cfg.Menu.RowHeight
	top := rh
	if v.round {
		top = height/2 - rh/2 + rh
	}
	c.DrawTextAligned(top+(height-top)/2, emptyLabel, canvas.AlignCenter, components.CellMargin)
	return c
}
