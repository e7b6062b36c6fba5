package ui

import (
	"image/color"

	paint "FingerPaint/internal/canvas"
	"FingerPaint/internal/export"
	"FingerPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var (
	tickLight = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	tickDark  = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
)

// colorSwatch is one tappable palette entry. The selected swatch carries a
// tick in a colour that stands out against it.
type colorSwatch struct {
	widget.BaseWidget
	Entry    state.PaletteEntry
	Selected bool
	OnTapped func(state.PaletteEntry)
}

func newColorSwatch(e state.PaletteEntry, selected bool, tapped func(state.PaletteEntry)) *colorSwatch {
	s := &colorSwatch{Entry: e, Selected: selected, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Entry.Color)
	rect.SetMinSize(fyne.NewSize(44, 44))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	objects := []fyne.CanvasObject{rect, border}
	if s.Entry.Name == state.EraseName {
		objects = append(objects, container.NewCenter(widget.NewIcon(theme.ContentClearIcon())))
	}
	if s.Selected {
		tick := canvas.NewText("✓", tickColour(s.Entry))
		tick.TextSize = 24
		tick.TextStyle.Bold = true
		objects = append(objects, container.NewCenter(tick))
	}
	return widget.NewSimpleRenderer(container.NewStack(objects...))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Entry)
	}
}

func tickColour(e state.PaletteEntry) color.Color {
	if e.IsDark() {
		return tickLight
	}
	return tickDark
}

// tools holds the toolbar and the pen state it switches between.
type tools struct {
	win      fyne.Window
	board    *Board
	exporter *exporter

	penWidth    int
	eraserWidth int
	// lastColour is restored when switching back from the eraser.
	lastColour string

	icon *canvas.Image
	bar  fyne.CanvasObject
}

func newTools(win fyne.Window, board *Board, ex *exporter, penWidth, eraserWidth int) *tools {
	t := &tools{
		win:         win,
		board:       board,
		exporter:    ex,
		penWidth:    penWidth,
		eraserWidth: eraserWidth,
	}
	t.icon = canvas.NewImageFromImage(nil)
	t.icon.FillMode = canvas.ImageFillContain
	t.icon.SetMinSize(fyne.NewSize(36, 36))

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), t.undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), t.redo),
		widget.NewToolbarAction(theme.DeleteIcon(), t.confirmClear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ColorPaletteIcon(), t.showPalette),
		widget.NewToolbarAction(theme.DocumentCreateIcon(), t.pen),
		widget.NewToolbarAction(theme.ContentClearIcon(), t.eraser),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { t.exporter.run(export.Save) }),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() { t.exporter.run(export.SavePDF) }),
		widget.NewToolbarAction(theme.MailSendIcon(), func() { t.exporter.run(export.Share) }),
	)
	t.bar = container.NewHBox(tb, t.icon)
	return t
}

// ready records the starting colour once the canvas exists.
func (t *tools) ready(c *paint.Canvas) {
	if name, ok := c.ColourName(); ok && name != state.EraseName {
		t.lastColour = name
	}
	t.refreshIcon()
}

func (t *tools) withCanvas(fn func(c *paint.Canvas)) {
	if c := t.board.Canvas(); c != nil {
		fn(c)
		t.board.Redraw()
		t.refreshIcon()
	}
}

func (t *tools) refreshIcon() {
	if c := t.board.Canvas(); c != nil {
		t.icon.Image = c.PenIcon()
		t.icon.Refresh()
	}
}

func (t *tools) undo() { t.withCanvas(func(c *paint.Canvas) { c.Undo() }) }

func (t *tools) redo() { t.withCanvas(func(c *paint.Canvas) { c.Redo() }) }

func (t *tools) confirmClear() {
	c := t.board.Canvas()
	if c == nil || c.UndoDepth()+c.RedoDepth() == 0 {
		return
	}
	dialog.ShowConfirm("Clear", "Clear the whole drawing?", func(ok bool) {
		if ok {
			t.withCanvas(func(c *paint.Canvas) { c.Clear() })
		}
	}, t.win)
}

func (t *tools) pen() {
	t.withCanvas(func(c *paint.Canvas) {
		if t.lastColour != "" {
			c.SelectColour(t.lastColour)
		}
		c.SetWidth(t.penWidth)
	})
}

func (t *tools) eraser() {
	t.withCanvas(func(c *paint.Canvas) {
		if name, ok := c.ColourName(); ok && name != state.EraseName {
			t.lastColour = name
		}
		c.SelectColour(state.EraseName)
		c.SetWidth(t.eraserWidth)
	})
}

func (t *tools) choose(e state.PaletteEntry) {
	t.withCanvas(func(c *paint.Canvas) {
		c.SetColor(e.Color)
		if e.Name != state.EraseName {
			t.lastColour = e.Name
		}
	})
}

// showPalette opens the colour picker. Picking a colour closes it.
func (t *tools) showPalette() {
	c := t.board.Canvas()
	if c == nil {
		return
	}
	current, _ := c.ColourName()

	var d dialog.Dialog
	grid := container.NewGridWithColumns(5)
	for _, e := range c.Palette() {
		grid.Add(newColorSwatch(e, e.Name == current, func(e state.PaletteEntry) {
			t.choose(e)
			d.Hide()
		}))
	}
	d = dialog.NewCustom("Colour", "Close", grid, t.win)
	d.Show()
}
