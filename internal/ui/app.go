// Package ui is the Fyne shell around the paint canvas: the drawing widget,
// its toolbar, the colour picker and the save and share flows.
package ui

import (
	"fmt"

	paint "FingerPaint/internal/canvas"
	"FingerPaint/internal/config"
	"FingerPaint/internal/export"
	"FingerPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

const appID = "io.fingerpaint.app"

// RunApp opens the paint window and blocks until it closes.
func RunApp(cfg *config.Config) error {
	pal, err := cfg.BuildPalette()
	if err != nil {
		return fmt.Errorf("palette: %w", err)
	}

	a := app.NewWithID(appID)
	w := a.NewWindow("Finger Paint")
	w.Resize(fyne.NewSize(1024, 768))

	w.SetContent(build(a, w, cfg, pal).content)
	w.ShowAndRun()
	return nil
}

type shell struct {
	board   *Board
	tools   *tools
	content fyne.CanvasObject
}

// build lays out the board with the toolbar floating over its top edge, so
// hiding the toolbar never resizes the drawing.
func build(a fyne.App, w fyne.Window, cfg *config.Config, pal state.Palette) *shell {
	board := NewBoard(canvasOptions(cfg, pal)...)
	ex := &exporter{
		app:   a,
		win:   w,
		board: board,
		out: export.New(export.Config{
			Dir:    exportDir(a, cfg.Export.Dir),
			Logger: paint.Logger(),
		}),
	}
	t := newTools(w, board, ex, cfg.Pen.Width, cfg.Pen.EraserWidth)

	board.OnReady = t.ready
	board.OnPen = t.refreshIcon
	board.OnContact = func(down bool) {
		if down {
			t.bar.Hide()
		} else {
			t.bar.Show()
		}
	}
	return &shell{
		board:   board,
		tools:   t,
		content: container.NewStack(board, container.NewVBox(t.bar)),
	}
}

func canvasOptions(cfg *config.Config, pal state.Palette) []paint.Option {
	return []paint.Option{
		paint.WithBackground(cfg.BackgroundColour()),
		paint.WithPalette(pal),
		paint.WithColour(cfg.DefaultColour),
		paint.WithPen(cfg.Pen.Width, cfg.Pen.ScaleFactor, cfg.Pen.MinWidth, cfg.Pen.MaxWidth),
		paint.WithTolerance(cfg.Touch.Tolerance),
		paint.WithDeadZone(cfg.DeadZone()),
	}
}
