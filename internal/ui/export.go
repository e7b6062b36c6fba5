package ui

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"

	"FingerPaint/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// exporter runs saves and shares off the UI goroutine and reports back on it.
type exporter struct {
	app   fyne.App
	win   fyne.Window
	board *Board
	out   *export.Exporter

	// done, when set, receives every result after it has been shown.
	done func(export.Result)
}

func (e *exporter) run(kind export.Kind) {
	c := e.board.Canvas()
	if c == nil {
		return
	}
	results := e.out.Start(context.Background(), kind, c.Snapshot())
	go func() {
		res := <-results
		fyne.Do(func() { e.finish(res) })
	}()
}

func (e *exporter) finish(res export.Result) {
	switch {
	case res.Err != nil:
		dialog.ShowError(res.Err, e.win)
	case res.Kind == export.Share:
		u := &url.URL{Scheme: "file", Path: filepath.ToSlash(res.Path)}
		if err := e.app.OpenURL(u); err != nil {
			dialog.ShowError(fmt.Errorf("share %s: %w", res.Path, err), e.win)
		}
	default:
		dialog.ShowInformation("Saved", "Saved to "+res.Path, e.win)
	}
	if e.done != nil {
		e.done(res)
	}
}

// exportDir resolves a relative directory against the app's storage root.
func exportDir(a fyne.App, dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	root := a.Storage().RootURI()
	if root == nil {
		return dir
	}
	return filepath.Join(root.Path(), dir)
}
