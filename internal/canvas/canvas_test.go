package canvas

import (
	"bytes"
	"image/color"
	"testing"

	"FingerPaint/internal/gesture"
	"FingerPaint/internal/render"
	"FingerPaint/internal/state"
)

func touch(c *Canvas, a gesture.Action, x, y float32) {
	c.Touch(gesture.TouchEvent{Action: a, Pos: state.Point{X: x, Y: y}, Fingers: 1})
}

func stroke(c *Canvas, pts ...state.Point) {
	touch(c, gesture.Down, pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		touch(c, gesture.Move, p.X, p.Y)
	}
	last := pts[len(pts)-1]
	touch(c, gesture.Up, last.X, last.Y)
}

func TestCanvas_StrokeThenUndo(t *testing.T) {
	c := New(1000, 1000)
	blank := c.Snapshot()

	stroke(c, state.Point{X: 500, Y: 500}, state.Point{X: 520, Y: 520})
	if c.UndoDepth() != 1 {
		t.Fatalf("undo depth = %d, want 1", c.UndoDepth())
	}
	s := c.Strokes()[0]
	segs := s.Segments()
	if segs[0].To != (state.Point{X: 500, Y: 500}) || segs[len(segs)-1].To != (state.Point{X: 520, Y: 520}) {
		t.Errorf("path runs %v to %v", segs[0].To, segs[len(segs)-1].To)
	}
	drawn := c.Snapshot()
	if bytes.Equal(drawn.Pix, blank.Pix) {
		t.Fatal("snapshot unchanged by the stroke")
	}
	if got := color.NRGBAModel.Convert(drawn.At(510, 510)); got == c.Background() {
		t.Error("stroke pixel is background")
	}

	if !c.Undo() {
		t.Fatal("undo reported no change")
	}
	if c.UndoDepth() != 0 || c.RedoDepth() != 1 {
		t.Errorf("undo=%d redo=%d, want 0 and 1", c.UndoDepth(), c.RedoDepth())
	}
	if !bytes.Equal(c.Snapshot().Pix, blank.Pix) {
		t.Error("snapshot after undo is not the blank background")
	}

	if !c.Redo() {
		t.Fatal("redo reported no change")
	}
	if !bytes.Equal(c.Snapshot().Pix, drawn.Pix) {
		t.Error("redo did not restore the picture")
	}
}

func TestCanvas_EmptyUndoRedo(t *testing.T) {
	c := New(200, 200)
	if c.Undo() || c.Redo() {
		t.Error("undo/redo on an empty canvas reported a change")
	}
	c.Clear()
	if c.UndoDepth() != 0 {
		t.Error("clear on an empty canvas added strokes")
	}
}

func TestCanvas_ClearMatchesFresh(t *testing.T) {
	c := New(300, 300)
	stroke(c, state.Point{X: 50, Y: 50}, state.Point{X: 250, Y: 250})
	stroke(c, state.Point{X: 250, Y: 50}, state.Point{X: 50, Y: 250})
	c.Undo()
	c.Clear()

	if c.UndoDepth() != 0 || c.RedoDepth() != 0 {
		t.Errorf("undo=%d redo=%d after clear", c.UndoDepth(), c.RedoDepth())
	}
	if !bytes.Equal(c.Snapshot().Pix, New(300, 300).Snapshot().Pix) {
		t.Error("cleared canvas differs from a fresh one")
	}
}

func TestCanvas_DrawAfterUndoDropsRedo(t *testing.T) {
	c := New(300, 300)
	stroke(c, state.Point{X: 50, Y: 50}, state.Point{X: 250, Y: 250})
	c.Undo()
	stroke(c, state.Point{X: 50, Y: 250}, state.Point{X: 250, Y: 50})
	if c.Redo() {
		t.Error("redo after drawing should be a no-op")
	}
	if c.UndoDepth() != 1 {
		t.Errorf("undo depth = %d, want 1", c.UndoDepth())
	}
}

func TestCanvas_StrokeKeepsItsStyle(t *testing.T) {
	c := New(300, 300)
	if !c.SelectColour("blue") {
		t.Fatal("blue missing from palette")
	}
	c.SetWidth(30)
	stroke(c, state.Point{X: 50, Y: 150}, state.Point{X: 250, Y: 150})
	c.SelectColour("black")
	c.SetWidth(5)

	s := c.Strokes()[0]
	blue, _ := c.Palette().Lookup("blue")
	if s.Style.Color != blue.Color || s.Style.Width != 30 {
		t.Errorf("stroke style = %+v, want blue width 30", s.Style)
	}
	if name, ok := c.ColourName(); !ok || name != "black" {
		t.Errorf("colour name = %q, %v", name, ok)
	}
}

func TestCanvas_PinchScenario(t *testing.T) {
	c := New(1000, 1000, WithPen(60, 60, gesture.MinWidth, gesture.MaxWidth))
	for _, r := range []float32{1.5, 1.5, 1.5} {
		c.Pinch(r)
	}
	c.PinchEnd()
	if c.Width() != 100 || c.PreviousWidth() != 99 {
		t.Errorf("width=%d previous=%d, want 100 and 99", c.Width(), c.PreviousWidth())
	}
	if got := c.PenIcon().Bounds().Dx(); got != 102 {
		t.Errorf("pen icon width = %d, want 102", got)
	}
}

func TestCanvas_Options(t *testing.T) {
	black := color.NRGBA{A: 255}
	c := New(100, 100,
		WithBackground(black),
		WithColour("green"),
		WithDeadZone(state.DeadZone{}),
		WithTolerance(1))

	if c.Background() != black {
		t.Errorf("background = %v", c.Background())
	}
	if name, _ := c.ColourName(); name != "green" {
		t.Errorf("colour = %q, want green", name)
	}
	if erase, _ := c.Palette().Lookup(state.EraseName); erase.Color != black {
		t.Errorf("erase = %v, want the background", erase.Color)
	}

	// No dead zone: a stroke right at the top edge draws.
	stroke(c, state.Point{X: 10, Y: 0}, state.Point{X: 12, Y: 0})
	if c.UndoDepth() != 1 {
		t.Errorf("undo depth = %d, want 1", c.UndoDepth())
	}
	if c.Strokes()[0].Len() != 3 {
		t.Errorf("2px move with 1px tolerance: %d segments, want 3", c.Strokes()[0].Len())
	}
}

func TestCanvas_UnknownColourFallsBack(t *testing.T) {
	pal := state.Palette{{Name: "ink", Color: color.NRGBA{B: 80, A: 255}}}
	c := New(50, 50, WithPalette(pal), WithColour("red"))
	if c.Color() != pal[0].Color {
		t.Errorf("colour = %v, want first palette entry", c.Color())
	}
	if c.SelectColour("red") {
		t.Error("selected a colour outside the palette")
	}
}

// replay renders the visible strokes from scratch.
func replay(c *Canvas) []byte {
	w, h := c.Size()
	comp := render.NewCompositor(w, h, c.Background())
	comp.Repaint(c.Strokes())
	return comp.Snapshot().Pix
}

func TestCanvas_HistoryButtonsMidStroke(t *testing.T) {
	tests := []struct {
		name    string
		press   func(*Canvas)
		strokes int
	}{
		{"redo", func(c *Canvas) { c.Redo() }, 1},
		{"undo", func(c *Canvas) { c.Undo() }, 0},
		{"clear", func(c *Canvas) { c.Clear() }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(200, 200)
			blank := c.Snapshot()
			touch(c, gesture.Down, 50, 100)
			touch(c, gesture.Move, 80, 100)
			tt.press(c)

			if c.UndoDepth() != tt.strokes {
				t.Fatalf("undo depth = %d, want %d", c.UndoDepth(), tt.strokes)
			}
			want := replay(c)
			if !bytes.Equal(c.Snapshot().Pix, want) {
				t.Error("snapshot differs from a replay of the history")
			}
			if !bytes.Equal(c.Image().Pix, want) {
				t.Error("display differs from a replay of the history")
			}
			if drawn := !bytes.Equal(c.Snapshot().Pix, blank.Pix); drawn != (tt.strokes > 0) {
				t.Errorf("snapshot drawn = %v, want %v", drawn, tt.strokes > 0)
			}

			touch(c, gesture.Up, 80, 100)
			if c.UndoDepth() != tt.strokes {
				t.Errorf("lift changed undo depth to %d", c.UndoDepth())
			}
			if !bytes.Equal(c.Snapshot().Pix, replay(c)) {
				t.Error("snapshot after lift differs from a replay")
			}
		})
	}
}
