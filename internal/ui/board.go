package ui

import (
	"image/color"
	"time"

	paint "FingerPaint/internal/canvas"
	"FingerPaint/internal/gesture"
	"FingerPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// wheelStep is the scroll distance that doubles or halves the pen.
const wheelStep = 200

// Board shows a paint canvas and feeds it pointer input. The canvas is
// created on the first layout with a real size and keeps that size; later
// resizes stretch the picture and input is mapped back onto it.
type Board struct {
	widget.BaseWidget

	opts    []paint.Option
	paint   *paint.Canvas
	image   *canvas.Image
	bg      *canvas.Rectangle
	touches int
	mouse   bool

	// OnContact is called with true when the first finger goes down and
	// with false when the last one lifts.
	OnContact func(down bool)
	// OnReady is called once the canvas exists.
	OnReady func(c *paint.Canvas)
	// OnPen is called after the pen width changes from input.
	OnPen func()
}

var (
	_ fyne.Widget       = (*Board)(nil)
	_ fyne.Draggable    = (*Board)(nil)
	_ fyne.Scrollable   = (*Board)(nil)
	_ desktop.Mouseable = (*Board)(nil)
	_ mobile.Touchable  = (*Board)(nil)
)

func NewBoard(opts ...paint.Option) *Board {
	b := &Board{
		opts: opts,
		bg:   canvas.NewRectangle(color.White),
	}
	b.image = canvas.NewImageFromImage(nil)
	b.image.FillMode = canvas.ImageFillStretch
	b.image.ScaleMode = canvas.ImageScalePixels
	b.ExtendBaseWidget(b)
	return b
}

// Canvas returns the drawing, or nil before the board has been laid out.
func (b *Board) Canvas() *paint.Canvas { return b.paint }

// Resize creates the canvas on the first non-empty size.
func (b *Board) Resize(s fyne.Size) {
	b.BaseWidget.Resize(s)
	if b.paint != nil || s.Width < 1 || s.Height < 1 {
		return
	}
	b.paint = paint.New(int(s.Width), int(s.Height), b.opts...)
	b.bg.FillColor = b.paint.Background()
	b.image.Image = b.paint.Image()
	b.Refresh()
	if b.OnReady != nil {
		b.OnReady(b.paint)
	}
}

// Redraw pushes the canvas picture to the screen.
func (b *Board) Redraw() {
	if b.paint != nil {
		b.image.Refresh()
	}
}

func (b *Board) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.mouse = true
	b.contact(true)
	b.send(gesture.Down, e.Position, 1)
}

func (b *Board) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !b.mouse {
		return
	}
	b.mouse = false
	b.send(gesture.Up, e.Position, 1)
	b.contact(false)
}

func (b *Board) TouchDown(e *mobile.TouchEvent) {
	b.touches++
	if b.touches == 1 {
		b.contact(true)
	}
	b.send(gesture.Down, e.Position, b.touches)
}

func (b *Board) TouchUp(e *mobile.TouchEvent) {
	if b.touches == 0 {
		return
	}
	b.send(gesture.Up, e.Position, b.touches)
	b.touches--
	if b.touches == 0 {
		b.contact(false)
	}
}

func (b *Board) TouchCancel(e *mobile.TouchEvent) {
	if b.touches == 0 {
		return
	}
	b.touches = 0
	b.send(gesture.Cancel, e.Position, 1)
	b.contact(false)
}

func (b *Board) Dragged(e *fyne.DragEvent) {
	if !b.mouse && b.touches == 0 {
		return
	}
	b.send(gesture.Move, e.Position, max(b.touches, 1))
}

// DragEnd is left to MouseUp and TouchUp, which carry the lift position.
func (b *Board) DragEnd() {}

// Scrolled resizes the pen. Fyne reports no finger spread, so the wheel and
// two-finger scroll stand in for a pinch.
func (b *Board) Scrolled(e *fyne.ScrollEvent) {
	if b.paint == nil || e.Scrolled.DY == 0 {
		return
	}
	ratio := min(max(1+e.Scrolled.DY/wheelStep, 0.5), 2)
	b.paint.ScalePen(ratio)
	if b.OnPen != nil {
		b.OnPen()
	}
}

func (b *Board) MouseIn(*desktop.MouseEvent)    {}
func (b *Board) MouseMoved(*desktop.MouseEvent) {}
func (b *Board) MouseOut()                      {}

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	return &boardRenderer{board: b}
}

func (b *Board) send(a gesture.Action, pos fyne.Position, fingers int) {
	if b.paint == nil {
		return
	}
	width := b.paint.Width()
	b.paint.Touch(gesture.TouchEvent{
		Action:  a,
		Pos:     b.toCanvas(pos),
		Time:    time.Now(),
		Fingers: fingers,
	})
	b.Redraw()
	if b.paint.Width() != width && b.OnPen != nil {
		b.OnPen()
	}
}

// toCanvas maps a widget position onto canvas pixels.
func (b *Board) toCanvas(pos fyne.Position) state.Point {
	size := b.Size()
	w, h := b.paint.Size()
	if size.Width < 1 || size.Height < 1 {
		return state.Point{X: pos.X, Y: pos.Y}
	}
	return state.Point{
		X: pos.X * float32(w) / size.Width,
		Y: pos.Y * float32(h) / size.Height,
	}
}

func (b *Board) contact(down bool) {
	if b.OnContact != nil {
		b.OnContact(down)
	}
}

type boardRenderer struct {
	board *Board
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.bg, r.board.image}
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.board.bg.Resize(size)
	r.board.image.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size { return fyne.NewSize(300, 300) }

func (r *boardRenderer) Refresh() {
	r.board.bg.Refresh()
	r.board.image.Refresh()
}

func (r *boardRenderer) Destroy() {}
