// Package canvas ties the drawing core together. A Canvas is one drawing
// session: the stroke history, the picture rendered from it and the gesture
// routing that feeds both. The UI shell sends it input and button presses
// and reads back an image.
//
// A Canvas is not safe for concurrent use. Every method must be called from
// the goroutine that delivers input; Snapshot returns a copy that may be
// handed to other goroutines.
package canvas

import (
	"image"
	"image/color"
	"log/slog"

	"FingerPaint/internal/gesture"
	"FingerPaint/internal/render"
	"FingerPaint/internal/state"
)

type Canvas struct {
	width, height int

	history *state.History
	comp    *render.Compositor
	router  *gesture.Router
	session *gesture.Session
	palette state.Palette
	log     *slog.Logger
}

// New creates a blank canvas of width x height pixels.
func New(width, height int, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	width, height = max(width, 1), max(height, 1)
	if o.logger == nil {
		o.logger = Logger()
	}
	if len(o.palette) == 0 {
		o.palette = state.DefaultPalette(o.background)
	}

	entry, ok := o.palette.Lookup(o.colour)
	if !ok {
		entry = o.palette[0]
	}

	h := state.NewHistory()
	comp := render.NewCompositor(width, height, o.background)
	b := state.NewBuilder(h, state.NewSurface(width, height, o.deadZone), o.tolerance)
	session := &gesture.Session{
		Color: entry.Color,
		Pen:   gesture.NewPenSize(o.minWidth, o.maxWidth, o.factor, o.width),
	}

	c := &Canvas{
		width:   width,
		height:  height,
		history: h,
		comp:    comp,
		router:  gesture.NewRouter(h, b, comp, session, o.logger),
		session: session,
		palette: o.palette,
		log:     o.logger,
	}
	c.log.Info("canvas ready", "width", width, "height", height, "colour", entry.Name)
	return c
}

// Touch feeds one touch sample.
func (c *Canvas) Touch(ev gesture.TouchEvent) {
	c.router.Touch(ev)
}

// Pinch feeds one pinch update; ratio is the change in finger spread since
// the previous update.
func (c *Canvas) Pinch(ratio float32) {
	c.router.Pinch(gesture.PinchEvent{Ratio: ratio})
}

// PinchEnd reports that the platform's pinch detector finished.
func (c *Canvas) PinchEnd() {
	c.router.PinchEnd()
}

// Undo hides the newest stroke. It reports whether anything changed.
func (c *Canvas) Undo() bool {
	c.router.Interrupt()
	if !c.history.Undo() {
		return false
	}
	c.comp.Repaint(c.history.Strokes())
	c.log.Info("undo", "visible", c.history.UndoDepth(), "redoable", c.history.RedoDepth())
	return true
}

// Redo brings back the most recently undone stroke. It reports whether
// anything changed.
func (c *Canvas) Redo() bool {
	c.router.Interrupt()
	if !c.history.Redo() {
		return false
	}
	c.comp.Repaint(c.history.Strokes())
	c.log.Info("redo", "visible", c.history.UndoDepth(), "redoable", c.history.RedoDepth())
	return true
}

// Clear wipes every stroke, including those that could be redone.
func (c *Canvas) Clear() {
	c.router.Interrupt()
	c.history.Clear()
	c.comp.Repaint(nil)
	c.log.Info("clear")
}

// SetColor sets the colour of the next stroke.
func (c *Canvas) SetColor(col color.NRGBA) {
	c.session.Color = col
	c.log.Debug("pen colour", "colour", col)
}

// SelectColour sets the pen colour to a palette entry by name.
func (c *Canvas) SelectColour(name string) bool {
	e, ok := c.palette.Lookup(name)
	if !ok {
		return false
	}
	c.SetColor(e.Color)
	return true
}

func (c *Canvas) Color() color.NRGBA { return c.session.Color }

// ColourName returns the palette name of the pen colour, if it has one.
func (c *Canvas) ColourName() (string, bool) {
	e, ok := c.palette.Find(c.session.Color)
	return e.Name, ok
}

// SetWidth sets the pen width directly.
func (c *Canvas) SetWidth(w int) {
	c.session.Pen.SetWidth(w)
	c.log.Debug("pen width", "width", w)
}

// ScalePen resizes the pen by ratio outside any touch gesture, as a mouse
// wheel does. The next touch is not treated as a pinch leftover.
func (c *Canvas) ScalePen(ratio float32) int {
	w := c.session.Pen.Scale(ratio)
	c.session.Pen.Sync()
	c.log.Debug("pen scaled", "ratio", ratio, "width", w)
	return w
}

func (c *Canvas) Width() int { return c.session.Pen.Width() }

// PreviousWidth is the pen width at the last single-finger event.
func (c *Canvas) PreviousWidth() int { return c.session.Pen.Previous() }

func (c *Canvas) Palette() state.Palette { return c.palette }

func (c *Canvas) Phase() gesture.Phase { return c.router.Phase() }

func (c *Canvas) UndoDepth() int { return c.history.UndoDepth() }

func (c *Canvas) RedoDepth() int { return c.history.RedoDepth() }

// Strokes returns the visible strokes, oldest first.
func (c *Canvas) Strokes() []*state.Stroke { return c.history.Strokes() }

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

func (c *Canvas) Background() color.NRGBA { return c.comp.Background() }

// Image is the live picture for display. It changes in place with every
// event.
func (c *Canvas) Image() *image.RGBA { return c.comp.Image() }

// Snapshot copies the finished strokes into a new image for export. A stroke
// still being drawn is left out.
func (c *Canvas) Snapshot() *image.RGBA { return c.comp.Snapshot() }

// PenIcon renders a preview of the current pen.
func (c *Canvas) PenIcon() *image.RGBA {
	return render.PenIcon(c.session.Pen.Width(), c.session.Color)
}
