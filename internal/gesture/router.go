package gesture

import (
	"image/color"
	"log/slog"
	"time"

	"FingerPaint/internal/state"
)

// Renderer is what the router drives while strokes are captured.
type Renderer interface {
	Overlay(s *state.Stroke)
	Settle()
	Repaint(strokes []*state.Stroke)
}

// Session is the pen state of one drawing session.
type Session struct {
	Color color.NRGBA
	Pen   *PenSize
}

// Style is the style the next stroke will be painted with.
func (s *Session) Style() state.Style {
	return state.Style{Color: s.Color, Width: float32(s.Pen.Width())}
}

// Router routes touch and pinch input for a single screen. All calls must
// come from the goroutine that delivers input.
type Router struct {
	history *state.History
	builder *state.Builder
	render  Renderer
	session *Session
	log     *slog.Logger

	phase Phase
	// opened is the stroke begun by the current touch sequence.
	opened *state.Stroke
	// discard swallows the rest of a sequence judged accidental.
	discard bool
}

func NewRouter(h *state.History, b *state.Builder, r Renderer, s *Session, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		history: h,
		builder: b,
		render:  r,
		session: s,
		log:     logger,
	}
}

func (r *Router) Phase() Phase { return r.phase }

func (r *Router) Session() *Session { return r.session }

// Touch handles one touch sample. A second finger turns the gesture into a
// pinch; a single finger draws.
func (r *Router) Touch(ev TouchEvent) {
	if ev.Fingers > 1 {
		r.beginScale()
		return
	}
	if r.phase == Scaling {
		r.endScale()
	}
	if ev.Fingers <= 0 {
		ev.Action = Up
	}
	r.single(ev)
}

// Pinch applies one pinch update to the pen width.
func (r *Router) Pinch(ev PinchEvent) {
	r.beginScale()
	w := r.session.Pen.Scale(ev.Ratio)
	r.log.Debug("pen scaled", "ratio", ev.Ratio, "width", w)
}

// PinchEnd ends a pinch without waiting for the fingers to lift.
func (r *Router) PinchEnd() {
	if r.phase == Scaling {
		r.endScale()
	}
}

// Interrupt ends the stroke in progress, keeping what was drawn, and folds
// it into the settled picture. It is called before undo, redo or clear.
func (r *Router) Interrupt() {
	r.commitAborted()
	r.opened = nil
}

func (r *Router) beginScale() {
	if r.phase == Scaling {
		return
	}
	r.commitAborted()
	r.discard = false
	r.setPhase(Scaling)
}

// commitAborted cuts off the open stroke where it is and settles it.
func (r *Router) commitAborted() {
	if s := r.builder.Abort(); s != nil {
		r.render.Overlay(s)
		r.render.Settle()
	}
}

func (r *Router) endScale() {
	r.setPhase(Idle)
}

func (r *Router) single(ev TouchEvent) {
	pen := r.session.Pen
	defer pen.Sync()

	if pen.Changed() {
		r.rejectStray(ev)
		return
	}
	if r.discard {
		if ev.Action == Up || ev.Action == Cancel {
			r.discard = false
			r.setPhase(Idle)
		}
		return
	}

	switch ev.Action {
	case Down:
		r.setPhase(Drawing)
		r.opened = nil
		if r.builder.Down(ev.Pos, r.session.Style()) {
			r.opened = r.builder.Active()
			r.render.Overlay(r.opened)
		} else {
			r.log.Debug("touch in dead zone ignored", "x", ev.Pos.X, "y", ev.Pos.Y)
		}
	case Move:
		if r.builder.Move(ev.Pos) {
			r.render.Overlay(r.builder.Active())
		}
	case Up, Cancel:
		if s := r.builder.Up(); s != nil {
			r.render.Overlay(s)
			r.render.Settle()
			r.log.Debug("stroke committed", "id", s.ID, "segments", s.Len(), "width", s.Style.Width,
				"took", time.Since(s.Created))
		}
		r.opened = nil
		r.setPhase(Idle)
	}
}

// rejectStray runs on the first single-finger event after a pinch resized
// the pen. Lifting the fingers from a pinch usually leaves one contact that
// would draw a stroke nobody meant, so the stroke this sequence opened is
// undone and the rest of the sequence ignored.
func (r *Router) rejectStray(ev TouchEvent) {
	if r.opened != nil && r.history.Top() == r.opened {
		r.history.Undo()
		r.render.Repaint(r.history.Strokes())
		r.log.Debug("stray stroke after pinch undone", "id", r.opened.ID)
	}
	r.opened = nil
	r.builder.Abort()

	if ev.Action == Up || ev.Action == Cancel {
		r.discard = false
		r.setPhase(Idle)
		return
	}
	r.discard = true
	r.setPhase(Drawing)
}

func (r *Router) setPhase(p Phase) {
	if r.phase == p {
		return
	}
	r.log.Debug("gesture phase", "from", r.phase, "to", p)
	r.phase = p
}
