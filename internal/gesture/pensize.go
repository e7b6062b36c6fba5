package gesture

import "math"

const (
	MinWidth = 5
	MaxWidth = 100

	// DefaultFactor is where the pinch scale starts, in pixels.
	DefaultFactor = 60
	// DefaultWidth is the pen width before the first pinch.
	DefaultWidth = 15
)

// PenSize turns pinch ratios into a pen width. It also remembers the width in
// effect at the last single-finger event; a difference between the two means
// a pinch has just resized the pen.
type PenSize struct {
	min, max float32
	factor   float32
	width    int
	previous int
}

func NewPenSize(min, max, factor float32, width int) *PenSize {
	if min <= 0 {
		min = MinWidth
	}
	if max < min {
		max = MaxWidth
	}
	p := &PenSize{min: min, max: max, width: width, previous: width}
	p.factor = p.clamp(factor)
	return p
}

// Scale applies one pinch update and returns the new width.
func (p *PenSize) Scale(ratio float32) int {
	if ratio <= 0 || math.IsNaN(float64(ratio)) {
		return p.width
	}
	p.factor = p.clamp(p.factor * ratio)
	w := int(math.Round(float64(p.factor)))
	if p.factor == p.min || p.factor == p.max {
		// A pinch that only pushes against the limit leaves the width
		// unchanged; skew previous so the stray-touch check still fires.
		p.previous = w - 1
	}
	p.width = w
	return w
}

// SetWidth sets the width directly, as the pen and eraser presets do. The
// pinch scale follows so the next pinch continues from here.
func (p *PenSize) SetWidth(w int) {
	p.factor = p.clamp(float32(w))
	p.width = w
	p.previous = w
}

func (p *PenSize) Width() int { return p.width }

func (p *PenSize) Previous() int { return p.previous }

func (p *PenSize) Factor() float32 { return p.factor }

// Changed reports whether the width moved since the last Sync.
func (p *PenSize) Changed() bool { return p.previous != p.width }

// Sync records the current width as the one in effect.
func (p *PenSize) Sync() { p.previous = p.width }

func (p *PenSize) clamp(v float32) float32 {
	return max(p.min, min(v, p.max))
}
