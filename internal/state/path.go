package state

// DefaultTolerance is the smallest move, in pixels along either axis, that
// extends the path. Smaller moves are finger jitter.
const DefaultTolerance = 4

// Builder turns the touch samples of one gesture into a smoothed stroke.
// Each accepted sample adds a quadratic segment whose control point is the
// previous sample and whose end is the midpoint of the two, so the curve
// passes smoothly through the sample midpoints.
type Builder struct {
	history   *History
	surface   Surface
	tolerance float32

	stroke  *Stroke
	last    Point
	invalid bool
}

func NewBuilder(h *History, surface Surface, tolerance float32) *Builder {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Builder{history: h, surface: surface, tolerance: tolerance}
}

// Down starts a stroke at p. A touch in the dead zone invalidates the whole
// gesture and creates nothing; Down then returns false.
func (b *Builder) Down(p Point, style Style) bool {
	b.finish()
	if b.surface.InDeadZone(p) {
		b.invalid = true
		return false
	}
	b.invalid = false
	b.stroke = b.history.Begin(style)
	b.stroke.append(Segment{Kind: MoveTo, To: p})
	b.last = p
	return true
}

// Move extends the open stroke towards p. It returns true when a segment was
// added.
func (b *Builder) Move(p Point) bool {
	if b.invalid || b.Active() == nil {
		return false
	}
	dx := abs32(p.X - b.last.X)
	dy := abs32(p.Y - b.last.Y)
	if dx < b.tolerance && dy < b.tolerance {
		return false
	}
	b.stroke.append(Segment{Kind: QuadTo, Ctrl: b.last, To: b.last.Mid(p)})
	b.last = p
	return true
}

// Up closes the stroke with a straight run to the last accepted sample and
// seals it. It returns the finished stroke, or nil when the gesture drew
// nothing.
func (b *Builder) Up() *Stroke {
	defer func() { b.invalid = false }()
	if b.invalid || b.Active() == nil {
		return nil
	}
	s := b.stroke
	s.append(Segment{Kind: LineTo, To: b.last})
	b.finish()
	return s
}

// Abort seals the open stroke as it stands. The stroke stays in history.
func (b *Builder) Abort() *Stroke {
	s := b.stroke
	b.finish()
	b.invalid = false
	return s
}

// Active returns the open stroke, or nil.
func (b *Builder) Active() *Stroke {
	if b.stroke != nil && b.stroke.Sealed() {
		b.stroke = nil
	}
	return b.stroke
}

func (b *Builder) Invalid() bool { return b.invalid }

func (b *Builder) finish() {
	if b.stroke != nil {
		b.stroke.seal()
		b.stroke = nil
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
