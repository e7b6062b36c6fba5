package state

import (
	"image/color"
	"time"
)

type Point struct{ X, Y float32 }

// Mid returns the point halfway between p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

type SegmentKind uint8

const (
	MoveTo SegmentKind = iota
	QuadTo
	LineTo
)

func (k SegmentKind) String() string {
	switch k {
	case MoveTo:
		return "move"
	case QuadTo:
		return "quad"
	case LineTo:
		return "line"
	}
	return "unknown"
}

// Segment is one element of a stroke's path. Ctrl is only meaningful for QuadTo.
type Segment struct {
	Kind SegmentKind
	Ctrl Point
	To   Point
}

// Style is the colour and width a stroke is painted with. It is fixed when the
// stroke begins and never changes afterwards.
type Style struct {
	Color color.NRGBA
	Width float32
}

// Stroke is one finger drag: a style plus the smoothed path built from the
// touch samples. Geometry can only be appended while the stroke is open;
// once sealed it is immutable.
type Stroke struct {
	ID       string
	Style    Style
	Created  time.Time
	segments []Segment
	sealed   bool
}

func newStroke(style Style) *Stroke {
	return &Stroke{
		ID:      newStrokeID(),
		Style:   style,
		Created: time.Now(),
	}
}

// Segments returns a copy of the stroke's path.
func (s *Stroke) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

func (s *Stroke) Len() int { return len(s.segments) }

func (s *Stroke) Sealed() bool { return s.sealed }

// Points returns every point the path references, control points included.
// The painted stroke lies inside their hull grown by half the width.
func (s *Stroke) Points() []Point {
	pts := make([]Point, 0, len(s.segments)*2)
	for _, seg := range s.segments {
		if seg.Kind == QuadTo {
			pts = append(pts, seg.Ctrl)
		}
		pts = append(pts, seg.To)
	}
	return pts
}

// IsDot reports whether the path never left its first point.
func (s *Stroke) IsDot() bool {
	pts := s.Points()
	if len(pts) == 0 {
		return false
	}
	for _, p := range pts[1:] {
		if p != pts[0] {
			return false
		}
	}
	return true
}

func (s *Stroke) append(seg Segment) bool {
	if s.sealed {
		return false
	}
	s.segments = append(s.segments, seg)
	return true
}

func (s *Stroke) seal() { s.sealed = true }
