package state

import (
	"image/color"
	"reflect"
	"testing"
)

var red = Style{Color: color.NRGBA{R: 255, A: 255}, Width: 15}

func newTestBuilder(h *History) *Builder {
	return NewBuilder(h, NewSurface(1000, 1000, DefaultDeadZone), DefaultTolerance)
}

func TestBuilder_SingleStroke(t *testing.T) {
	h := NewHistory()
	b := newTestBuilder(h)

	if !b.Down(Point{500, 500}, red) {
		t.Fatal("down in the middle of the surface was rejected")
	}
	if !b.Move(Point{520, 520}) {
		t.Fatal("move of 20px added no segment")
	}
	s := b.Up()
	if s == nil {
		t.Fatal("up returned no stroke")
	}

	if h.UndoDepth() != 1 {
		t.Fatalf("undo depth = %d, want 1", h.UndoDepth())
	}
	want := []Segment{
		{Kind: MoveTo, To: Point{500, 500}},
		{Kind: QuadTo, Ctrl: Point{500, 500}, To: Point{510, 510}},
		{Kind: LineTo, To: Point{520, 520}},
	}
	if got := s.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("segments = %+v\nwant %+v", got, want)
	}
	if !s.Sealed() {
		t.Error("finished stroke is not sealed")
	}
	if s.Style != red {
		t.Errorf("style = %+v, want %+v", s.Style, red)
	}
}

func TestBuilder_JitterSuppressed(t *testing.T) {
	jitter := []Point{{502, 501}, {503, 497}, {498, 499}, {501, 503}, {497, 497}}

	h1 := NewHistory()
	b1 := newTestBuilder(h1)
	b1.Down(Point{500, 500}, red)
	for _, p := range jitter {
		if b1.Move(p) {
			t.Errorf("move to %v added a segment", p)
		}
	}
	with := b1.Up()

	h2 := NewHistory()
	b2 := newTestBuilder(h2)
	b2.Down(Point{500, 500}, red)
	without := b2.Up()

	if !reflect.DeepEqual(with.Segments(), without.Segments()) {
		t.Errorf("jitter changed the path:\n%+v\n%+v", with.Segments(), without.Segments())
	}
}

func TestBuilder_ToleranceEitherAxis(t *testing.T) {
	tests := []struct {
		name string
		to   Point
		want bool
	}{
		{"x at tolerance", Point{104, 100}, true},
		{"y at tolerance", Point{100, 104}, true},
		{"both under", Point{103.9, 103.9}, false},
		{"negative x", Point{96, 100}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(NewHistory())
			b.Down(Point{100, 100}, red)
			if got := b.Move(tt.to); got != tt.want {
				t.Errorf("Move(%v) = %v, want %v", tt.to, got, tt.want)
			}
		})
	}
}

func TestBuilder_DeadZone(t *testing.T) {
	tests := []struct {
		name string
		y    float32
	}{
		{"top edge", 0},
		{"under status bar", 29},
		{"over gesture bar", 951},
		{"bottom edge", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory()
			b := newTestBuilder(h)
			if b.Down(Point{500, tt.y}, red) {
				t.Fatal("down in dead zone started a stroke")
			}
			b.Move(Point{500, 500})
			b.Move(Point{600, 600})
			if s := b.Up(); s != nil {
				t.Error("up after dead-zone down returned a stroke")
			}
			if h.UndoDepth() != 0 {
				t.Errorf("undo depth = %d, want 0", h.UndoDepth())
			}
			if b.Invalid() {
				t.Error("invalid flag survived touch-up")
			}
		})
	}
}

func TestBuilder_DeadZoneBoundaries(t *testing.T) {
	b := newTestBuilder(NewHistory())
	if !b.Down(Point{500, 30}, red) {
		t.Error("y=30 should be drawable")
	}
	b.Up()
	if !b.Down(Point{500, 950}, red) {
		t.Error("y=950 should be drawable")
	}
}

func TestBuilder_AbortKeepsStroke(t *testing.T) {
	h := NewHistory()
	b := newTestBuilder(h)
	b.Down(Point{200, 200}, red)
	b.Move(Point{220, 200})
	s := b.Abort()
	if s == nil || !s.Sealed() {
		t.Fatal("abort should seal the open stroke")
	}
	if h.Top() != s {
		t.Error("aborted stroke left history")
	}
	if b.Move(Point{300, 300}) {
		t.Error("move after abort extended a stroke")
	}
	if b.Up() != nil {
		t.Error("up after abort returned a stroke")
	}
}

func TestBuilder_UndoDuringDrag(t *testing.T) {
	h := NewHistory()
	b := newTestBuilder(h)
	b.Down(Point{200, 200}, red)
	h.Undo()
	if b.Move(Point{250, 250}) {
		t.Error("undone stroke kept growing")
	}
	if b.Up() != nil {
		t.Error("up returned an undone stroke")
	}
	if got := h.PeekRedo().Len(); got != 1 {
		t.Errorf("undone stroke has %d segments, want 1", got)
	}
}

func TestStroke_IsDot(t *testing.T) {
	b := newTestBuilder(NewHistory())
	b.Down(Point{300, 300}, red)
	if s := b.Up(); !s.IsDot() {
		t.Error("tap should produce a dot")
	}
	b.Down(Point{300, 300}, red)
	b.Move(Point{310, 300})
	if s := b.Up(); s.IsDot() {
		t.Error("drag should not produce a dot")
	}
}
