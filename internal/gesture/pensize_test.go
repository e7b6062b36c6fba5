package gesture

import "testing"

func TestPenSize_ClampsAtMax(t *testing.T) {
	p := NewPenSize(MinWidth, MaxWidth, 60, 60)
	for _, r := range []float32{1.5, 1.5, 1.5} {
		p.Scale(r)
	}
	if p.Width() != 100 {
		t.Errorf("width = %d, want 100", p.Width())
	}
	if p.Previous() != 99 {
		t.Errorf("previous = %d, want 99", p.Previous())
	}
	if p.Factor() != MaxWidth {
		t.Errorf("factor = %v, want %v", p.Factor(), float32(MaxWidth))
	}
}

func TestPenSize_ClampsAtMin(t *testing.T) {
	p := NewPenSize(MinWidth, MaxWidth, DefaultFactor, DefaultWidth)
	p.Scale(0.01)
	if p.Width() != MinWidth {
		t.Errorf("width = %d, want %d", p.Width(), MinWidth)
	}
	if p.Previous() != MinWidth-1 {
		t.Errorf("previous = %d, want %d", p.Previous(), MinWidth-1)
	}
}

func TestPenSize_Scale(t *testing.T) {
	tests := []struct {
		name   string
		ratios []float32
		want   int
	}{
		{"no change", []float32{1}, 60},
		{"grow", []float32{1.25}, 75},
		{"shrink", []float32{0.5}, 30},
		{"grow then shrink", []float32{1.5, 0.5}, 45},
		{"ignores non-positive", []float32{0, -2}, DefaultWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPenSize(MinWidth, MaxWidth, DefaultFactor, DefaultWidth)
			for _, r := range tt.ratios {
				p.Scale(r)
			}
			if p.Width() != tt.want {
				t.Errorf("width = %d, want %d", p.Width(), tt.want)
			}
		})
	}
}

func TestPenSize_ChangedAndSync(t *testing.T) {
	p := NewPenSize(MinWidth, MaxWidth, DefaultFactor, DefaultWidth)
	if p.Changed() {
		t.Fatal("fresh pen reports a change")
	}
	p.Scale(1.1)
	if !p.Changed() {
		t.Fatal("scaled pen reports no change")
	}
	p.Sync()
	if p.Changed() {
		t.Error("change survived Sync")
	}

	// Pinching against the limit keeps the width but must still count.
	p.Scale(10)
	p.Sync()
	p.Scale(10)
	if !p.Changed() {
		t.Error("saturated pinch not reported as a change")
	}
}

func TestPenSize_SetWidth(t *testing.T) {
	p := NewPenSize(MinWidth, MaxWidth, DefaultFactor, DefaultWidth)
	p.SetWidth(20)
	if p.Width() != 20 || p.Changed() {
		t.Errorf("width=%d changed=%v after SetWidth(20)", p.Width(), p.Changed())
	}
	p.Scale(2)
	if p.Width() != 40 {
		t.Errorf("pinch after preset: width = %d, want 40", p.Width())
	}
}
