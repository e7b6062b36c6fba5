package state

// DrawingArea is the pixel rectangle strokes are captured in.
type DrawingArea struct {
	Width  float32
	Height float32
}

// DeadZone is the band along the top and bottom edges where a touch-down is
// ignored, so swipes for the status and navigation bars do not draw.
type DeadZone struct {
	Top    float32
	Bottom float32
}

// DefaultDeadZone keeps clear of a phone's status bar and gesture bar.
var DefaultDeadZone = DeadZone{Top: 30, Bottom: 50}

// Surface couples the drawing area with its dead zone.
type Surface struct {
	Area DrawingArea
	Dead DeadZone
}

func NewSurface(width, height int, dz DeadZone) Surface {
	return Surface{
		Area: DrawingArea{Width: float32(width), Height: float32(height)},
		Dead: dz,
	}
}

// InDeadZone reports whether a touch starting at p must not draw. Only the
// vertical position matters.
func (s Surface) InDeadZone(p Point) bool {
	if p.Y < s.Dead.Top {
		return true
	}
	d := s.Area.Height - p.Y
	if d < 0 {
		d = -d
	}
	return d < s.Dead.Bottom
}
