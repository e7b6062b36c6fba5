// Package render owns the raster side of a drawing session: the persistent
// picture built from the visible strokes and the live feedback for the
// stroke under the finger.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"FingerPaint/internal/state"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Compositor keeps two images of the same size. base holds every settled
// stroke; surface is base plus the live stroke and is what gets displayed.
// While a stroke is being drawn only the rectangle it covers is restored
// from base and repainted, so a frame costs the same however long the
// history is.
type Compositor struct {
	bg      color.NRGBA
	base    *image.RGBA
	surface *image.RGBA

	baseBrush    *brush
	surfaceBrush *brush

	live  *state.Stroke
	dirty image.Rectangle
}

// NewCompositor allocates a blank width x height picture.
func NewCompositor(width, height int, background color.NRGBA) *Compositor {
	r := image.Rect(0, 0, width, height)
	c := &Compositor{
		bg:      background,
		base:    image.NewRGBA(r),
		surface: image.NewRGBA(r),
	}
	c.baseBrush = newBrush(c.base)
	c.surfaceBrush = newBrush(c.surface)
	c.clear()
	return c
}

// Repaint rebuilds the picture from scratch: background first, then every
// stroke oldest to newest so later strokes cover earlier ones.
func (c *Compositor) Repaint(strokes []*state.Stroke) {
	c.clear()
	for _, s := range strokes {
		c.baseBrush.paint(s)
	}
	copy(c.surface.Pix, c.base.Pix)
}

// Overlay redraws the live stroke s on top of the settled picture. Switching
// to a different stroke settles the previous one first.
func (c *Compositor) Overlay(s *state.Stroke) {
	if s == nil {
		return
	}
	if c.live != nil && c.live != s {
		c.Settle()
	}
	c.live = s
	r := strokeBounds(s).Intersect(c.surface.Bounds())
	c.dirty = c.dirty.Union(r)
	draw.Draw(c.surface, c.dirty, c.base, c.dirty.Min, draw.Src)
	c.surfaceBrush.paint(s)
}

// Settle folds the live stroke into the settled picture.
func (c *Compositor) Settle() {
	if c.live == nil {
		return
	}
	draw.Draw(c.base, c.dirty, c.surface, c.dirty.Min, draw.Src)
	c.live = nil
	c.dirty = image.Rectangle{}
}

// Image is the displayed picture. It is updated in place; callers that keep
// it past the current event must use Snapshot.
func (c *Compositor) Image() *image.RGBA { return c.surface }

// Snapshot copies the settled picture. A stroke still under the finger is
// not part of it.
func (c *Compositor) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.base.Bounds())
	copy(out.Pix, c.base.Pix)
	return out
}

func (c *Compositor) Background() color.NRGBA { return c.bg }

func (c *Compositor) clear() {
	draw.Draw(c.base, c.base.Bounds(), image.NewUniform(c.bg), image.Point{}, draw.Src)
	copy(c.surface.Pix, c.base.Pix)
	c.live = nil
	c.dirty = image.Rectangle{}
}

// strokeBounds is the pixel rectangle a stroke can touch: the hull of its
// points grown by half the pen width plus a pixel of antialiasing.
func strokeBounds(s *state.Stroke) image.Rectangle {
	pts := s.Points()
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	pad := s.Style.Width/2 + 2
	return image.Rect(
		int(math.Floor(float64(minX-pad))),
		int(math.Floor(float64(minY-pad))),
		int(math.Ceil(float64(maxX+pad))),
		int(math.Ceil(float64(maxY+pad))),
	)
}

// brush rasterises strokes onto one image with round caps and joins.
type brush struct {
	dasher *rasterx.Dasher
	filler *rasterx.Filler
}

func newBrush(dst *image.RGBA) *brush {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	return &brush{
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
	}
}

func (b *brush) paint(s *state.Stroke) {
	segs := s.Segments()
	if len(segs) == 0 {
		return
	}
	if s.IsDot() {
		p := segs[0].To
		rasterx.AddCircle(float64(p.X), float64(p.Y), float64(s.Style.Width)/2, b.filler)
		b.filler.SetColor(s.Style.Color)
		b.filler.Draw()
		b.filler.Clear()
		return
	}

	d := b.dasher
	d.SetStroke(toFixed(s.Style.Width), toFixed(4), rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round, nil, 0)
	var cur state.Point
	for i, seg := range segs {
		switch {
		case seg.Kind == state.MoveTo:
			if i > 0 {
				d.Stop(false)
			}
			d.Start(point(seg.To))
		case seg.To == cur:
			// zero length, nothing to add
		case seg.Kind == state.QuadTo && seg.Ctrl != cur && seg.Ctrl != seg.To:
			d.QuadBezier(point(seg.Ctrl), point(seg.To))
		default:
			// A quad whose control point sits on an end is a straight line.
			d.Line(point(seg.To))
		}
		cur = seg.To
	}
	d.Stop(false)
	d.SetColor(s.Style.Color)
	d.Draw()
	d.Clear()
}

func point(p state.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(p.X), float64(p.Y))
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
