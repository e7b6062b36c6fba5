package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// RimColor outlines the pen preview so light colours stay visible.
var RimColor = color.NRGBA{R: 0x61, G: 0x61, B: 0x61, A: 0xff}

// circleK is the cubic Bézier handle length that best approximates a
// quarter circle.
const circleK = 0.5522847498

// PenIcon draws the pen as it will paint: a disc as wide as the pen in the
// pen's colour, ringed with a one pixel rim. The image is square and has a
// transparent background.
func PenIcon(width int, fill color.Color) *image.RGBA {
	if width < 1 {
		width = 1
	}
	size := width + 2
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float32(size) / 2

	disc(dst, c, float32(width)/2+1, image.NewUniform(RimColor))
	disc(dst, c, float32(width)/2, image.NewUniform(fill))
	return dst
}

func disc(dst draw.Image, c, r float32, src image.Image) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	k := r * circleK
	z.MoveTo(c+r, c)
	z.CubeTo(c+r, c+k, c+k, c+r, c, c+r)
	z.CubeTo(c-k, c+r, c-r, c+k, c-r, c)
	z.CubeTo(c-r, c-k, c-k, c-r, c, c-r)
	z.CubeTo(c+k, c-r, c+r, c-k, c+r, c)
	z.ClosePath()
	z.Draw(dst, b, src, image.Point{})
}
