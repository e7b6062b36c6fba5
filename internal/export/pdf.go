package export

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// pageMargin is the white border around the picture on the page, in mm.
const pageMargin = 10

// WritePDF writes img as a single A4 page, scaled to fit inside the margins
// and centred. Wide pictures get a landscape page.
func WritePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("pdf: empty image")
	}
	orientation := "P"
	if b.Dx() > b.Dy() {
		orientation = "L"
	}

	var png bytes.Buffer
	if err := WritePNG(&png, img); err != nil {
		return err
	}

	p := gofpdf.New(orientation, "mm", "A4", "")
	p.SetMargins(pageMargin, pageMargin, pageMargin)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("drawing", opt, &png)

	pw, ph := p.GetPageSize()
	aw, ah := pw-2*pageMargin, ph-2*pageMargin
	scale := min(aw/float64(b.Dx()), ah/float64(b.Dy()))
	iw, ih := float64(b.Dx())*scale, float64(b.Dy())*scale
	p.ImageOptions("drawing", (pw-iw)/2, (ph-ih)/2, iw, ih, false, opt, 0, "")

	if err := p.Error(); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}
