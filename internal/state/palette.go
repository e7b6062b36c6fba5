package state

import (
	"image/color"
	"math"
)

// EraseName is the palette entry that paints with the background colour.
const EraseName = "erase"

type PaletteEntry struct {
	Name  string
	Color color.NRGBA
}

// Luminance is the WCAG relative luminance of the entry's colour, 0 to 1.
func (e PaletteEntry) Luminance() float64 {
	lin := func(c uint8) float64 {
		v := float64(c) / 255
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(e.Color.R) + 0.7152*lin(e.Color.G) + 0.0722*lin(e.Color.B)
}

// IsLight and IsDark overlap on purpose: mid tones are both, and the picker
// uses them to choose a tick that stays visible on the swatch.
func (e PaletteEntry) IsLight() bool { return e.Luminance() > 0.1 }

func (e PaletteEntry) IsDark() bool { return e.Luminance() < 0.8 }

// Palette is the fixed, ordered set of pen colours offered to the user.
type Palette []PaletteEntry

// DefaultColorName is the pen colour a new session starts with.
const DefaultColorName = "red"

// DefaultPalette returns the built-in colours. The erase entry is last and
// carries the given background colour.
func DefaultPalette(background color.NRGBA) Palette {
	return Palette{
		{"grey", color.NRGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}},
		{"pink", color.NRGBA{R: 0xf4, G: 0x8f, B: 0xb1, A: 0xff}},
		{"green", color.NRGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}},
		{"blue-green", color.NRGBA{R: 0x00, G: 0x96, B: 0x88, A: 0xff}},
		{"purple", color.NRGBA{R: 0x9c, G: 0x27, B: 0xb0, A: 0xff}},
		{"blue", color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}},
		{"green-blue", color.NRGBA{R: 0x00, G: 0xbc, B: 0xd4, A: 0xff}},
		{"orange", color.NRGBA{R: 0xff, G: 0x98, B: 0x00, A: 0xff}},
		{"pink-purple", color.NRGBA{R: 0xe9, G: 0x1e, B: 0x63, A: 0xff}},
		{"red", color.NRGBA{R: 0xf4, G: 0x43, B: 0x36, A: 0xff}},
		{"yellow", color.NRGBA{R: 0xff, G: 0xeb, B: 0x3b, A: 0xff}},
		{"blue-purple", color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff}},
		{"black", color.NRGBA{A: 0xff}},
		{"mint-blue", color.NRGBA{R: 0x80, G: 0xde, B: 0xea, A: 0xff}},
		{EraseName, background},
	}
}

// Lookup finds an entry by name.
func (p Palette) Lookup(name string) (PaletteEntry, bool) {
	for _, e := range p {
		if e.Name == name {
			return e, true
		}
	}
	return PaletteEntry{}, false
}

// Find returns the entry with exactly colour c, if any.
func (p Palette) Find(c color.NRGBA) (PaletteEntry, bool) {
	for _, e := range p {
		if e.Color == c {
			return e, true
		}
	}
	return PaletteEntry{}, false
}
