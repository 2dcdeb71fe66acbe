// Package text draws tinyfont fonts onto a pixel surface by adapting the
// surface to the displayer contract the font rasterizer expects.
package text

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"pixelloop"
)

// Displayer adapts a pixelloop.Surface to drivers.Displayer. Out-of-bounds
// pixels are dropped, so glyphs clip cleanly at the surface edges.
type Displayer struct {
	s pixelloop.Surface
}

var _ drivers.Displayer = (*Displayer)(nil)

func NewDisplayer(s pixelloop.Surface) *Displayer {
	return &Displayer{s: s}
}

func (d *Displayer) Size() (x, y int16) {
	return int16(d.s.Width()), int16(d.s.Height())
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	px, py, ok := d.s.InBounds(int(x), int(y))
	if !ok {
		return
	}
	d.s.Set(px, py, pixelloop.RGBA(c.R, c.G, c.B, c.A))
}

func (d *Displayer) Display() error {
	return d.s.Present()
}

// Write draws s onto dst with its baseline at (x, y).
func Write(dst pixelloop.Surface, font tinyfont.Fonter, x, y int, s string, c pixelloop.Color) {
	tinyfont.WriteLine(NewDisplayer(dst), font, int16(x), int16(y), s, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// LineWidth returns the rendered width of s in pixels.
func LineWidth(font tinyfont.Fonter, s string) int {
	_, w := tinyfont.LineWidth(font, s)
	return int(w)
}
