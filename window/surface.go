package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"pixelloop"
)

// Surface is a pixelloop.Surface backed by an ebiten window. Drawing happens
// in the embedded in-memory framebuffer; Present uploads the buffer to a GPU
// image that the window blits each frame.
type Surface struct {
	*pixelloop.Framebuffer
	img *ebiten.Image
}

var _ pixelloop.Surface = (*Surface)(nil)

// NewSurface creates the pixel buffer the window will display. width and
// height are in surface pixels; the window scales them to its client area.
func NewSurface(width, height int) *Surface {
	return &Surface{Framebuffer: pixelloop.NewFramebuffer(width, height)}
}

// Present uploads the buffer so the next Draw shows it.
func (s *Surface) Present() error {
	if s.Width() <= 0 || s.Height() <= 0 {
		return errors.New("present: surface has no pixels")
	}
	if s.img == nil {
		s.img = ebiten.NewImage(s.Width(), s.Height())
	}
	s.img.WritePixels(s.Pix())
	return nil
}

// PhysicalPosToSurfacePos maps a position in the window's client area to
// surface pixels. ok is false before the window exists or when the position
// falls outside the buffer.
func (s *Surface) PhysicalPosToSurfacePos(x, y float64) (int, int, bool) {
	ww, wh := ebiten.WindowSize()
	if ww <= 0 || wh <= 0 {
		return 0, 0, false
	}
	sx := int(x * float64(s.Width()) / float64(ww))
	sy := int(y * float64(s.Height()) / float64(wh))
	return s.InBounds(sx, sy)
}
