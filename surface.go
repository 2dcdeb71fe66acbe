package pixelloop

// Surface is the drawing capability the loop and all drawing helpers work
// against. A backend supplies the pixel storage and the path to a display;
// everything else in this package is written purely in terms of these
// operations.
//
// Pixels are addressed row-major: the linear index of (x, y) is y*Width()+x.
type Surface interface {
	Width() int
	Height() int

	// Present pushes the in-memory buffer to the display. A failure is
	// fatal to the current frame.
	Present() error

	// Get and Set access a single pixel. Coordinates must be in bounds;
	// callers bounds-check first (see InBounds).
	Get(x, y int) Color
	Set(x, y int, c Color)

	// SetRange writes c to every pixel whose linear index falls in the
	// half-open range [from, to). All batched drawing is built on this.
	SetRange(from, to int, c Color)

	// InBounds reports whether (x, y) addresses a pixel, returning the
	// validated coordinates when it does.
	InBounds(x, y int) (int, int, bool)

	// PhysicalPosToSurfacePos maps a host-reported pointer position in the
	// window's physical coordinate space to surface pixel coordinates.
	// ok is false when the backend cannot resolve a mapping, e.g. the
	// pointer is outside the drawable area.
	PhysicalPosToSurfacePos(x, y float64) (sx, sy int, ok bool)
}

// ClearScreen sets every pixel of s to c with a single batched write.
func ClearScreen(s Surface, c Color) {
	s.SetRange(0, s.Width()*s.Height(), c)
}

// FilledRect fills the rectangle with top-left corner (x, y) and the given
// width and height. Each row is one SetRange call; a range never crosses a
// row boundary, so a rectangle near the right edge cannot wrap into the
// next row.
//
// The caller must ensure x+width <= s.Width() and y+height <= s.Height();
// this is not validated here.
func FilledRect(s Surface, x, y, width, height int, c Color) {
	stride := s.Width()
	for row := y; row < y+height; row++ {
		start := row*stride + x
		s.SetRange(start, start+width, c)
	}
}
