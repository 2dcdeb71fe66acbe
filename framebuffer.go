package pixelloop

// Framebuffer is an in-memory Surface: a row-major RGBA buffer, 4 bytes per
// pixel, with a no-op Present. Display backends embed it and supply their own
// Present and pointer mapping; on its own it serves headless runs and tests.
type Framebuffer struct {
	width  int
	height int
	pix    []byte
}

var _ Surface = (*Framebuffer)(nil)

// NewFramebuffer allocates a zeroed width by height buffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Pix returns the raw pixel storage in RGBA order.
func (f *Framebuffer) Pix() []byte { return f.pix }

// Present is a no-op; there is no display behind a bare Framebuffer.
func (f *Framebuffer) Present() error { return nil }

func (f *Framebuffer) Get(x, y int) Color {
	i := (y*f.width + x) * 4
	return ColorFromBytes(f.pix[i : i+4])
}

func (f *Framebuffer) Set(x, y int, c Color) {
	i := (y*f.width + x) * 4
	f.pix[i] = c.R
	f.pix[i+1] = c.G
	f.pix[i+2] = c.B
	f.pix[i+3] = c.A
}

func (f *Framebuffer) SetRange(from, to int, c Color) {
	for i := from * 4; i < to*4; i += 4 {
		f.pix[i] = c.R
		f.pix[i+1] = c.G
		f.pix[i+2] = c.B
		f.pix[i+3] = c.A
	}
}

func (f *Framebuffer) InBounds(x, y int) (int, int, bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, 0, false
	}
	return x, y, true
}

// PhysicalPosToSurfacePos never resolves; a bare Framebuffer has no window.
func (f *Framebuffer) PhysicalPosToSurfacePos(x, y float64) (int, int, bool) {
	return 0, 0, false
}
