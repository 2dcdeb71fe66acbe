// Package terminal renders a pixel surface into a terminal, two pixel rows
// per character cell, using the upper-half-block rune with the top pixel as
// foreground and the bottom pixel as background.
package terminal

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"pixelloop"
)

const upperHalfBlock = '▀'

// Surface is a pixelloop.Surface presented on a tcell screen. Its pixel grid
// is the screen's column count wide and twice its row count tall.
type Surface struct {
	*pixelloop.Framebuffer
	screen tcell.Screen
}

var _ pixelloop.Surface = (*Surface)(nil)

// NewSurface sizes a pixel buffer to the screen's current dimensions.
func NewSurface(screen tcell.Screen) *Surface {
	cols, rows := screen.Size()
	return &Surface{
		Framebuffer: pixelloop.NewFramebuffer(cols, rows*2),
		screen:      screen,
	}
}

// Present draws the buffer onto the screen and flushes it.
func (s *Surface) Present() error {
	if s.screen == nil {
		return errors.New("present: no screen attached")
	}
	for cy := 0; cy < s.Height()/2; cy++ {
		for x := 0; x < s.Width(); x++ {
			top := s.Get(x, cy*2)
			bottom := s.Get(x, cy*2+1)
			st := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			s.screen.SetContent(x, cy, upperHalfBlock, nil, st)
		}
	}
	s.screen.Show()
	return nil
}

// PhysicalPosToSurfacePos maps a cell position, as reported by terminal mouse
// events, to the top pixel of that cell.
func (s *Surface) PhysicalPosToSurfacePos(x, y float64) (int, int, bool) {
	return s.InBounds(int(x), int(y)*2)
}
