// Package window runs a pixel loop inside a fixed-size desktop window,
// bridging the window system's event dispatch into loop ticks and blitting
// the surface buffer to the screen each frame.
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"pixelloop"
)

// Window describes the fixed-size, non-resizable host window and carries the
// control signal event handlers use to stop the run.
type Window struct {
	title         string
	width, height int
	exit          bool
}

// NewWindow prepares a window with the given title and client size. The
// window opens when Run starts.
func NewWindow(title string, width, height int) *Window {
	return &Window{title: title, width: width, height: height}
}

// RequestExit asks the host to stop dispatching events; the run ends after
// the current tick completes.
func (w *Window) RequestExit() { w.exit = true }

type game[State any] struct {
	win     *Window
	surface *Surface
	loop    *pixelloop.PixelLoop[State]
	handle  EventFunc[State]

	events []Event
	keys   []ebiten.Key
	runes  []rune
	lastCX int
	lastCY int
}

func (g *game[State]) Update() error {
	g.pollEvents()
	for _, ev := range g.events {
		if err := g.handle(g.loop.State(), g.surface, g.win, ev); err != nil {
			return fmt.Errorf("handle event: %w", err)
		}
		if ev.Kind == EventClose {
			g.win.exit = true
		}
	}
	if g.win.exit {
		return ebiten.Termination
	}
	if err := g.loop.NextLoop(); err != nil {
		return fmt.Errorf("next loop: %w", err)
	}
	return nil
}

func (g *game[State]) Draw(screen *ebiten.Image) {
	if g.surface.img != nil {
		screen.DrawImage(g.surface.img, nil)
	}
}

func (g *game[State]) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.surface.Width(), g.surface.Height()
}

// Run opens the window and drives the loop from its event source: every host
// event is forwarded to handleEvent, then one tick runs per displayed frame.
// It blocks until the window closes, an exit is requested, or a callback
// fails; callback errors are returned and must not be ignored.
func Run[State any](win *Window, surface *Surface, updateFPS int, state State, update pixelloop.UpdateFunc[State], render pixelloop.RenderFunc[State], handleEvent EventFunc[State]) error {
	ebiten.SetWindowTitle(win.title)
	ebiten.SetWindowSize(win.width, win.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := &game[State]{
		win:     win,
		surface: surface,
		loop:    pixelloop.New(updateFPS, state, surface, update, render),
		handle:  handleEvent,
	}
	return ebiten.RunGame(g)
}
