package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"pixelloop"
)

// EventFunc receives every raw terminal event before the loop acts on it.
type EventFunc[State any] func(state *State, surface *Surface, host *Host, ev tcell.Event) error

// Host carries the screen and the control signal handlers use to stop the
// run.
type Host struct {
	screen tcell.Screen
	exit   bool
}

func (h *Host) Screen() tcell.Screen { return h.screen }

// RequestExit stops the run after the current tick completes.
func (h *Host) RequestExit() { h.exit = true }

// NewScreen initializes a tcell screen with mouse reporting enabled.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return screen, nil
}

// Run drives the loop from the terminal's event stream. A frame ticker at
// frameFPS is the frame-available signal; pending terminal events are
// forwarded to handleEvent between frames. Ctrl-C requests exit after the
// handler has seen the event. Run finalizes the screen before returning.
func Run[State any](screen tcell.Screen, surface *Surface, updateFPS, frameFPS int, state State, update pixelloop.UpdateFunc[State], render pixelloop.RenderFunc[State], handleEvent EventFunc[State]) error {
	defer screen.Fini()
	if frameFPS <= 0 {
		frameFPS = 60
	}

	l := pixelloop.New(updateFPS, state, surface, update, render)
	host := &Host{screen: screen}

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	frame := time.NewTicker(time.Second / time.Duration(frameFPS))
	defer frame.Stop()

	for {
		select {
		case ev := <-events:
			if ev == nil {
				return nil
			}
			if err := handleEvent(l.State(), surface, host, ev); err != nil {
				return fmt.Errorf("handle event: %w", err)
			}
			switch tev := ev.(type) {
			case *tcell.EventKey:
				if tev.Key() == tcell.KeyCtrlC {
					host.exit = true
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-frame.C:
			if err := l.NextLoop(); err != nil {
				return fmt.Errorf("next loop: %w", err)
			}
		}
		if host.exit {
			return nil
		}
	}
}
