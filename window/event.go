package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventKind tags the events the window synthesizes from ebiten's poll API.
type EventKind uint8

const (
	// EventFrame signals that the host is about to run the next tick. It is
	// always the last event delivered before the tick.
	EventFrame EventKind = iota
	// EventKey is a key press or release; Key and Pressed are set.
	EventKey
	// EventRune is translated character input; Rune is set.
	EventRune
	// EventMouseMove reports the pointer position in the window's client
	// area; X and Y are set. Map them to pixels with
	// Surface.PhysicalPosToSurfacePos.
	EventMouseMove
	// EventMouseButton is a button press or release; Button, Pressed, X and
	// Y are set.
	EventMouseButton
	// EventClose means the user asked to close the window.
	EventClose
)

// Event is a single raw host event.
type Event struct {
	Kind    EventKind
	Key     ebiten.Key
	Button  ebiten.MouseButton
	Pressed bool
	Rune    rune
	X, Y    float64
}

// EventFunc receives every host event before the loop acts on it.
type EventFunc[State any] func(state *State, surface *Surface, win *Window, ev Event) error

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// pollEvents turns ebiten's per-frame input state into an event list,
// finishing with the frame signal.
func (g *game[State]) pollEvents() {
	g.events = g.events[:0]

	if ebiten.IsWindowBeingClosed() {
		g.events = append(g.events, Event{Kind: EventClose})
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.events = append(g.events, Event{Kind: EventKey, Key: k, Pressed: true})
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.events = append(g.events, Event{Kind: EventKey, Key: k})
	}

	g.runes = ebiten.AppendInputChars(g.runes[:0])
	for _, r := range g.runes {
		g.events = append(g.events, Event{Kind: EventRune, Rune: r})
	}

	cx, cy := ebiten.CursorPosition()
	px, py := g.clientPos(cx, cy)
	if cx != g.lastCX || cy != g.lastCY {
		g.lastCX, g.lastCY = cx, cy
		g.events = append(g.events, Event{Kind: EventMouseMove, X: px, Y: py})
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			g.events = append(g.events, Event{Kind: EventMouseButton, Button: b, Pressed: true, X: px, Y: py})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			g.events = append(g.events, Event{Kind: EventMouseButton, Button: b, X: px, Y: py})
		}
	}

	g.events = append(g.events, Event{Kind: EventFrame})
}

// clientPos converts a cursor position from surface pixels back into the
// window's client coordinate space, the space event positions are reported
// in.
func (g *game[State]) clientPos(cx, cy int) (float64, float64) {
	ww, wh := ebiten.WindowSize()
	if ww <= 0 || wh <= 0 {
		return float64(cx), float64(cy)
	}
	return float64(cx) * float64(ww) / float64(g.surface.Width()),
		float64(cy) * float64(wh) / float64(g.surface.Height())
}
