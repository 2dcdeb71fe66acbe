// Command bounce is the canonical pixelloop demo: a box bouncing around a
// small pixel surface, simulated at a fixed rate and rendered with
// interpolation. It can run in a desktop window, in a terminal, or headless.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"tinygo.org/x/tinyfont/proggy"

	"pixelloop"
	"pixelloop/internal/buildinfo"
	"pixelloop/terminal"
	"pixelloop/text"
	"pixelloop/window"
)

const (
	updateFPS = 120
	surfaceW  = 320
	surfaceH  = 240
)

type box struct {
	x, y    float64
	vx, vy  float64 // pixels per second
	size    int
	color   pixelloop.Color
	bounces int
}

func newBox() box {
	return box{
		x:     surfaceW / 4,
		y:     surfaceH / 4,
		vx:    140,
		vy:    90,
		size:  24,
		color: pixelloop.RGB(230, 80, 40),
	}
}

func randomColor() pixelloop.Color {
	return pixelloop.RGB(uint8(64+rand.Intn(192)), uint8(64+rand.Intn(192)), uint8(64+rand.Intn(192)))
}

func update(b *box, s pixelloop.Surface) error {
	// Terminal surfaces can be smaller than the default box.
	if m := s.Width() / 4; b.size > m && m > 0 {
		b.size = m
	}
	if m := s.Height() / 4; b.size > m && m > 0 {
		b.size = m
	}

	const dt = 1.0 / updateFPS
	b.x += b.vx * dt
	b.y += b.vy * dt

	maxX := float64(s.Width() - b.size)
	maxY := float64(s.Height() - b.size)
	bounced := false
	if b.x < 0 {
		b.x, b.vx, bounced = 0, -b.vx, true
	} else if b.x > maxX {
		b.x, b.vx, bounced = maxX, -b.vx, true
	}
	if b.y < 0 {
		b.y, b.vy, bounced = 0, -b.vy, true
	} else if b.y > maxY {
		b.y, b.vy, bounced = maxY, -b.vy, true
	}
	if bounced {
		b.bounces++
		b.color = randomColor()
	}
	return nil
}

func render(b *box, s pixelloop.Surface, delta time.Duration) error {
	pixelloop.ClearScreen(s, pixelloop.RGB(18, 18, 28))

	// Project the box forward by the unconsumed frame time so motion stays
	// smooth between fixed steps.
	fx := b.x + b.vx*delta.Seconds()
	fy := b.y + b.vy*delta.Seconds()
	fx = clamp(fx, 0, float64(s.Width()-b.size))
	fy = clamp(fy, 0, float64(s.Height()-b.size))
	pixelloop.FilledRect(s, int(fx), int(fy), b.size, b.size, b.color)

	text.Write(s, &proggy.TinySZ8pt7b, 3, 10, fmt.Sprintf("bounces: %d", b.bounces), pixelloop.RGB(220, 220, 220))
	return s.Present()
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func runWindow() error {
	win := window.NewWindow("bounce ("+buildinfo.Short()+")", surfaceW*2, surfaceH*2)
	surface := window.NewSurface(surfaceW, surfaceH)
	return window.Run(win, surface, updateFPS, newBox(), update, render,
		func(b *box, s *window.Surface, w *window.Window, ev window.Event) error {
			switch ev.Kind {
			case window.EventKey:
				if ev.Pressed && ev.Key == ebiten.KeyEscape {
					w.RequestExit()
				}
			case window.EventMouseButton:
				// Click teleports the box to the pointer.
				if ev.Pressed {
					if x, y, ok := s.PhysicalPosToSurfacePos(ev.X, ev.Y); ok {
						b.x = clamp(float64(x), 0, float64(s.Width()-b.size))
						b.y = clamp(float64(y), 0, float64(s.Height()-b.size))
					}
				}
			}
			return nil
		})
}

func runTerminal(frameFPS int) error {
	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	surface := terminal.NewSurface(screen)
	return terminal.Run(screen, surface, updateFPS, frameFPS, newBox(), update, render,
		func(b *box, s *terminal.Surface, host *terminal.Host, ev tcell.Event) error {
			switch tev := ev.(type) {
			case *tcell.EventKey:
				if tev.Key() == tcell.KeyEscape {
					host.RequestExit()
				}
			case *tcell.EventMouse:
				if tev.Buttons()&tcell.Button1 != 0 {
					mx, my := tev.Position()
					if x, y, ok := s.PhysicalPosToSurfacePos(float64(mx), float64(my)); ok {
						b.x = clamp(float64(x), 0, float64(s.Width()-b.size))
						b.y = clamp(float64(y), 0, float64(s.Height()-b.size))
					}
				}
			}
			return nil
		})
}

func runHeadless(ticks uint64) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	surface := pixelloop.NewFramebuffer(surfaceW, surfaceH)
	if ticks == 0 {
		err := pixelloop.Run(ctx, updateFPS, newBox(), surface, update, render)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	l := pixelloop.New(updateFPS, newBox(), surface, update, render)
	for i := uint64(0); i < ticks; i++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if err := l.NextLoop(); err != nil {
			return err
		}
	}
	fmt.Printf("ran %d ticks, %d bounces\n", ticks, l.State().bounces)
	return nil
}

func main() {
	var term, headless bool
	var frameFPS int
	var ticks uint64
	flag.BoolVar(&term, "terminal", false, "Render into the terminal with half-block cells.")
	flag.BoolVar(&headless, "headless", false, "Run without any display.")
	flag.IntVar(&frameFPS, "fps", 60, "Frame rate in terminal mode.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	var err error
	switch {
	case headless:
		err = runHeadless(ticks)
	case term:
		err = runTerminal(frameFPS)
	default:
		err = runWindow()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
