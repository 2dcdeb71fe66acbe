package pixelloop

import (
	"context"
	"fmt"
	"math"
	"time"
)

// UpdateFunc advances the simulation by exactly one fixed step.
type UpdateFunc[State any] func(state *State, surface Surface) error

// RenderFunc draws the current frame. delta is the real time left over since
// the last fixed step boundary, for interpolating between simulation states.
type RenderFunc[State any] func(state *State, surface Surface, delta time.Duration) error

// maxFrameDelta caps the elapsed time fed into the accumulator. Without it a
// single slow tick (debugger pause, OS hiccup) would queue up an unbounded
// number of catch-up updates, making the next tick slower still.
const maxFrameDelta = 100 * time.Millisecond

// PixelLoop decouples the simulation update rate from the render rate.
// Updates run at a fixed timestep driven by an accumulator of real elapsed
// time; rendering happens exactly once per tick with the unconsumed remainder
// as an interpolation delta.
//
// Inspired by https://gafferongames.com/post/fix_your_timestep/
type PixelLoop[State any] struct {
	accumulator    time.Duration
	currentTime    time.Time
	lastTime       time.Time
	updateTimestep time.Duration
	state          State
	surface        Surface
	update         UpdateFunc[State]
	render         RenderFunc[State]
	now            func() time.Time
}

// New creates a loop that owns state and surface for its lifetime.
// updateFPS is the fixed simulation rate; it panics if updateFPS <= 0, which
// is a defect in the calling code.
func New[State any](updateFPS int, state State, surface Surface, update UpdateFunc[State], render RenderFunc[State]) *PixelLoop[State] {
	return newWithClock(updateFPS, state, surface, update, render, time.Now)
}

func newWithClock[State any](updateFPS int, state State, surface Surface, update UpdateFunc[State], render RenderFunc[State], now func() time.Time) *PixelLoop[State] {
	if updateFPS <= 0 {
		panic("pixelloop: update FPS must be > 0")
	}
	return &PixelLoop[State]{
		currentTime:    now(),
		lastTime:       now(),
		updateTimestep: time.Duration(math.Round(1e9 / float64(updateFPS))),
		state:          state,
		surface:        surface,
		update:         update,
		render:         render,
		now:            now,
	}
}

// State returns the loop-owned application state, for host event handlers.
func (l *PixelLoop[State]) State() *State { return &l.state }

// Surface returns the loop-owned surface, for host event handlers.
func (l *PixelLoop[State]) Surface() Surface { return l.surface }

// UpdateTimestep returns the fixed simulation step.
func (l *PixelLoop[State]) UpdateTimestep() time.Duration { return l.updateTimestep }

// NextLoop runs one tick: it measures the clamped frame delta, drains the
// accumulator in fixed update steps, then renders once with the leftover
// delta. An update or render error abandons the tick at that point and is
// returned unchanged; a failing update means no render happens this tick.
//
// The drain condition is strictly accumulator > updateTimestep: at exact
// equality no update fires that tick.
func (l *PixelLoop[State]) NextLoop() error {
	l.lastTime = l.currentTime
	l.currentTime = l.now()
	dt := l.currentTime.Sub(l.lastTime)
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	for l.accumulator > l.updateTimestep {
		if err := l.update(&l.state, l.surface); err != nil {
			return err
		}
		l.accumulator -= l.updateTimestep
	}

	if err := l.render(&l.state, l.surface, dt); err != nil {
		return err
	}

	l.accumulator += dt
	return nil
}

// Run drives the loop without any host event source, ticking as fast as the
// callbacks allow until ctx is cancelled or a tick fails. Cancellation is
// observed between ticks.
func Run[State any](ctx context.Context, updateFPS int, state State, surface Surface, update UpdateFunc[State], render RenderFunc[State]) error {
	l := New(updateFPS, state, surface, update, render)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := l.NextLoop(); err != nil {
			return fmt.Errorf("next loop: %w", err)
		}
	}
}
