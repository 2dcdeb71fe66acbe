package pixelloop

import (
	"context"
	"errors"
	"testing"
	"time"
)

func noopUpdate(*int, Surface) error                { return nil }
func noopRender(*int, Surface, time.Duration) error { return nil }

// testClock is a manually advanced clock for deterministic ticks.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestUpdateTimestepDerivation(t *testing.T) {
	cases := []struct {
		fps  int
		want time.Duration
	}{
		{120, 8333333 * time.Nanosecond},
		{100, 10 * time.Millisecond},
		{60, 16666667 * time.Nanosecond},
		{1, time.Second},
	}
	for _, c := range cases {
		l := New(c.fps, 0, NewFramebuffer(1, 1), noopUpdate, noopRender)
		if got := l.UpdateTimestep(); got != c.want {
			t.Errorf("fps %d: timestep = %v, want %v", c.fps, got, c.want)
		}
	}
}

func TestNewPanicsOnZeroFPS(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for fps = 0")
		}
	}()
	New(0, 0, NewFramebuffer(1, 1), noopUpdate, noopRender)
}

func TestNextLoopClampsFrameDelta(t *testing.T) {
	clock := &testClock{now: time.Unix(0, 0)}
	var got time.Duration
	render := func(_ *int, _ Surface, delta time.Duration) error {
		got = delta
		return nil
	}
	l := newWithClock(120, 0, NewFramebuffer(1, 1), noopUpdate, render, clock.Now)

	clock.Advance(250 * time.Millisecond)
	if err := l.NextLoop(); err != nil {
		t.Fatalf("NextLoop: %v", err)
	}
	if got != 100*time.Millisecond {
		t.Fatalf("render delta = %v, want 100ms", got)
	}
}

func TestNextLoopDrainCount(t *testing.T) {
	clock := &testClock{now: time.Unix(0, 0)}
	var updates, renders int
	update := func(_ *int, _ Surface) error { updates++; return nil }
	render := func(_ *int, _ Surface, _ time.Duration) error { renders++; return nil }
	l := newWithClock(120, 0, NewFramebuffer(1, 1), update, render, clock.Now)

	// First tick banks a clamped 100ms into the accumulator.
	clock.Advance(250 * time.Millisecond)
	if err := l.NextLoop(); err != nil {
		t.Fatalf("NextLoop: %v", err)
	}
	if updates != 0 {
		t.Fatalf("updates after first tick = %d, want 0", updates)
	}

	// Second tick adds no time and drains: 100ms against an 8333333ns step
	// stays strictly above the step for exactly 12 subtractions.
	if err := l.NextLoop(); err != nil {
		t.Fatalf("NextLoop: %v", err)
	}
	if updates != 12 {
		t.Fatalf("updates after drain = %d, want 12", updates)
	}
	if renders != 2 {
		t.Fatalf("renders = %d, want 2", renders)
	}
}

func TestNextLoopDrainBoundary(t *testing.T) {
	clock := &testClock{now: time.Unix(0, 0)}
	var updates int
	update := func(_ *int, _ Surface) error { updates++; return nil }
	// fps 100 gives a 10ms step with no rounding residue.
	l := newWithClock(100, 0, NewFramebuffer(1, 1), update, noopRender, clock.Now)

	// Bank exactly one step of time.
	clock.Advance(10 * time.Millisecond)
	if err := l.NextLoop(); err != nil {
		t.Fatalf("NextLoop: %v", err)
	}

	// Accumulator == step: the strict comparison means no update fires.
	if err := l.NextLoop(); err != nil {
		t.Fatalf("NextLoop: %v", err)
	}
	if updates != 0 {
		t.Fatalf("updates at exact boundary = %d, want 0", updates)
	}

	// One nanosecond over the step drains a single update.
	clock.Advance(time.Nanosecond)
	if err := l.NextLoop(); err != nil {
		t.Fatalf("NextLoop: %v", err)
	}
	if err := l.NextLoop(); err != nil {
		t.Fatalf("NextLoop: %v", err)
	}
	if updates != 1 {
		t.Fatalf("updates past boundary = %d, want 1", updates)
	}
}

func TestUpdateErrorAbortsTick(t *testing.T) {
	clock := &testClock{now: time.Unix(0, 0)}
	errBoom := errors.New("boom")
	var renders int
	update := func(_ *int, _ Surface) error { return errBoom }
	render := func(_ *int, _ Surface, _ time.Duration) error { renders++; return nil }
	l := newWithClock(100, 0, NewFramebuffer(1, 1), update, render, clock.Now)

	// Bank enough time that the next tick must run an update.
	clock.Advance(50 * time.Millisecond)
	if err := l.NextLoop(); err != nil {
		t.Fatalf("NextLoop: %v", err)
	}
	renders = 0

	err := l.NextLoop()
	if !errors.Is(err, errBoom) {
		t.Fatalf("NextLoop error = %v, want %v", err, errBoom)
	}
	if renders != 0 {
		t.Fatal("render ran after a failing update")
	}
}

func TestRenderErrorPropagates(t *testing.T) {
	errBoom := errors.New("boom")
	render := func(_ *int, _ Surface, _ time.Duration) error { return errBoom }
	l := New(120, 0, NewFramebuffer(1, 1), noopUpdate, render)
	if err := l.NextLoop(); !errors.Is(err, errBoom) {
		t.Fatalf("NextLoop error = %v, want %v", err, errBoom)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	renders := 0
	render := func(_ *int, _ Surface, _ time.Duration) error {
		renders++
		if renders == 3 {
			cancel()
		}
		return nil
	}
	err := Run(ctx, 120, 0, NewFramebuffer(1, 1), noopUpdate, render)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if renders != 3 {
		t.Fatalf("renders = %d, want 3", renders)
	}
}

func TestRunWrapsTickError(t *testing.T) {
	errBoom := errors.New("boom")
	render := func(_ *int, _ Surface, _ time.Duration) error { return errBoom }
	err := Run(context.Background(), 120, 0, NewFramebuffer(1, 1), noopUpdate, render)
	if !errors.Is(err, errBoom) {
		t.Fatalf("Run error = %v, want wrapped %v", err, errBoom)
	}
}
