package session

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

// Clock abstracts wall-clock time so the loop can be driven by tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }

// Accumulator converts elapsed wall-clock time into whole simulation ticks.
type Accumulator struct {
	tick     time.Duration
	maxSteps int
	pending  time.Duration
	dropped  uint64
}

// NewAccumulator creates an accumulator for the given tick length that
// releases at most maxSteps ticks per call to Add.
func NewAccumulator(tick time.Duration, maxSteps int) *Accumulator {
	if tick <= 0 {
		tick = time.Second / 60
	}
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &Accumulator{tick: tick, maxSteps: maxSteps}
}

// Add accumulates elapsed time and returns how many ticks to run now.
// Whole ticks beyond the catch-up cap are dropped, keeping the fraction.
func (a *Accumulator) Add(elapsed time.Duration) int {
	if elapsed > 0 {
		a.pending += elapsed
	}
	n := int(a.pending / a.tick)
	a.pending -= time.Duration(n) * a.tick
	if n > a.maxSteps {
		a.dropped += uint64(n - a.maxSteps) //#nosec G115 -- n > maxSteps >= 1
		n = a.maxSteps
	}
	return n
}

// Pending returns the time carried over to the next call.
func (a *Accumulator) Pending() time.Duration {
	return a.pending
}

// Dropped returns how many ticks were discarded by the catch-up cap.
func (a *Accumulator) Dropped() uint64 {
	return a.dropped
}

// Reset discards any carried-over time.
func (a *Accumulator) Reset() {
	a.pending = 0
}

// StepFunc runs one simulation tick at wall-clock time now and reports
// whether the loop should stop.
type StepFunc func(now time.Time) bool

// Scheduler drives a StepFunc at a fixed logical rate, independent of how
// often the host wakes it up.
type Scheduler struct {
	clock  Clock
	acc    *Accumulator
	yield  time.Duration
	paused atomic.Bool
}

// NewScheduler creates a scheduler from loop tuning.
func NewScheduler(loop config.LoopConfig, clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	yield := loop.Yield
	if yield <= 0 {
		yield = time.Millisecond
	}
	return &Scheduler{
		clock: clock,
		acc:   NewAccumulator(loop.TickDuration(), loop.MaxCatchUp),
		yield: yield,
	}
}

// Pause stops ticks from running; elapsed time while paused is discarded.
func (s *Scheduler) Pause() { s.paused.Store(true) }

// Resume lets ticks run again.
func (s *Scheduler) Resume() { s.paused.Store(false) }

// Paused reports whether the scheduler is paused.
func (s *Scheduler) Paused() bool { return s.paused.Load() }

// Run loops until step asks to stop or ctx is cancelled. After every batch
// of catch-up ticks, publish is called once. Run returns nil when step
// stopped it and ctx.Err() on cancellation.
func (s *Scheduler) Run(ctx context.Context, step StepFunc, publish func()) error {
	s.acc.Reset()
	last := s.clock.Now()

	timer := time.NewTimer(s.yield)
	defer timer.Stop()

	for {
		now := s.clock.Now()
		elapsed := now.Sub(last)
		last = now

		if s.paused.Load() {
			s.acc.Reset()
		} else if n := s.acc.Add(elapsed); n > 0 {
			for range n {
				if step(now) {
					publish()
					return nil
				}
			}
			publish()
		}

		timer.Reset(s.yield)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}
