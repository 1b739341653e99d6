// Package session runs one player's game: it owns the world, drives it
// from a dedicated update goroutine at a fixed tick rate, publishes
// snapshots for rendering and records scores when the game ends.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/game"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var (
	// ErrInvalidSettings is returned by Setup for an unknown map or ship.
	ErrInvalidSettings = errors.New("session: invalid settings")
	// ErrAlreadyRunning is returned when the update goroutine is active.
	ErrAlreadyRunning = errors.New("session: already running")
	// ErrNotReady is returned by Start when there is no playable world.
	ErrNotReady = errors.New("session: no world, call Setup first")
)

// State is the lifecycle phase of a session.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Settings are the player's menu choices.
type Settings struct {
	Map   int
	Ship  int
	Pilot string
}

// GameOverEvent is delivered once per finished game.
type GameOverEvent struct {
	Run       Run
	HighScore int  // best score after this game
	NewRecord bool // the game beat the previous best
	StoreErr  error
}

// Session is the host of a single game. Its methods are safe for
// concurrent use, except that the world itself is only touched by the
// update goroutine while running.
type Session struct {
	id     string
	cfg    config.AsteroidsConfig
	store  ScoreStore
	logger *log.Logger
	clock  Clock
	seed   int64
	input  *core.InputState
	sched  *Scheduler

	snapshot atomic.Pointer[game.Snapshot]
	events   chan GameOverEvent

	mu        sync.Mutex
	state     State
	settings  Settings
	world     *game.World
	run       Run
	prevBest  int
	cancel    context.CancelFunc
	done      chan struct{}
	discarded bool
}

// Option configures a Session.
type Option func(*Session)

// WithStore sets where high scores are read from and recorded to.
func WithStore(store ScoreStore) Option {
	return func(s *Session) { s.store = store }
}

// WithLogger sets the session logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithClock replaces the wall clock, for tests.
func WithClock(clock Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithSeed fixes the world seed. Zero picks a new seed for every game.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// New creates an idle session.
func New(cfg config.AsteroidsConfig, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		cfg:    cfg,
		clock:  SystemClock(),
		events: make(chan GameOverEvent, 1),
		done:   make(chan struct{}),
	}
	close(s.done)
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.logger = s.logger.With("session", s.id[:8])
	s.input = core.NewInputState(cfg.Loop.HoldWindow)
	s.sched = NewScheduler(cfg.Loop, s.clock)
	return s
}

// ID returns the unique session identifier.
func (s *Session) ID() string { return s.id }

// Input returns the input state the presentation layer writes key
// presses into.
func (s *Session) Input() *core.InputState { return s.input }

// Config returns the tuning the session runs with.
func (s *Session) Config() config.AsteroidsConfig { return s.cfg }

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Settings returns the settings of the current world.
func (s *Session) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Snapshot returns the latest published world snapshot, or nil before
// the first Setup.
func (s *Session) Snapshot() *game.Snapshot {
	return s.snapshot.Load()
}

// Events delivers a GameOverEvent when a game ends.
func (s *Session) Events() <-chan GameOverEvent {
	return s.events
}

// Done returns a channel closed when the current update goroutine exits.
func (s *Session) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Setup builds a fresh world from settings. It looks up the pilot's best
// score; a store failure is logged and treated as zero.
func (s *Session) Setup(settings Settings) error {
	m, ok := registry.Map(settings.Map)
	if !ok {
		return fmt.Errorf("%w: unknown map %d", ErrInvalidSettings, settings.Map)
	}
	ship, ok := registry.Ship(settings.Ship)
	if !ok {
		return fmt.Errorf("%w: unknown ship %d", ErrInvalidSettings, settings.Ship)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRunning {
		return ErrAlreadyRunning
	}

	best := s.highScore(settings.Pilot)
	seed := s.seed
	if seed == 0 {
		seed = s.clock.Now().UnixNano()
	}

	s.world = game.NewWorld(s.cfg, game.Options{
		Map:       m,
		Ship:      ship,
		Pilot:     settings.Pilot,
		HighScore: best,
		Seed:      seed,
	})
	s.settings = settings
	s.prevBest = best
	s.run = Run{
		ID:    uuid.NewString(),
		Pilot: settings.Pilot,
		Map:   m.ID,
		Ship:  ship.ID,
	}
	s.state = StateIdle
	s.discarded = false
	s.input.Reset()
	s.sched.Resume()
	s.drainEvents()
	s.snapshot.Store(s.world.Snapshot())

	s.logger.Debug("world ready", "pilot", settings.Pilot, "map", m.ID, "ship", ship.ID, "best", best)
	return nil
}

func (s *Session) highScore(pilot string) int {
	if s.store == nil || pilot == "" {
		return 0
	}
	best, err := s.store.HighScore(pilot)
	if err != nil {
		s.logger.Warn("could not read high score", "pilot", pilot, "error", err)
		return 0
	}
	return best
}

func (s *Session) drainEvents() {
	select {
	case <-s.events:
	default:
	}
}

// Start launches the update goroutine. It stops when ctx is cancelled,
// when Stop or Cancel is called, or when the game ends.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRunning {
		return ErrAlreadyRunning
	}
	if s.world == nil || s.state == StateGameOver || s.discarded {
		return ErrNotReady
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done
	s.state = StateRunning
	if s.run.StartedAt.IsZero() {
		s.run.StartedAt = s.clock.Now()
	}

	go s.loop(runCtx, s.world, done)
	s.logger.Info("game started", "pilot", s.settings.Pilot, "run", s.run.ID)
	return nil
}

// loop is the update goroutine. It is the only code touching w while the
// session is running.
func (s *Session) loop(ctx context.Context, w *game.World, done chan struct{}) {
	defer close(done)

	var over, cancelled bool
	step := func(now time.Time) bool {
		if s.input.TakeCancel() {
			cancelled = true
			return true
		}
		if w.Step(s.input.Frame(now), now) {
			over = true
			return true
		}
		return false
	}
	publish := func() {
		s.snapshot.Store(w.Snapshot())
	}

	err := s.sched.Run(ctx, step, publish)

	switch {
	case over:
		s.finish(w, done)
	case cancelled:
		s.mu.Lock()
		s.release(done)
		s.state = StateIdle
		s.discarded = true
		s.mu.Unlock()
		s.logger.Info("game cancelled", "pilot", w.Options().Pilot, "score", w.Score)
	default:
		// Stop or the caller's context ended the loop; the world is kept.
		s.mu.Lock()
		s.release(done)
		if s.state == StateRunning {
			s.state = StateIdle
		}
		s.mu.Unlock()
		s.logger.Debug("update loop stopped", "error", err)
	}
}

// release cancels the run context of the loop owning done. s.mu must be
// held. A loop that has been replaced by a newer Start leaves it alone.
func (s *Session) release(done chan struct{}) {
	if s.done != done {
		return
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// finish records the result of a finished game and reports it.
func (s *Session) finish(w *game.World, done chan struct{}) {
	s.mu.Lock()
	run := s.run
	prev := s.prevBest
	s.mu.Unlock()

	run.Score = w.Score
	run.Ticks = w.Tick
	run.EndedAt = s.clock.Now()

	ev := GameOverEvent{
		Run:       run,
		HighScore: max(prev, run.Score),
		NewRecord: run.Score > prev,
	}

	if s.store != nil && run.Pilot != "" {
		if err := s.store.RecordScore(run.Pilot, run.Score); err != nil {
			s.logger.Warn("could not record score", "pilot", run.Pilot, "score", run.Score, "error", err)
			ev.StoreErr = err
		}
		if rec, ok := s.store.(RunRecorder); ok {
			if err := rec.SaveRun(run); err != nil {
				s.logger.Warn("could not save run", "run", run.ID, "error", err)
				ev.StoreErr = errors.Join(ev.StoreErr, err)
			}
		}
	}

	s.mu.Lock()
	s.release(done)
	s.state = StateGameOver
	s.run = run
	s.mu.Unlock()

	s.logger.Info("game over", "pilot", run.Pilot, "score", run.Score, "ticks", run.Ticks, "record", ev.NewRecord)

	select {
	case s.events <- ev:
	default:
	}
}

// Stop halts the update goroutine and waits for it to exit. The world is
// kept, so Start resumes it. Stop is idempotent and must not be called
// from the update goroutine.
func (s *Session) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	<-done

	s.mu.Lock()
	if s.state == StateRunning {
		s.state = StateIdle
	}
	s.mu.Unlock()
}

// Cancel abandons the current game without recording a score. It raises
// the input cancel signal, which the update goroutine honours on its next
// tick, then joins it. A new Setup is required before the next Start.
func (s *Session) Cancel() {
	s.input.RequestCancel()
	s.Stop()
	s.input.TakeCancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateIdle && s.world != nil && !s.discarded {
		s.discarded = true
		s.logger.Info("game cancelled", "pilot", s.settings.Pilot, "score", s.world.Score)
	}
}

// Return leaves the game-over screen and goes back to idle. A new Setup
// is required before the next Start.
func (s *Session) Return() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateGameOver {
		s.state = StateIdle
		s.discarded = true
	}
}

// Restart sets up a fresh world with the current settings and starts it.
func (s *Session) Restart(ctx context.Context) error {
	s.Stop()
	if err := s.Setup(s.Settings()); err != nil {
		return err
	}
	return s.Start(ctx)
}

// Pause freezes the simulation; the update goroutine keeps running.
func (s *Session) Pause() { s.sched.Pause() }

// Resume unfreezes the simulation.
func (s *Session) Resume() { s.sched.Resume() }

// TogglePause flips the pause state and reports whether it is now paused.
func (s *Session) TogglePause() bool {
	if s.sched.Paused() {
		s.sched.Resume()
		return false
	}
	s.sched.Pause()
	return true
}

// Paused reports whether the simulation is frozen.
func (s *Session) Paused() bool { return s.sched.Paused() }
