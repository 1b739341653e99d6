package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// Options selects what a new world is built from. It is fixed for the
// lifetime of the world.
type Options struct {
	Map       registry.MapInfo
	Ship      registry.ShipInfo
	Pilot     string
	HighScore int   // pilot's best score when the world was created
	Seed      int64 // seeds spawning and split randomness
}

// World is the complete simulation state. It is not safe for concurrent
// use; exactly one goroutine may call Step and read its fields.
type World struct {
	cfg  config.AsteroidsConfig
	opts Options
	rng  *rand.Rand

	// Entities
	Ship       *Ship
	Asteroids  []*Asteroid
	UFOs       []*UFO
	Lasers     []*Laser
	PowerUps   []*PowerUp
	Explosions []*Explosion

	// Progress
	Score int
	Tick  uint64
	Over  bool

	decor    []DecorItem
	lastShot time.Time   // wall-clock time of the last accepted shot
	staged   []*Asteroid // split children waiting for the end of a collision pass
}

// NewWorld builds a fresh world: centred ship, map decoration and the
// initial asteroid field.
func NewWorld(cfg config.AsteroidsConfig, opts Options) *World {
	if opts.Ship.Guns < 1 {
		opts.Ship.Guns = 1
	}
	w := &World{
		cfg:  cfg,
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
	w.Ship = NewShip(&w.cfg, opts.Ship.Index)
	w.decor = GenerateDecor(opts.Map, cfg.Arena.Width, cfg.Arena.Height)

	w.Asteroids = make([]*Asteroid, 0, cfg.Asteroids.InitialCount*4)
	for range cfg.Asteroids.InitialCount {
		w.Asteroids = append(w.Asteroids, w.randomAsteroid(cfg.Asteroids.InitialSpread))
	}
	return w
}

// Config returns the tuning the world runs with.
func (w *World) Config() *config.AsteroidsConfig {
	return &w.cfg
}

// Options returns the options the world was built with.
func (w *World) Options() Options {
	return w.opts
}

// Decor returns the static background. Callers must not modify it.
func (w *World) Decor() []DecorItem {
	return w.decor
}

// randomAsteroid creates an asteroid anywhere in the arena with a uniform
// size class and an intent velocity in [-spread/2, spread/2) per axis.
func (w *World) randomAsteroid(spread float64) *Asteroid {
	x := w.rng.Float64() * float64(w.cfg.Arena.Width)
	y := w.rng.Float64() * float64(w.cfg.Arena.Height)
	vx := (w.rng.Float64() - 0.5) * spread
	vy := (w.rng.Float64() - 0.5) * spread
	return NewAsteroid(&w.cfg, x, y, w.rng.Intn(len(w.cfg.Asteroids.Sizes)), vx, vy)
}

func (w *World) explode(x, y float64, radius int) {
	if radius <= 0 {
		return
	}
	w.Explosions = append(w.Explosions, &Explosion{X: x, Y: y, Radius: radius})
}
