package game

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Asteroid is a wrapping rock. Size is its class, 0 being the largest.
type Asteroid struct {
	Body
	Size int
}

// NewAsteroid creates an asteroid of the given size class at (x, y).
// The intent velocity (vx, vy) is damped once here.
func NewAsteroid(cfg *config.AsteroidsConfig, x, y float64, size int, vx, vy float64) *Asteroid {
	size = core.Clamp(size, 0, len(cfg.Asteroids.Sizes)-1)
	dim := cfg.Asteroids.Sizes[size]
	return &Asteroid{
		Body: Body{
			X:     x,
			Y:     y,
			W:     dim,
			H:     dim,
			VX:    vx * cfg.Asteroids.Damping,
			VY:    vy * cfg.Asteroids.Damping,
			Alive: true,
			Color: core.ColorGray,
		},
		Size: size,
	}
}

func (a *Asteroid) Kind() Kind { return KindAsteroid }

// Move integrates and wraps to the opposite edge once fully off-arena.
func (a *Asteroid) Move(cfg *config.AsteroidsConfig) {
	a.integrate()
	w, h := float64(cfg.Arena.Width), float64(cfg.Arena.Height)
	if a.X < -float64(a.W) {
		a.X = w
	} else if a.X > w {
		a.X = -float64(a.W)
	}
	if a.Y < -float64(a.H) {
		a.Y = h
	} else if a.Y > h {
		a.Y = -float64(a.H)
	}
}

// CanSplit reports whether destroying the asteroid yields children.
func (a *Asteroid) CanSplit(cfg *config.AsteroidsConfig) bool {
	return a.Size < len(cfg.Asteroids.Sizes)-1
}

// Points returns the score for destroying the asteroid.
func (a *Asteroid) Points(cfg *config.AsteroidsConfig) int {
	return cfg.Asteroids.Points[a.Size]
}
