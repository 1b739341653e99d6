package game

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// UFO patrols horizontally and fires down at the player.
type UFO struct {
	Body
	Dir float64 // +1 or -1
}

// NewUFO creates a UFO at (x, y) heading right.
func NewUFO(cfg *config.AsteroidsConfig, x, y float64) *UFO {
	return &UFO{
		Body: Body{
			X:     x,
			Y:     y,
			W:     cfg.UFOs.Width,
			H:     cfg.UFOs.Height,
			VX:    cfg.UFOs.Speed,
			Alive: true,
			Color: core.ColorMagenta,
		},
		Dir: 1,
	}
}

func (u *UFO) Kind() Kind { return KindUFO }

// Move patrols between the side margins and keeps y inside its band.
func (u *UFO) Move(cfg *config.AsteroidsConfig) {
	u.X += u.VX * u.Dir * cfg.UFOs.SpeedFactor
	if u.X < cfg.UFOs.MinX || u.X > cfg.UFOs.MaxX {
		u.Dir = -u.Dir
	}
	u.Y = core.ClampF(u.Y, cfg.UFOs.MinY, cfg.UFOs.MaxY)
}

// Muzzle returns where enemy lasers leave the UFO.
func (u *UFO) Muzzle() (x, y float64) {
	return u.X + float64(u.W)/2, u.Y + float64(u.H)
}
