package game

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Owner says who fired a laser and therefore what it can hit.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Laser is a short-lived bolt.
type Laser struct {
	Body
	Owner Owner
	Life  int
}

// NewLaser creates a laser at (x, y). The intent velocity is boosted once here.
func NewLaser(cfg *config.AsteroidsConfig, x, y, vx, vy float64, owner Owner) *Laser {
	color := core.ColorCyan
	if owner == OwnerEnemy {
		color = core.ColorRed
	}
	return &Laser{
		Body: Body{
			X:     x,
			Y:     y,
			W:     cfg.Lasers.Width,
			H:     cfg.Lasers.Height,
			VX:    vx * cfg.Lasers.VelocityScale,
			VY:    vy * cfg.Lasers.VelocityScale,
			Alive: true,
			Color: color,
		},
		Owner: owner,
		Life:  cfg.Lasers.Life,
	}
}

func (l *Laser) Kind() Kind { return KindLaser }

// Move integrates and burns one tick of life.
func (l *Laser) Move(_ *config.AsteroidsConfig) {
	l.integrate()
	l.Life--
	if l.Life <= 0 {
		l.Alive = false
	}
}

// OutOfBounds reports whether the laser left the arena plus margin.
func (l *Laser) OutOfBounds(cfg *config.AsteroidsConfig) bool {
	m := cfg.Lasers.Margin
	return l.X < -m || l.X > float64(cfg.Arena.Width)+m ||
		l.Y < -m || l.Y > float64(cfg.Arena.Height)+m
}

// Glowing reports the laser's cosmetic glow phase.
func (l *Laser) Glowing() bool {
	return l.Life%4 < 2
}
