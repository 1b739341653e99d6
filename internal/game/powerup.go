package game

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// PowerUpType represents the effect of a pickup.
type PowerUpType int

const (
	PowerUpShield PowerUpType = iota // Invulnerability window
	PowerUpFire                      // Score bonus
	PowerUpPoints                    // Larger score bonus
	PowerUpCount                     // Sentinel for counting types
)

// Glyph returns the display character for a power-up type.
func (p PowerUpType) Glyph() rune {
	switch p {
	case PowerUpShield:
		return 'S'
	case PowerUpFire:
		return 'F'
	case PowerUpPoints:
		return 'P'
	default:
		return '?'
	}
}

// String returns the name of the power-up type.
func (p PowerUpType) String() string {
	switch p {
	case PowerUpShield:
		return "Shield"
	case PowerUpFire:
		return "Fire"
	case PowerUpPoints:
		return "Points"
	default:
		return "?"
	}
}

func (p PowerUpType) color() core.Color {
	switch p {
	case PowerUpShield:
		return core.ColorBlue
	case PowerUpFire:
		return core.ColorOrange
	default:
		return core.ColorYellow
	}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	Body
	Type  PowerUpType
	Pulse int // cosmetic phase, 0..PulsePeriod-1
}

// NewPowerUp creates a pickup at (x, y) falling at the configured speed.
func NewPowerUp(cfg *config.AsteroidsConfig, x, y float64, t PowerUpType) *PowerUp {
	return &PowerUp{
		Body: Body{
			X:     x,
			Y:     y,
			W:     cfg.PowerUps.Width,
			H:     cfg.PowerUps.Height,
			VY:    cfg.PowerUps.FallSpeed,
			Alive: true,
			Color: t.color(),
		},
		Type: t,
	}
}

func (p *PowerUp) Kind() Kind { return KindPowerUp }

// Move falls, advances the pulse and dies below the arena.
func (p *PowerUp) Move(cfg *config.AsteroidsConfig) {
	p.Y += p.VY
	p.Pulse = (p.Pulse + 1) % cfg.PowerUps.PulsePeriod
	if p.Y > float64(cfg.Arena.Height) {
		p.Alive = false
	}
}
