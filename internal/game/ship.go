package game

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Ship is the player's craft.
type Ship struct {
	Body
	Type   int // hull index from the registry
	Health int
	Blink  int // invulnerability ticks remaining
}

// NewShip creates a ship centred in the arena.
func NewShip(cfg *config.AsteroidsConfig, hull int) *Ship {
	w, h := cfg.Ship.Width, cfg.Ship.Height
	return &Ship{
		Body: Body{
			X:     float64(cfg.Arena.Width-w) / 2,
			Y:     float64(cfg.Arena.Height-h) / 2,
			W:     w,
			H:     h,
			Alive: true,
			Color: core.ColorGreen,
		},
		Type:   hull,
		Health: cfg.Ship.Health,
	}
}

func (s *Ship) Kind() Kind { return KindShip }

// Steer sets the velocity from held directions. Right beats left and
// down beats up when both are held.
func (s *Ship) Steer(in core.InputFrame, speed float64) {
	s.VX, s.VY = 0, 0
	if in.Left {
		s.VX = -speed
	}
	if in.Right {
		s.VX = speed
	}
	if in.Up {
		s.VY = -speed
	}
	if in.Down {
		s.VY = speed
	}
}

// Move integrates, clamps to the arena and ticks the blink timer.
func (s *Ship) Move(cfg *config.AsteroidsConfig) {
	s.integrate()

	maxX := float64(cfg.Arena.Width - s.W)
	maxY := float64(cfg.Arena.Height - s.H)
	if s.X < 0 || s.X > maxX {
		s.X = core.ClampF(s.X, 0, maxX)
		s.VX = 0
	}
	if s.Y < 0 || s.Y > maxY {
		s.Y = core.ClampF(s.Y, 0, maxY)
		s.VY = 0
	}

	if s.Blink > 0 {
		s.Blink--
	}
}

// Invulnerable reports whether contact damage is ignored.
func (s *Ship) Invulnerable() bool {
	return s.Blink > 0
}

// Hit applies one point of damage and starts the blink window.
// It reports whether the ship is destroyed.
func (s *Ship) Hit(blink int) bool {
	s.Health--
	s.Blink = blink
	if s.Health <= 0 {
		s.Health = 0
		s.Alive = false
		return true
	}
	return false
}

// Visible reports whether the ship is drawn this frame; it flickers while blinking.
func (s *Ship) Visible() bool {
	return shipVisible(s.Blink)
}

func shipVisible(blink int) bool {
	return blink == 0 || (blink/4)%2 != 0
}
