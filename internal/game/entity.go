// Package game implements the asteroids simulation: entity variants, the
// world they live in and the fixed-order per-tick step. It has no timing,
// rendering or storage dependencies; the session layer drives it.
package game

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Kind identifies an entity variant. The set is closed.
type Kind int

const (
	KindAsteroid Kind = iota
	KindUFO
	KindShip
	KindLaser
	KindPowerUp
	KindExplosion
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindUFO:
		return "ufo"
	case KindShip:
		return "ship"
	case KindLaser:
		return "laser"
	case KindPowerUp:
		return "powerup"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Entity is implemented by every moving variant in the arena.
type Entity interface {
	Kind() Kind
	Bounds() core.RectF
	IsAlive() bool
	Kill()
	// Move advances the entity by one tick using its variant's motion rule.
	Move(cfg *config.AsteroidsConfig)
}

// Body is the geometric and physical state shared by all variants.
type Body struct {
	X, Y   float64 // top-left corner in arena units
	W, H   int
	VX, VY float64 // units per tick
	Alive  bool
	Color  core.Color
}

// Bounds returns the axis-aligned bounding box.
func (b *Body) Bounds() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// IsAlive reports whether the entity is still in play.
func (b *Body) IsAlive() bool {
	return b.Alive
}

// Kill marks the entity for removal at the next compaction.
func (b *Body) Kill() {
	b.Alive = false
}

func (b *Body) integrate() {
	b.X += b.VX
	b.Y += b.VY
}

// Collides reports whether two entities' boxes overlap with non-zero area.
func Collides(a, b Entity) bool {
	return a.Bounds().Intersects(b.Bounds())
}

// compact drops dead entities in place, preserving order.
func compact[E Entity](items []E) []E {
	kept := items[:0]
	for _, e := range items {
		if e.IsAlive() {
			kept = append(kept, e)
		}
	}
	clear(items[len(kept):])
	return kept
}

// countAlive counts live entities without allocating.
func countAlive[E Entity](items []E) int {
	n := 0
	for _, e := range items {
		if e.IsAlive() {
			n++
		}
	}
	return n
}
