package game

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// Sprite is the drawable view of one entity.
type Sprite struct {
	Kind    Kind
	X, Y    float64
	W, H    int
	Color   core.Color
	Variant int // asteroid size class, ufo 0, ship hull, laser owner, power-up type
	Phase   int // ship blink, laser life, power-up pulse
}

// Visible reports whether the sprite is drawn this frame.
func (sp Sprite) Visible() bool {
	if sp.Kind == KindShip {
		return shipVisible(sp.Phase)
	}
	return true
}

// Glowing reports the laser glow phase. Always false for other kinds.
func (sp Sprite) Glowing() bool {
	return sp.Kind == KindLaser && sp.Phase%4 < 2
}

// Snapshot is an immutable copy of the world for presentation.
// It is safe to read from any goroutine once published.
type Snapshot struct {
	Tick      uint64
	ArenaW    int
	ArenaH    int
	Score     int
	HighScore int
	Health    int
	Blink     int
	Asteroids int // live asteroid count for the HUD
	GameOver  bool

	Map   registry.MapInfo
	Ship  registry.ShipInfo
	Pilot string

	// Draw order: asteroids, ufos, lasers, power-ups, ship last
	Sprites    []Sprite
	Explosions []Explosion
	Decor      []DecorItem // shared with the world, never modified
}

// Snapshot copies the current world state.
func (w *World) Snapshot() *Snapshot {
	snap := &Snapshot{
		Tick:      w.Tick,
		ArenaW:    w.cfg.Arena.Width,
		ArenaH:    w.cfg.Arena.Height,
		Score:     w.Score,
		HighScore: max(w.opts.HighScore, w.Score),
		Health:    w.Ship.Health,
		Blink:     w.Ship.Blink,
		Asteroids: len(w.Asteroids),
		GameOver:  w.Over,
		Map:       w.opts.Map,
		Ship:      w.opts.Ship,
		Pilot:     w.opts.Pilot,
		Decor:     w.decor,
	}

	n := len(w.Asteroids) + len(w.UFOs) + len(w.Lasers) + len(w.PowerUps) + 1
	snap.Sprites = make([]Sprite, 0, n)
	for _, a := range w.Asteroids {
		snap.Sprites = append(snap.Sprites, sprite(KindAsteroid, &a.Body, a.Size, 0))
	}
	for _, u := range w.UFOs {
		snap.Sprites = append(snap.Sprites, sprite(KindUFO, &u.Body, 0, 0))
	}
	for _, l := range w.Lasers {
		snap.Sprites = append(snap.Sprites, sprite(KindLaser, &l.Body, int(l.Owner), l.Life))
	}
	for _, p := range w.PowerUps {
		snap.Sprites = append(snap.Sprites, sprite(KindPowerUp, &p.Body, int(p.Type), p.Pulse))
	}
	snap.Sprites = append(snap.Sprites, sprite(KindShip, &w.Ship.Body, w.Ship.Type, w.Ship.Blink))

	snap.Explosions = make([]Explosion, len(w.Explosions))
	for i, e := range w.Explosions {
		snap.Explosions[i] = *e
	}
	return snap
}

func sprite(k Kind, b *Body, variant, phase int) Sprite {
	return Sprite{
		Kind:    k,
		X:       b.X,
		Y:       b.Y,
		W:       b.W,
		H:       b.H,
		Color:   b.Color,
		Variant: variant,
		Phase:   phase,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Health) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Blink)  //#nosec G115 -- hash computation

	for _, sp := range s.Sprites {
		h = h*31 + uint64(sp.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(sp.X)
		h = h*31 + math.Float64bits(sp.Y)
		h = h*31 + uint64(sp.Variant) //#nosec G115 -- hash computation
		h = h*31 + uint64(sp.Phase)   //#nosec G115 -- hash computation
	}

	for _, e := range s.Explosions {
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
		h = h*31 + uint64(e.Radius) //#nosec G115 -- hash computation
	}
	return h
}
