package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestAsteroidSplitScenario(t *testing.T) {
	w := newTestWorld(t, emptyConfig())
	cfg := w.Config()

	// Size 0 asteroid at (100, 100) moving (0.4, 0) after damping
	a := NewAsteroid(cfg, 100, 100, 0, 0.8, 0)
	if a.VX != 0.4 {
		t.Fatalf("asteroid VX = %v, expected 0.4 after damping", a.VX)
	}
	w.Asteroids = append(w.Asteroids, a)

	// Player laser moving (0, -4), arriving inside the asteroid's box
	l := NewLaser(cfg, 120, 140, 0, 0, OwnerPlayer)
	l.VY = -4
	w.Lasers = append(w.Lasers, l)

	w.Step(core.InputFrame{}, time.Unix(1000, 0))

	if w.Score != 100 {
		t.Errorf("score = %d, expected 100", w.Score)
	}
	if len(w.Lasers) != 0 {
		t.Errorf("laser should be consumed, %d remain", len(w.Lasers))
	}
	if len(w.Asteroids) != 2 {
		t.Fatalf("asteroids = %d, expected the 2 children", len(w.Asteroids))
	}
	for _, c := range w.Asteroids {
		if c == a {
			t.Error("original asteroid should be removed")
		}
		if c.Size != 1 || c.W != 40 {
			t.Errorf("child size class %d width %d, expected 1 and 40", c.Size, c.W)
		}
		if c.X != a.X || c.Y != a.Y {
			t.Errorf("child at (%v, %v), expected parent position (%v, %v)", c.X, c.Y, a.X, a.Y)
		}
	}
	if len(w.Explosions) != 1 {
		t.Fatalf("explosions = %d, expected 1", len(w.Explosions))
	}
	// The marker is created with radius 10 and decays once in the same tick
	if r := w.Explosions[0].Radius; r != cfg.Explosions.AsteroidRadius-1 {
		t.Errorf("explosion radius after the tick = %d, expected %d", r, cfg.Explosions.AsteroidRadius-1)
	}
}

func TestShootAsteroidsExplosionRadius(t *testing.T) {
	w := newTestWorld(t, emptyConfig())
	cfg := w.Config()
	w.Asteroids = append(w.Asteroids, NewAsteroid(cfg, 100, 100, 0, 0, 0))
	w.Lasers = append(w.Lasers, NewLaser(cfg, 120, 120, 0, 0, OwnerPlayer))

	w.shootAsteroids()

	if len(w.Explosions) != 1 || w.Explosions[0].Radius != 10 {
		t.Fatalf("explosions = %+v, expected one marker with radius 10", w.Explosions)
	}
	if w.Explosions[0].X != 100 || w.Explosions[0].Y != 100 {
		t.Errorf("explosion at (%v, %v), expected asteroid position", w.Explosions[0].X, w.Explosions[0].Y)
	}
}

func TestAsteroidSplitCounts(t *testing.T) {
	tests := []struct {
		size      int
		children  int
		childSize int
		points    int
	}{
		{size: 0, children: 2, childSize: 1, points: 100},
		{size: 1, children: 2, childSize: 2, points: 200},
		{size: 2, children: 0, points: 300},
	}

	for _, tc := range tests {
		w := newTestWorld(t, emptyConfig())
		cfg := w.Config()
		w.Asteroids = append(w.Asteroids, NewAsteroid(cfg, 200, 200, tc.size, 0, 0))
		w.Lasers = append(w.Lasers, NewLaser(cfg, 205, 205, 0, 0, OwnerPlayer))

		w.shootAsteroids()

		if len(w.Asteroids) != tc.children {
			t.Errorf("size %d: %d children, expected %d", tc.size, len(w.Asteroids), tc.children)
		}
		for _, c := range w.Asteroids {
			if c.Size != tc.childSize {
				t.Errorf("size %d: child size %d, expected %d", tc.size, c.Size, tc.childSize)
			}
			if c.VX < -0.75 || c.VX > 0.75 || c.VY < -0.75 || c.VY > 0.75 {
				t.Errorf("child velocity (%v, %v) outside damped spread", c.VX, c.VY)
			}
		}
		if w.Score != tc.points {
			t.Errorf("size %d: score %d, expected %d", tc.size, w.Score, tc.points)
		}
	}
}

func TestLaserDestroysOneAsteroid(t *testing.T) {
	w := newTestWorld(t, emptyConfig())
	cfg := w.Config()
	// Two small asteroids stacked on the same laser
	w.Asteroids = append(w.Asteroids,
		NewAsteroid(cfg, 100, 100, 2, 0, 0),
		NewAsteroid(cfg, 100, 105, 2, 0, 0),
	)
	w.Lasers = append(w.Lasers, NewLaser(cfg, 105, 105, 0, 0, OwnerPlayer))

	w.shootAsteroids()

	if len(w.Asteroids) != 1 {
		t.Fatalf("asteroids = %d, expected 1 survivor", len(w.Asteroids))
	}
	if w.Asteroids[0].Y != 105 {
		t.Error("the first asteroid in list order should be the one destroyed")
	}
	if w.Score != 300 {
		t.Errorf("score = %d, expected 300", w.Score)
	}
}

func TestChildrenAreNotHitInTheirFirstTick(t *testing.T) {
	w := newTestWorld(t, emptyConfig())
	cfg := w.Config()
	w.Asteroids = append(w.Asteroids, NewAsteroid(cfg, 100, 100, 0, 0, 0))
	// Two lasers on the same spot: the first splits, the second must not
	// see the children this pass
	w.Lasers = append(w.Lasers,
		NewLaser(cfg, 110, 110, 0, 0, OwnerPlayer),
		NewLaser(cfg, 110, 110, 0, 0, OwnerPlayer),
	)

	w.shootAsteroids()

	if len(w.Asteroids) != 2 {
		t.Errorf("asteroids = %d, expected 2 untouched children", len(w.Asteroids))
	}
	if len(w.Lasers) != 1 {
		t.Errorf("lasers = %d, expected the second laser to survive", len(w.Lasers))
	}
}

func TestRemovalDoesNotSkip(t *testing.T) {
	w := newTestWorld(t, emptyConfig())
	cfg := w.Config()
	// Adjacent asteroids each hit by their own adjacent laser
	for i := range 4 {
		x := float64(100 + i*100)
		w.Asteroids = append(w.Asteroids, NewAsteroid(cfg, x, 100, 2, 0, 0))
		w.Lasers = append(w.Lasers, NewLaser(cfg, x+5, 105, 0, 0, OwnerPlayer))
	}

	w.shootAsteroids()

	if len(w.Asteroids) != 0 || len(w.Lasers) != 0 {
		t.Errorf("asteroids=%d lasers=%d, expected every pair destroyed", len(w.Asteroids), len(w.Lasers))
	}
	if w.Score != 4*300 {
		t.Errorf("score = %d, expected %d", w.Score, 4*300)
	}
}

func TestLaserUFO(t *testing.T) {
	w := newTestWorld(t, emptyConfig())
	cfg := w.Config()
	w.UFOs = append(w.UFOs, NewUFO(cfg, 300, 100))
	w.Lasers = append(w.Lasers,
		NewLaser(cfg, 310, 105, 0, 0, OwnerPlayer),
		NewLaser(cfg, 310, 105, 0, 0, OwnerEnemy),
	)

	w.shootUFOs()

	if len(w.UFOs) != 0 {
		t.Error("UFO should be destroyed")
	}
	if w.Score != 500 {
		t.Errorf("score = %d, expected 500", w.Score)
	}
	if len(w.Lasers) != 1 || w.Lasers[0].Owner != OwnerEnemy {
		t.Error("enemy lasers must not hit UFOs")
	}
	if len(w.Explosions) != 1 || w.Explosions[0].Radius != 15 {
		t.Errorf("explosions = %+v, expected one with radius 15", w.Explosions)
	}
}

func TestLethalUFOContact(t *testing.T) {
	w := newTestWorld(t, emptyConfig())
	cfg := w.Config()
	w.Ship.Health = 1
	w.Ship.Blink = 0
	w.UFOs = append(w.UFOs, NewUFO(cfg, w.Ship.X, w.Ship.Y))
	w.Score = 42

	over := w.Step(core.InputFrame{}, time.Unix(1000, 0))

	if !over || !w.Over {
		t.Fatal("UFO contact at health 1 should end the game")
	}
	if w.Ship.Health != 0 {
		t.Errorf("health = %d, expected 0", w.Ship.Health)
	}
	if w.Score != 42 {
		t.Errorf("score = %d, expected the final score to stay 42", w.Score)
	}
}

func TestContactDamage(t *testing.T) {
	tests := []struct {
		name  string
		place func(w *World)
	}{
		{"asteroid", func(w *World) {
			w.Asteroids = append(w.Asteroids, NewAsteroid(w.Config(), w.Ship.X, w.Ship.Y, 0, 0, 0))
		}},
		{"ufo", func(w *World) {
			w.UFOs = append(w.UFOs, NewUFO(w.Config(), w.Ship.X, w.Ship.Y))
		}},
		{"enemy laser", func(w *World) {
			w.Lasers = append(w.Lasers, NewLaser(w.Config(), w.Ship.X+10, w.Ship.Y+10, 0, 0, OwnerEnemy))
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, emptyConfig())
			tc.place(w)

			w.Step(core.InputFrame{}, time.Unix(1000, 0))

			if w.Ship.Health != 2 {
				t.Errorf("health = %d, expected 2", w.Ship.Health)
			}
			if w.Ship.Blink != 36 {
				t.Errorf("blink = %d, expected 36", w.Ship.Blink)
			}
			if len(w.Explosions) != 1 || w.Explosions[0].Radius != 7 {
				t.Errorf("explosions = %+v, expected one ship marker (radius 8, decayed once)", w.Explosions)
			}
		})
	}
}

func TestEnemyLaserRemovedOnHit(t *testing.T) {
	w := newTestWorld(t, emptyConfig())
	w.Lasers = append(w.Lasers, NewLaser(w.Config(), w.Ship.X+10, w.Ship.Y+10, 0, 0, OwnerEnemy))

	w.Step(core.InputFrame{}, time.Unix(1000, 0))

	if len(w.Lasers) != 0 {
		t.Errorf("enemy laser should be removed when it hits, %d remain", len(w.Lasers))
	}
}

func TestInvulnerableShipTakesNoDamage(t *testing.T) {
	cfg := emptyConfig()
	cfg.UFOs.FireChance = 0
	w := newTestWorld(t, cfg)
	w.Ship.Blink = 10
	w.Asteroids = append(w.Asteroids, NewAsteroid(&cfg, w.Ship.X, w.Ship.Y, 0, 0, 0))
	w.UFOs = append(w.UFOs, NewUFO(&cfg, w.Ship.X, w.Ship.Y))
	w.Lasers = append(w.Lasers, NewLaser(&cfg, w.Ship.X+10, w.Ship.Y+10, 0, 0, OwnerEnemy))

	w.Step(core.InputFrame{}, time.Unix(1000, 0))

	if w.Ship.Health != 3 {
		t.Errorf("health = %d, blinking ship should take no damage", w.Ship.Health)
	}
	if len(w.Lasers) != 1 {
		t.Error("enemy laser should pass through a blinking ship")
	}
	if w.Ship.Blink != 9 {
		t.Errorf("blink = %d, expected 9", w.Ship.Blink)
	}
}

func TestOneHitPerTick(t *testing.T) {
	w := newTestWorld(t, emptyConfig())
	cfg := w.Config()
	w.Asteroids = append(w.Asteroids,
		NewAsteroid(cfg, w.Ship.X, w.Ship.Y, 0, 0, 0),
		NewAsteroid(cfg, w.Ship.X, w.Ship.Y, 1, 0, 0),
	)

	w.Step(core.InputFrame{}, time.Unix(1000, 0))

	if w.Ship.Health != 2 {
		t.Errorf("health = %d, overlapping hazards should cost one point per tick", w.Ship.Health)
	}
}

func TestPowerUps(t *testing.T) {
	tests := []struct {
		kind  PowerUpType
		blink int
		score int
	}{
		{PowerUpShield, 180, 0},
		{PowerUpFire, 49, 300},
		{PowerUpPoints, 49, 500},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			w := newTestWorld(t, emptyConfig())
			// Already blinking: power-ups resolve regardless
			w.Ship.Blink = 50
			w.PowerUps = append(w.PowerUps, NewPowerUp(w.Config(), w.Ship.X+5, w.Ship.Y+5, tc.kind))

			w.Step(core.InputFrame{}, time.Unix(1000, 0))

			if len(w.PowerUps) != 0 {
				t.Error("power-up should be consumed")
			}
			if w.Ship.Blink != tc.blink {
				t.Errorf("blink = %d, expected %d", w.Ship.Blink, tc.blink)
			}
			if w.Score != tc.score {
				t.Errorf("score = %d, expected %d", w.Score, tc.score)
			}
		})
	}
}

func TestShotCooldown(t *testing.T) {
	tests := []struct {
		name   string
		ship   int
		offset []time.Duration
		lasers int
	}{
		{"fighter single shot", 0, []time.Duration{0}, 1},
		{"fighter within cooldown", 0, []time.Duration{0, 100 * time.Millisecond, 249 * time.Millisecond}, 1},
		{"fighter after cooldown", 0, []time.Duration{0, 250 * time.Millisecond}, 2},
		{"interceptor spread", 1, []time.Duration{0, 10 * time.Millisecond}, 3},
		{"interceptor after cooldown", 1, []time.Duration{0, 300 * time.Millisecond}, 6},
		{"bomber single shot", 2, []time.Duration{0, 200 * time.Millisecond}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(emptyConfig(), testOptions(t, 0, tc.ship))
			t0 := time.Unix(1000, 0)
			for _, off := range tc.offset {
				w.Step(core.InputFrame{Fire: true}, t0.Add(off))
			}
			if len(w.Lasers) != tc.lasers {
				t.Errorf("lasers = %d, expected %d", len(w.Lasers), tc.lasers)
			}
		})
	}
}

func TestSpreadGeometry(t *testing.T) {
	w := NewWorld(emptyConfig(), testOptions(t, 0, 1))
	if n := w.fire(time.Unix(1000, 0)); n != 3 {
		t.Fatalf("fire() = %d, expected 3", n)
	}

	centre := w.Ship.X + 15 - 1.5
	want := []float64{centre, centre - 10, centre + 10}
	for i, l := range w.Lasers {
		if l.X != want[i] {
			t.Errorf("laser %d at x=%v, expected %v", i, l.X, want[i])
		}
		if l.Y != w.Ship.Y-10 {
			t.Errorf("laser %d at y=%v, expected %v", i, l.Y, w.Ship.Y-10)
		}
		if l.VY != -8*1.2 || l.VX != 0 {
			t.Errorf("laser %d velocity (%v, %v), expected (0, -9.6)", i, l.VX, l.VY)
		}
	}
}

func TestMotionRules(t *testing.T) {
	cfg := emptyConfig()

	t.Run("asteroid wraps", func(t *testing.T) {
		a := NewAsteroid(&cfg, -60, 599, 0, -2, 4)
		a.Move(&cfg)
		if a.X != 800 {
			t.Errorf("x = %v, expected wrap to 800", a.X)
		}
		if a.Y != -60 {
			t.Errorf("y = %v, expected wrap to -60", a.Y)
		}
	})

	t.Run("ufo bounces and clamps", func(t *testing.T) {
		u := NewUFO(&cfg, 20.5, 5)
		u.Dir = -1
		u.Move(&cfg)
		if u.Dir != 1 {
			t.Errorf("dir = %v, expected flip at the left margin", u.Dir)
		}
		if u.Y != 20 {
			t.Errorf("y = %v, expected clamp to 20", u.Y)
		}
	})

	t.Run("laser expires", func(t *testing.T) {
		l := NewLaser(&cfg, 100, 100, 0, 0, OwnerPlayer)
		for range 29 {
			l.Move(&cfg)
		}
		if !l.Alive {
			t.Fatal("laser died early")
		}
		l.Move(&cfg)
		if l.Alive {
			t.Error("laser should die when life reaches 0")
		}
	})

	t.Run("laser out of bounds", func(t *testing.T) {
		l := NewLaser(&cfg, 100, -21, 0, 0, OwnerPlayer)
		if !l.OutOfBounds(&cfg) {
			t.Error("laser beyond the 20 unit margin should be out of bounds")
		}
		l.Y = -19
		if l.OutOfBounds(&cfg) {
			t.Error("laser inside the margin should stay")
		}
	})

	t.Run("power-up falls off", func(t *testing.T) {
		p := NewPowerUp(&cfg, 100, 599, PowerUpShield)
		p.Move(&cfg)
		if p.Alive {
			t.Error("power-up below the arena should die")
		}
		if p.Pulse != 1 {
			t.Errorf("pulse = %d, expected 1", p.Pulse)
		}
	})
}

func TestSpawners(t *testing.T) {
	cfg := emptyConfig()
	cfg.UFOs.FireChance = 0
	w := newTestWorld(t, cfg)
	// Keep the ship invulnerable so nothing spawned ends the run
	w.Ship.Blink = 1 << 20
	now := time.Unix(1000, 0)

	for range 600 {
		w.Step(core.InputFrame{}, now)
	}

	if len(w.UFOs) != 1 {
		t.Errorf("ufos after 600 ticks = %d, expected 1 (spawned at tick 400)", len(w.UFOs))
	}
	if len(w.PowerUps) != 1 {
		t.Errorf("power-ups after 600 ticks = %d, expected 1", len(w.PowerUps))
	}
	// Replenishment at ticks 200, 400 and 600
	if len(w.Asteroids) != 3 {
		t.Errorf("asteroids after 600 ticks = %d, expected 3", len(w.Asteroids))
	}
}

func TestPowerUpSpawnRange(t *testing.T) {
	cfg := emptyConfig()
	cfg.UFOs.MaxAlive = 0
	cfg.Asteroids.ReplenishBelow = 0
	cfg.PowerUps.SpawnEvery = 1
	w := newTestWorld(t, cfg)
	w.Ship.Blink = 1 << 20
	now := time.Unix(1000, 0)

	for range 1000 {
		w.Step(core.InputFrame{}, now)
		if len(w.PowerUps) != 1 {
			t.Fatalf("power-ups = %d, expected 1 per tick", len(w.PowerUps))
		}
		if x := w.PowerUps[0].X; x < 0 || x >= cfg.PowerUps.SpawnRange {
			t.Fatalf("power-up x = %.2f, expected within [0, %.0f)", x, cfg.PowerUps.SpawnRange)
		}
		w.PowerUps = w.PowerUps[:0]
	}
}
