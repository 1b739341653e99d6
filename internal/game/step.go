package game

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Step advances the world by one tick. now is the wall-clock time of the
// tick and is only used for the shot cooldown. Step reports whether the
// game is over; once it is, further calls do nothing.
//
// Entities that die during a phase are marked and compacted at the end of
// that phase, so no scan ever skips or revisits an element.
func (w *World) Step(in core.InputFrame, now time.Time) bool {
	if w.Over {
		return true
	}
	cfg := &w.cfg
	w.Tick++

	// Input and player motion
	w.Ship.Steer(in, cfg.Ship.Speed)
	if in.Fire {
		w.fire(now)
	}
	w.Ship.Move(cfg)

	w.spawn()

	for _, a := range w.Asteroids {
		a.Move(cfg)
	}
	for _, u := range w.UFOs {
		u.Move(cfg)
	}

	for _, l := range w.Lasers {
		l.Move(cfg)
		if l.OutOfBounds(cfg) {
			l.Kill()
		}
	}
	w.Lasers = compact(w.Lasers)

	for _, p := range w.PowerUps {
		p.Move(cfg)
	}
	w.PowerUps = compact(w.PowerUps)

	w.shootAsteroids()
	w.shootUFOs()

	if w.collideShip() {
		w.Over = true
		return true
	}
	w.collectPowerUps()

	w.decayExplosions()

	if w.Tick%uint64(cfg.Scoring.PassiveEvery) == 0 {
		w.Score += cfg.Scoring.PassivePoints
	}
	return false
}

// fire launches player lasers unless the cooldown is still running.
// It returns the number of lasers launched.
func (w *World) fire(now time.Time) int {
	cfg := &w.cfg
	if !w.lastShot.IsZero() && now.Sub(w.lastShot) < cfg.Ship.Cooldown {
		return 0
	}
	w.lastShot = now

	s := w.Ship
	x := s.X + float64(s.W)/2 - float64(cfg.Lasers.Width)/2
	y := s.Y - cfg.Lasers.MuzzleOffset
	vy := -cfg.Lasers.PlayerSpeed

	w.Lasers = append(w.Lasers, NewLaser(cfg, x, y, 0, vy, OwnerPlayer))
	n := 1
	for k := 1; k <= (w.opts.Ship.Guns-1)/2; k++ {
		off := float64(k) * cfg.Ship.SpreadOffset
		w.Lasers = append(w.Lasers,
			NewLaser(cfg, x-off, y, 0, vy, OwnerPlayer),
			NewLaser(cfg, x+off, y, 0, vy, OwnerPlayer),
		)
		n += 2
	}
	return n
}

// spawn runs the tick-driven spawners: UFOs, enemy fire, power-ups and
// asteroid replenishment.
func (w *World) spawn() {
	cfg := &w.cfg
	arenaW := float64(cfg.Arena.Width)

	if w.Tick%uint64(cfg.UFOs.SpawnEvery) == 0 && countAlive(w.UFOs) < cfg.UFOs.MaxAlive {
		x := w.rng.Float64() * arenaW
		y := w.rng.Float64()*cfg.UFOs.SpawnRange + cfg.UFOs.SpawnTop
		w.UFOs = append(w.UFOs, NewUFO(cfg, x, y))
	}

	if len(w.UFOs) > 0 && w.rng.Float64() < cfg.UFOs.FireChance {
		u := w.UFOs[w.rng.Intn(len(w.UFOs))]
		x, y := u.Muzzle()
		w.Lasers = append(w.Lasers, NewLaser(cfg, x, y, 0, cfg.Lasers.EnemySpeed, OwnerEnemy))
	}

	if w.Tick%uint64(cfg.PowerUps.SpawnEvery) == 0 && countAlive(w.PowerUps) == 0 {
		t := PowerUpType(w.rng.Intn(int(PowerUpCount)))
		x := w.rng.Float64() * cfg.PowerUps.SpawnRange
		w.PowerUps = append(w.PowerUps, NewPowerUp(cfg, x, cfg.PowerUps.SpawnY, t))
	}

	if w.Tick%uint64(cfg.Asteroids.ReplenishEvery) == 0 && countAlive(w.Asteroids) < cfg.Asteroids.ReplenishBelow {
		w.Asteroids = append(w.Asteroids, w.randomAsteroid(cfg.Asteroids.ReplenishSpread))
	}
}

// shootAsteroids resolves player lasers against asteroids. Each laser
// destroys at most one asteroid. Split children join the field after the
// pass, so no laser can hit them in the tick they appear.
func (w *World) shootAsteroids() {
	cfg := &w.cfg
	for _, l := range w.Lasers {
		if !l.Alive || l.Owner != OwnerPlayer {
			continue
		}
		for _, a := range w.Asteroids {
			if !a.Alive || !Collides(l, a) {
				continue
			}
			l.Kill()
			a.Kill()
			w.Score += a.Points(cfg)
			w.explode(a.X, a.Y, cfg.Explosions.AsteroidRadius)
			if a.CanSplit(cfg) {
				for range 2 {
					vx := (w.rng.Float64() - 0.5) * cfg.Asteroids.ChildSpread
					vy := (w.rng.Float64() - 0.5) * cfg.Asteroids.ChildSpread
					w.staged = append(w.staged, NewAsteroid(cfg, a.X, a.Y, a.Size+1, vx, vy))
				}
			}
			break
		}
	}

	w.Lasers = compact(w.Lasers)
	w.Asteroids = append(compact(w.Asteroids), w.staged...)
	clear(w.staged)
	w.staged = w.staged[:0]
}

// shootUFOs resolves player lasers against UFOs.
func (w *World) shootUFOs() {
	cfg := &w.cfg
	for _, l := range w.Lasers {
		if !l.Alive || l.Owner != OwnerPlayer {
			continue
		}
		for _, u := range w.UFOs {
			if !u.Alive || !Collides(l, u) {
				continue
			}
			l.Kill()
			u.Kill()
			w.Score += cfg.UFOs.Points
			w.explode(u.X, u.Y, cfg.Explosions.UFORadius)
			break
		}
	}
	w.Lasers = compact(w.Lasers)
	w.UFOs = compact(w.UFOs)
}

// collideShip applies contact damage from asteroids, UFOs and enemy lasers,
// in that order. It reports whether the ship was destroyed; remaining
// checks are skipped once it is.
func (w *World) collideShip() bool {
	s := w.Ship
	defer func() { w.Lasers = compact(w.Lasers) }()

	for _, a := range w.Asteroids {
		if a.Alive && !s.Invulnerable() && Collides(s, a) {
			if w.damageShip() {
				return true
			}
		}
	}
	for _, u := range w.UFOs {
		if u.Alive && !s.Invulnerable() && Collides(s, u) {
			if w.damageShip() {
				return true
			}
		}
	}
	for _, l := range w.Lasers {
		if l.Alive && l.Owner == OwnerEnemy && !s.Invulnerable() && Collides(s, l) {
			l.Kill()
			if w.damageShip() {
				return true
			}
		}
	}
	return false
}

func (w *World) damageShip() bool {
	s := w.Ship
	destroyed := s.Hit(w.cfg.Ship.HitBlink)
	w.explode(s.X, s.Y, w.cfg.Explosions.ShipRadius)
	return destroyed
}

// collectPowerUps applies every touched pickup, regardless of blink.
func (w *World) collectPowerUps() {
	cfg := &w.cfg
	for _, p := range w.PowerUps {
		if !p.Alive || !Collides(w.Ship, p) {
			continue
		}
		switch p.Type {
		case PowerUpShield:
			w.Ship.Blink = cfg.PowerUps.ShieldBlink
		case PowerUpFire:
			w.Score += cfg.PowerUps.FirePoints
		default:
			w.Score += cfg.PowerUps.BonusPoints
		}
		p.Kill()
	}
	w.PowerUps = compact(w.PowerUps)
}

func (w *World) decayExplosions() {
	kept := w.Explosions[:0]
	for _, e := range w.Explosions {
		if e.Decay() {
			kept = append(kept, e)
		}
	}
	clear(w.Explosions[len(kept):])
	w.Explosions = kept
}
