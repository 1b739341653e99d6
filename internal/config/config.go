// Package config provides YAML-based tuning for the asteroids simulation
// and the difficulty presets layered on top of it.
package config

import (
	"errors"
	"fmt"
	"time"
)

// AsteroidsConfig contains every tuning constant of the simulation.
// Distances are in arena units, durations in ticks unless typed otherwise.
type AsteroidsConfig struct {
	Arena      ArenaConfig     `yaml:"arena"`
	Ship       ShipConfig      `yaml:"ship"`
	Asteroids  AsteroidConfig  `yaml:"asteroids"`
	UFOs       UFOConfig       `yaml:"ufos"`
	Lasers     LaserConfig     `yaml:"lasers"`
	PowerUps   PowerUpConfig   `yaml:"powerups"`
	Explosions ExplosionConfig `yaml:"explosions"`
	Scoring    ScoringConfig   `yaml:"scoring"`
	Loop       LoopConfig      `yaml:"loop"`
}

// ArenaConfig defines the logical playfield.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	Speed        float64       `yaml:"speed"`
	Health       int           `yaml:"health"`
	HitBlink     int           `yaml:"hit_blink"` // invulnerability after a hit
	Cooldown     time.Duration `yaml:"cooldown"`  // wall-clock time between shots
	SpreadOffset float64       `yaml:"spread_offset"`
}

// AsteroidConfig defines asteroid sizes, scoring and spawning.
type AsteroidConfig struct {
	Sizes           []int   `yaml:"sizes"`  // edge length per size class
	Points          []int   `yaml:"points"` // score per size class
	Damping         float64 `yaml:"damping"`
	InitialCount    int     `yaml:"initial_count"`
	InitialSpread   float64 `yaml:"initial_spread"`
	ChildSpread     float64 `yaml:"child_spread"`
	ReplenishEvery  int     `yaml:"replenish_every"`
	ReplenishBelow  int     `yaml:"replenish_below"`
	ReplenishSpread float64 `yaml:"replenish_spread"`
}

// UFOConfig defines enemy craft.
type UFOConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	SpeedFactor float64 `yaml:"speed_factor"`
	MinX        float64 `yaml:"min_x"`
	MaxX        float64 `yaml:"max_x"`
	MinY        float64 `yaml:"min_y"`
	MaxY        float64 `yaml:"max_y"`
	SpawnEvery  int     `yaml:"spawn_every"`
	MaxAlive    int     `yaml:"max_alive"`
	SpawnTop    float64 `yaml:"spawn_top"`
	SpawnRange  float64 `yaml:"spawn_range"`
	FireChance  float64 `yaml:"fire_chance"` // per tick, across all UFOs
	Points      int     `yaml:"points"`
}

// LaserConfig defines shots from both sides.
type LaserConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Life          int     `yaml:"life"`
	VelocityScale float64 `yaml:"velocity_scale"`
	PlayerSpeed   float64 `yaml:"player_speed"`
	EnemySpeed    float64 `yaml:"enemy_speed"`
	MuzzleOffset  float64 `yaml:"muzzle_offset"`
	Margin        float64 `yaml:"margin"` // off-arena tolerance before removal
}

// PowerUpConfig defines falling pickups.
type PowerUpConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	FallSpeed   float64 `yaml:"fall_speed"`
	SpawnEvery  int     `yaml:"spawn_every"`
	SpawnRange  float64 `yaml:"spawn_range"`
	SpawnY      float64 `yaml:"spawn_y"`
	PulsePeriod int     `yaml:"pulse_period"`
	ShieldBlink int     `yaml:"shield_blink"`
	FirePoints  int     `yaml:"fire_points"`
	BonusPoints int     `yaml:"bonus_points"`
}

// ExplosionConfig defines the starting radius of each explosion marker.
type ExplosionConfig struct {
	AsteroidRadius int `yaml:"asteroid_radius"`
	UFORadius      int `yaml:"ufo_radius"`
	ShipRadius     int `yaml:"ship_radius"`
}

// ScoringConfig defines passive score accrual.
type ScoringConfig struct {
	PassiveEvery  int `yaml:"passive_every"`
	PassivePoints int `yaml:"passive_points"`
}

// LoopConfig defines the fixed-timestep scheduler.
type LoopConfig struct {
	TickRate   int           `yaml:"tick_rate"`
	MaxCatchUp int           `yaml:"max_catch_up"`
	Yield      time.Duration `yaml:"yield"`
	HoldWindow time.Duration `yaml:"hold_window"`
}

// TickDuration returns the length of one simulation tick.
func (l LoopConfig) TickDuration() time.Duration {
	if l.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(l.TickRate)
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate rejects configurations the simulation cannot run with.
func (c AsteroidsConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Arena.Width > 0 && c.Arena.Height > 0, "arena size must be positive"},
		{c.Ship.Width > 0 && c.Ship.Height > 0, "ship size must be positive"},
		{c.Ship.Health > 0, "ship health must be positive"},
		{c.Ship.Cooldown >= 0, "ship cooldown must not be negative"},
		{len(c.Asteroids.Sizes) > 0, "at least one asteroid size is required"},
		{len(c.Asteroids.Sizes) == len(c.Asteroids.Points), "asteroid sizes and points must pair up"},
		{c.Asteroids.InitialCount >= 0, "initial asteroid count must not be negative"},
		{c.Asteroids.ReplenishEvery > 0, "asteroid replenish interval must be positive"},
		{c.UFOs.Width > 0 && c.UFOs.Height > 0, "ufo size must be positive"},
		{c.UFOs.SpawnEvery > 0, "ufo spawn interval must be positive"},
		{c.UFOs.FireChance >= 0 && c.UFOs.FireChance <= 1, "ufo fire chance must be within [0, 1]"},
		{c.Lasers.Width > 0 && c.Lasers.Height > 0, "laser size must be positive"},
		{c.Lasers.Life > 0, "laser life must be positive"},
		{c.PowerUps.Width > 0 && c.PowerUps.Height > 0, "power-up size must be positive"},
		{c.PowerUps.SpawnEvery > 0, "power-up spawn interval must be positive"},
		{c.PowerUps.SpawnRange >= 0, "power-up spawn range must not be negative"},
		{c.PowerUps.PulsePeriod > 0, "power-up pulse period must be positive"},
		{c.UFOs.Points >= 0, "ufo points must not be negative"},
		{c.PowerUps.FirePoints >= 0 && c.PowerUps.BonusPoints >= 0, "power-up points must not be negative"},
		{c.Scoring.PassivePoints >= 0, "passive points must not be negative"},
		{c.Scoring.PassiveEvery > 0, "passive score interval must be positive"},
		{c.Loop.TickRate > 0, "tick rate must be positive"},
		{c.Loop.MaxCatchUp > 0, "max catch-up must be positive"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.what)
		}
	}
	for i, s := range c.Asteroids.Sizes {
		if s <= 0 {
			return fmt.Errorf("%w: asteroid size class %d must be positive", ErrInvalidConfig, i)
		}
	}
	for i, p := range c.Asteroids.Points {
		if p < 0 {
			return fmt.Errorf("%w: asteroid points for size class %d must not be negative", ErrInvalidConfig, i)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, s)
	}
}
