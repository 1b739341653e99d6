package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultConfig returns the built-in asteroids configuration.
// It mirrors defaults/asteroids.yaml.
func DefaultConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Ship: ShipConfig{
			Width:        30,
			Height:       30,
			Speed:        2.5,
			Health:       3,
			HitBlink:     36,
			Cooldown:     250 * time.Millisecond,
			SpreadOffset: 10,
		},
		Asteroids: AsteroidConfig{
			Sizes:           []int{60, 40, 20},
			Points:          []int{100, 200, 300},
			Damping:         0.5,
			InitialCount:    6,
			InitialSpread:   1.5,
			ChildSpread:     3,
			ReplenishEvery:  200,
			ReplenishBelow:  4,
			ReplenishSpread: 1.5,
		},
		UFOs: UFOConfig{
			Width:       40,
			Height:      20,
			Speed:       1.5,
			SpeedFactor: 0.8,
			MinX:        20,
			MaxX:        760,
			MinY:        20,
			MaxY:        580,
			SpawnEvery:  400,
			MaxAlive:    2,
			SpawnTop:    50,
			SpawnRange:  200,
			FireChance:  0.01,
			Points:      500,
		},
		Lasers: LaserConfig{
			Width:         3,
			Height:        15,
			Life:          30,
			VelocityScale: 1.2,
			PlayerSpeed:   8,
			EnemySpeed:    4,
			MuzzleOffset:  10,
			Margin:        20,
		},
		PowerUps: PowerUpConfig{
			Width:       20,
			Height:      20,
			FallSpeed:   1.2,
			SpawnEvery:  600,
			SpawnRange:  760,
			SpawnY:      -20,
			PulsePeriod: 60,
			ShieldBlink: 180,
			FirePoints:  300,
			BonusPoints: 500,
		},
		Explosions: ExplosionConfig{
			AsteroidRadius: 10,
			UFORadius:      15,
			ShipRadius:     8,
		},
		Scoring: ScoringConfig{
			PassiveEvery:  20,
			PassivePoints: 1,
		},
		Loop: LoopConfig{
			TickRate:   60,
			MaxCatchUp: 5,
			Yield:      10 * time.Millisecond,
			HoldWindow: 160 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}
