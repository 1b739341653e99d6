package core

// RuntimeConfig contains host settings passed down from the CLI.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Render frames per second
	Seed    int64 // RNG seed, 0 means derive from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     30,
		Seed:    0,
	}
}
