package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "asteroids.yaml"

// Load loads the asteroids configuration and validates it.
// Search order: customPath -> ~/.asteroids/configs/asteroids.yaml ->
// ./configs/asteroids.yaml -> embedded default.
// Files are decoded over the defaults, so partial files are allowed.
func Load(customPath string) (AsteroidsConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (AsteroidsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultAsteroidsYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode(data []byte) (AsteroidsConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".asteroids", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Health = 5
		cfg.UFOs.FireChance = 0.005
		cfg.UFOs.SpawnEvery = 600
		cfg.Asteroids.ReplenishEvery = 300
	case DifficultyHard:
		cfg.Ship.Health = 2
		cfg.UFOs.FireChance = 0.02
		cfg.UFOs.SpawnEvery = 300
		cfg.UFOs.MaxAlive = 3
		cfg.Asteroids.ReplenishEvery = 150
	}
}
