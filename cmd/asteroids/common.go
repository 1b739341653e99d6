package main

import (
	"fmt"
	"os"
	"os/user"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/session"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// loadGameConfig reads the game tuning and applies the difficulty preset.
func loadGameConfig() (config.AsteroidsConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.AsteroidsConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.AsteroidsConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig sizes the screen to the local terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.FPS = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Failure is not fatal: the game
// still works, scores just are not saved.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newSession builds a local session around an optional store.
func newSession(cfg config.AsteroidsConfig, store *storage.Store) *session.Session {
	opts := []session.Option{
		session.WithLogger(logger),
		session.WithSeed(flagSeed),
	}
	if store != nil {
		opts = append(opts, session.WithStore(store))
	}
	return session.New(cfg, opts...)
}

// frontStore hides a missing database from the UI.
func frontStore(store *storage.Store) tui.Store {
	if store == nil {
		return nil
	}
	return store
}

// defaultPilot names the local player after the OS user.
func defaultPilot() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "pilot"
}
