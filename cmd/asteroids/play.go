package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/session"
)

var (
	flagMap   string
	flagShip  string
	flagPilot string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game right away with the chosen map and ship.

Controls:
  Arrows/WASD  - Move
  Space/F      - Fire
  P            - Pause
  R            - Restart (after game over)
  Esc          - Leave the game
  Ctrl+S       - Screenshot to ~/.asteroids/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More health, rarer UFOs, gentler fire
  normal - Default tuning
  hard   - Less health, more UFOs, heavier fire

Examples:
  asteroids play
  asteroids play --map belt --ship bomber
  asteroids play --map 1 --ship interceptor --difficulty hard
  asteroids play --config ./my-asteroids.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMap, "map", "deep", "Map id, title or index (see 'asteroids list')")
	playCmd.Flags().StringVar(&flagShip, "ship", "fighter", "Ship id, title or index (see 'asteroids list')")
	playCmd.Flags().StringVar(&flagPilot, "pilot", "", "Pilot name for high scores (default: OS user)")
	menuCmd.Flags().StringVar(&flagPilot, "pilot", "", "Pilot name for high scores (default: OS user)")
}

// resolveSettings turns flag values into session settings.
func resolveSettings() (session.Settings, error) {
	m, err := registry.ResolveMap(flagMap)
	if err != nil {
		return session.Settings{}, fmt.Errorf("%w: %w", session.ErrInvalidSettings, err)
	}
	s, err := registry.ResolveShip(flagShip)
	if err != nil {
		return session.Settings{}, fmt.Errorf("%w: %w", session.ErrInvalidSettings, err)
	}
	pilot := flagPilot
	if pilot == "" {
		pilot = defaultPilot()
	}
	return session.Settings{Map: m.Index, Ship: s.Index, Pilot: pilot}, nil
}

// signalContext is cancelled on Ctrl+C from outside the UI or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runPlay(_ *cobra.Command, _ []string) {
	settings, err := resolveSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'asteroids list' to see maps and ships.")
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	sess := newSession(gameCfg, store)
	if err := sess.Setup(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signalContext()
	runErr := tui.RunGame(ctx, sess, runtimeConfig(), logger)
	stop()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
