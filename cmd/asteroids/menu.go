package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a map and a ship, then play",
	Long: `Start in interactive menu mode.

Use arrow keys to move between rows and to change the map or ship,
Enter to launch. After a game ends, Esc returns to the menu.

Controls:
  Up/Down      - Navigate menu
  Left/Right   - Change map or ship
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  asteroids menu
  asteroids menu --pilot ace --difficulty easy
  asteroids menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pilot := flagPilot
	if pilot == "" {
		pilot = defaultPilot()
	}

	store := openStore()
	sess := newSession(gameCfg, store)

	ctx, stop := signalContext()
	runErr := tui.RunApp(ctx, sess, frontStore(store), runtimeConfig(), pilot, logger)
	stop()

	if store != nil {
		store.Close()
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
