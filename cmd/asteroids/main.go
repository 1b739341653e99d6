// asteroids is a terminal asteroids shooter with per-pilot high scores.
//
// Usage:
//
//	asteroids list             - List maps and ships
//	asteroids play             - Play one game right away
//	asteroids menu             - Pick map and ship interactively
//	asteroids serve            - Start SSH server for remote play
//	asteroids scores           - Show the pilot leaderboard
//	asteroids config           - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Redraw rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.asteroids/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - Shoot rocks and UFOs in your terminal",
	Long: `Asteroids is a terminal shooter: steer your ship around the arena,
blast asteroids apart, dodge UFO fire and grab power-ups.

Available commands:
  list     - Show maps and ships
  play     - Play a game directly
  menu     - Interactive map and ship picker
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  config   - Print the default game config

Examples:
  asteroids play --map nebula --ship interceptor
  asteroids menu --difficulty hard
  asteroids serve --ssh :2222
  asteroids scores --pilot ace`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(flagLogLevel, flagLogFile)
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		closeLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.asteroids/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.asteroids/asteroids.log", "Log file for local play (empty = stderr)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
