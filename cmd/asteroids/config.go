package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game config as YAML.

Save it to ~/.asteroids/configs/asteroids.yaml (or pass --config) and edit the
values to tune the game.

Examples:
  asteroids config > ~/.asteroids/configs/asteroids.yaml
  asteroids config --check --config ./my-asteroids.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagCheckConfig bool

func init() {
	configCmd.Flags().BoolVar(&flagCheckConfig, "check", false, "Validate the effective config instead of printing defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagCheckConfig {
		cfg, err := loadGameConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config OK")
		return
	}
	os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // stdout
}
