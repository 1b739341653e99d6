package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server that lets users play asteroids remotely.

Each SSH connection gets its own game session with the full menu system.
The SSH user name is used as the pilot name for high scores.

The host key is auto-generated at ~/.asteroids/host_key if not specified.

Examples:
  asteroids serve
  asteroids serve --ssh :2222
  asteroids serve --ssh 0.0.0.0:23234 --host-key /path/to/key
  asteroids serve --difficulty hard

Connect with:
  ssh -p 23234 -t localhost`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle connection timeout")
}

func runServe(cmd *cobra.Command, _ []string) {
	// The server has no full-screen UI of its own, so log to the console
	// unless a file was asked for explicitly.
	if !cmd.Flags().Changed("log-file") {
		closeLogging()
		logger.SetOutput(os.Stderr)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = flagIdleTimeout
	cfg.FPS = flagFPS
	cfg.Game = gameCfg

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting asteroids SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh -p %s -t localhost\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portOf extracts the port from an address like ":23234" or "host:23234".
func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}
