package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

var (
	logger  = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	logFile io.Closer
)

// setupLogging points the logger at a file so log lines never tear the
// full-screen UI. An empty path logs to stderr.
func setupLogging(level, path string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	if path == "" {
		return nil
	}
	if path[0] == '~' {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return fmt.Errorf("cannot expand home directory: %w", homeErr)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logger.SetOutput(f)
	logFile = f
	return nil
}

func closeLogging() {
	if logFile != nil {
		logFile.Close() //nolint:errcheck // Best-effort close on exit
		logFile = nil
	}
}
