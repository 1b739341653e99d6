package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagScoresPilot string
	flagScoresLimit int
	flagScoresClear string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "View the leaderboard",
	Long: `Print the best score of every pilot, highest first.

With --pilot, print that pilot's most recent runs instead.
With --clear, forget a pilot's best score and run history.

Examples:
  asteroids scores
  asteroids scores --limit 5
  asteroids scores --pilot ace
  asteroids scores --clear ace`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPilot, "pilot", "", "Show recent runs of this pilot")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Maximum rows to print")
	scoresCmd.Flags().StringVar(&flagScoresClear, "clear", "", "Delete the scores and runs of this pilot")
}

func runScores(_ *cobra.Command, _ []string) {
	store := openStore()
	if store == nil {
		os.Exit(1)
	}

	var err error
	switch {
	case flagScoresClear != "":
		err = clearPilot(os.Stdout, store, flagScoresClear)
	case flagScoresPilot != "":
		err = printRuns(os.Stdout, store, flagScoresPilot, flagScoresLimit, time.Now())
	default:
		err = printPilots(os.Stdout, store, flagScoresLimit, time.Now())
	}

	// Close store before potential exit
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func clearPilot(w io.Writer, store *storage.Store, pilot string) error {
	if err := store.ClearPilot(pilot); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared scores of %s.\n", pilot)
	return nil
}

func printRuns(w io.Writer, store *storage.Store, pilot string, limit int, now time.Time) error {
	runs, err := store.RecentRuns(pilot, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintf(w, "No runs recorded for %s.\n", pilot)
		return nil
	}
	best, err := store.HighScore(pilot)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s - best %s\n\n", pilot, humanize.Comma(int64(best)))
	fmt.Fprintf(w, "  %-10s  %-14s  %-12s  %-8s  %s\n", "Score", "Map", "Ship", "Time", "When")
	fmt.Fprintf(w, "  %-10s  %-14s  %-12s  %-8s  %s\n", "-----", "---", "----", "----", "----")
	for _, r := range runs {
		fmt.Fprintf(w, "  %-10s  %-14s  %-12s  %-8s  %s\n",
			humanize.Comma(int64(r.Score)),
			r.Map,
			r.Ship,
			r.Duration().Round(time.Second),
			humanize.RelTime(r.EndedAt, now, "ago", "from now"),
		)
	}
	return nil
}

func printPilots(w io.Writer, store *storage.Store, limit int, now time.Time) error {
	pilots, err := store.TopPilots(limit)
	if err != nil {
		return err
	}
	if len(pilots) == 0 {
		fmt.Fprintln(w, "No scores recorded yet. Play a game to set a high score!")
		return nil
	}
	fmt.Fprintf(w, "  %-5s  %-18s  %-10s  %-6s  %s\n", "Rank", "Pilot", "Best", "Games", "Last Played")
	fmt.Fprintf(w, "  %-5s  %-18s  %-10s  %-6s  %s\n", "----", "-----", "----", "-----", "-----------")
	for i, p := range pilots {
		fmt.Fprintf(w, "  %-5s  %-18s  %-10s  %-6d  %s\n",
			fmt.Sprintf("#%d", i+1),
			p.Identity,
			humanize.Comma(int64(p.HighScore)),
			p.Games,
			humanize.RelTime(p.UpdatedAt, now, "ago", "from now"),
		)
	}
	return nil
}
