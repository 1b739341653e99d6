package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List maps and ships",
	Long:  `Shows every map and ship hull that can be chosen with --map and --ship.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	fmt.Println("Maps:")
	fmt.Println()
	fmt.Printf("  %-5s  %-8s  %-14s  %s\n", "Index", "ID", "Title", "Background")
	fmt.Printf("  %-5s  %-8s  %-14s  %s\n", "-----", "--", "-----", "----------")
	for _, m := range registry.Maps() {
		fmt.Printf("  %-5d  %-8s  %-14s  %s\n", m.Index, m.ID, m.Title, describeDecor(m.Decor))
	}

	fmt.Println()
	fmt.Println("Ships:")
	fmt.Println()
	fmt.Printf("  %-5s  %-12s  %-12s  %s\n", "Index", "ID", "Title", "Guns")
	fmt.Printf("  %-5s  %-12s  %-12s  %s\n", "-----", "--", "-----", "----")
	for _, s := range registry.Ships() {
		fmt.Printf("  %-5d  %-12s  %-12s  %d\n", s.Index, s.ID, s.Title, s.Guns)
	}

	fmt.Println()
	fmt.Println("Run 'asteroids play --map <id> --ship <id>' to play.")
}

func describeDecor(d registry.Decor) string {
	switch d.Kind {
	case registry.DecorNebula:
		return fmt.Sprintf("%d stars, %d clouds", d.Stars, d.Clouds)
	case registry.DecorBelt:
		return fmt.Sprintf("%d stars, %d drifting rocks", d.Stars, d.Clouds)
	default:
		return fmt.Sprintf("%d stars", d.Stars)
	}
}
