package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bitarcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	// Print header
	fmt.Printf("  %-*s  %-12s  %-9s  %s\n", maxIDLen, "ID", "Title", "Size", "Bits")
	fmt.Printf("  %-*s  %-12s  %-9s  %s\n", maxIDLen, "--", "-----", "----", "----")

	// Print games
	for _, g := range games {
		size := fmt.Sprintf("%dx%d", g.Width, g.Height)
		fmt.Printf("  %-*s  %-12s  %-9s  %d/64\n", maxIDLen, g.ID, g.Title, size, g.Bits)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
