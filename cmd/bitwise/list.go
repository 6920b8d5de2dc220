package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bitwise-arcade/internal/registry"
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
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", 10, "Title", "Board")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", 10, "-----", "-----")

	// Print games
	for _, g := range games {
		game, err := registry.Create(g.ID)
		if err != nil {
			continue
		}
		b := game.Board()
		fmt.Printf("  %-*s  %-*s  %dx%d @ %d fps\n", maxIDLen, g.ID, 10, g.Title, b.Width, b.Height, b.FPS)
	}

	fmt.Println()
	fmt.Println("Run 'bitwise play <id>' to play a game.")
}
