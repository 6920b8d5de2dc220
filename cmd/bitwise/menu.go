package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bitwise-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q/Esc        - Quit

Examples:
  bitwise menu
  bitwise menu --fps 60`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Menu loop
	for {
		gameID, err := tui.RunMenu()
		if err != nil {
			fatal("%v", err)
		}
		if gameID == "" {
			return
		}

		if err := playGame(gameID, nil); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Loop back to menu
	}
}
