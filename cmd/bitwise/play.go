package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bitwise-arcade/internal/platform/host"
	"github.com/vovakirdan/bitwise-arcade/internal/platform/tui"
	"github.com/vovakirdan/bitwise-arcade/internal/registry"
)

// Lines below the frame: status line and short help.
const chromeLines = 2

var flagPlayState string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game in the terminal.

Each board unit is drawn as scale x scale pixels; one terminal cell shows
two stacked pixels, so a 64x64 board needs 64 columns and 32 rows at scale 1.

Controls:
  Left/A, Right/D  - Move paddle
  P/Space          - Pause
  R                - Restart from the starting word
  ?                - Toggle help
  Esc/Q/Ctrl+C     - Quit

Examples:
  bitwise play breakout
  bitwise play breakout --fps 60
  bitwise play breakout --state 0x02850a0000000003
  bitwise play breakout --log-file bitwise.log --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayState, "state", "", "State word to start from (hex with 0x prefix, or decimal)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bitwise list' to see available games.")
		os.Exit(1)
	}

	var gameArgs []string
	if flagPlayState != "" {
		gameArgs = []string{"--state", flagPlayState}
	}

	if err := playGame(gameID, gameArgs); err != nil {
		fatal("%v", err)
	}
}

// playGame runs one terminal session of a registered game.
func playGame(gameID string, gameArgs []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	// Logs would corrupt the alternate screen unless sent to a file
	logger, closer, err := newLogger(settings.Log.Level, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	cfg := runtimeConfig(settings, gameArgs)

	// Check the terminal can hold the frame
	board := game.Board()
	needW := board.Width * cfg.Scale
	needH := (board.Height*cfg.Scale+1)/2 + chromeLines
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		return fmt.Errorf("terminal is %dx%d, %s at scale %d needs %dx%d", w, h, gameID, cfg.Scale, needW, needH)
	}

	session := host.NewSession(game, cfg.Scale)
	if err := tui.Run(session, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
