// bitwise runs games whose entire state fits in a single 64-bit word.
//
// Usage:
//
//	bitwise list                    - List available games
//	bitwise play <game>             - Play a game in the terminal
//	bitwise menu                    - Pick a game interactively
//	bitwise simulate <game>         - Run a game headless from an input script
//	bitwise decode <word>           - Show the fields of a breakout state word
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--fps <rate>        - Frame rate (default from config: 30)
//	--scale <n>         - Pixels per board unit (default from config: 1)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bitwise-arcade/internal/config"
	"github.com/vovakirdan/bitwise-arcade/internal/core"
	// Registers the breakout game as a side effect
	"github.com/vovakirdan/bitwise-arcade/internal/games/breakout"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagScale    int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bitwise",
	Short: "Bitwise Arcade - games packed into a single 64-bit word",
	Long: `Bitwise Arcade runs games whose entire state is one 64-bit integer.
Every frame decodes the word, advances the game and encodes it again.

Available commands:
  list      - Show all available games
  play      - Play a game in the terminal
  menu      - Interactive game picker menu
  simulate  - Run a game headless and print the final state word
  decode    - Show the fields of a breakout state word

Examples:
  bitwise list
  bitwise play breakout
  bitwise menu
  bitwise play breakout --state 0x02850a0000000003
  bitwise simulate breakout --steps 600 --input "right*20,-*100"
  bitwise decode 0x0797daffffffffff`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagScale, "scale", 0, "Pixels per board unit (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(decodeCmd)
}

// loadSettings loads the config file and applies command-line overrides.
func loadSettings() (config.BreakoutConfig, error) {
	breakout.SetConfigPath(flagConfig)

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagScale > 0 {
		cfg.Display.Scale = flagScale
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// runtimeConfig builds the host settings from the loaded config.
func runtimeConfig(cfg config.BreakoutConfig, args []string) core.RuntimeConfig {
	return core.RuntimeConfig{
		FPS:        cfg.Display.FPS,
		Scale:      cfg.Display.Scale,
		HoldFrames: cfg.Input.HoldFrames,
		Args:       args,
	}
}

// newLogger creates the CLI logger. With --log-file set, output goes to
// that file; otherwise to fallback.
func newLogger(level string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	w, closer := fallback, io.Closer(nopCloser{})
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bitwise",
		Level:           lvl,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fatal prints an error and exits, as every command does on failure.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
