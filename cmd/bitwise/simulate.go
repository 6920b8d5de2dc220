package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bitwise-arcade/internal/platform/host"
	"github.com/vovakirdan/bitwise-arcade/internal/registry"
)

var (
	flagSteps    int
	flagInput    string
	flagSimState string
	flagPNG      string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <game>",
	Short: "Run a game headless from an input script",
	Long: `Runs a game for a fixed number of frames without a terminal UI and
prints the final state word.

The input script lists held actions per frame, separated by commas or
spaces. Use "-" for an idle frame, join actions with "+", and append "*N"
to repeat. Frames past the end of the script are idle.

With --log-level debug every collision is logged with the decoded state.

Examples:
  bitwise simulate breakout --steps 300
  bitwise simulate breakout --steps 120 --input "left*10,-*20,right+left"
  bitwise simulate breakout --steps 1000 --png final.png --scale 8`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSteps, "steps", 100, "Number of frames to simulate")
	simulateCmd.Flags().StringVar(&flagInput, "input", "", "Input script")
	simulateCmd.Flags().StringVar(&flagSimState, "state", "", "State word to start from")
	simulateCmd.Flags().StringVar(&flagPNG, "png", "", "Write the final frame to this PNG file")
}

func runSimulate(cmd *cobra.Command, args []string) {
	if err := simulate(args[0]); err != nil {
		fatal("%v", err)
	}
}

// simulate runs the headless session. Errors are returned so the deferred
// log file close runs before the process exits.
func simulate(gameID string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(settings.Log.Level, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	if flagSteps < 0 {
		return fmt.Errorf("--steps must not be negative")
	}
	script, err := host.ParseScript(flagInput)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	var gameArgs []string
	if flagSimState != "" {
		gameArgs = []string{"--state", flagSimState}
	}
	session := host.NewSession(game, settings.Display.Scale)
	state, _, err := session.Initialize(gameArgs)
	if err != nil {
		return err
	}

	logger = logger.With("run", uuid.NewString(), "game", gameID)
	logger.Info("simulation started", "steps", flagSteps, "script_frames", len(script))

	tracer, traced := game.(registry.Tracer)
	for i := range flagSteps {
		in := script.Frame(i)
		if !traced {
			state = game.Step(state, in)
			continue
		}

		var event string
		state, event = tracer.Trace(state, in)
		if event != "" {
			logger.Debug("collision", "frame", i+1, "kind", event, "state", tracer.Describe(state))
		}
	}

	logger.Info("simulation finished", "state", fmt.Sprintf("0x%016x", state))

	fmt.Printf("0x%016x\n", state)
	if traced {
		fmt.Println(tracer.Describe(state))
	}

	if flagPNG != "" {
		return writePNG(flagPNG, session, state)
	}
	return nil
}

func writePNG(path string, session *host.Session, state uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	if err := png.Encode(f, session.Render(state).Image()); err != nil {
		f.Close()
		return fmt.Errorf("cannot encode %s: %w", path, err)
	}
	return f.Close()
}
