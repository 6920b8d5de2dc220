// Package breakout implements a breakout game whose whole state is one
// 64-bit word: a 40-brick wall, the paddle, and the ball's position and
// direction. Each frame decodes the word, moves the paddle and ball, resolves
// at most one collision and encodes the result.
package breakout

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/vovakirdan/bitwise-arcade/internal/config"
	"github.com/vovakirdan/bitwise-arcade/internal/core"
	"github.com/vovakirdan/bitwise-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the breakout step to the registry contract.
type Game struct {
	palette      Palette
	fixedPalette bool
}

// New creates a Breakout game. The palette is loaded from config by Initialize.
func New() *Game {
	return &Game{palette: DefaultPalette()}
}

// NewWithPalette creates a Breakout game with explicit colors.
// Initialize keeps them instead of loading the configured palette.
func NewWithPalette(p Palette) *Game {
	return &Game{palette: p, fixedPalette: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Board returns the logical board size and preferred frame rate.
func (g *Game) Board() core.Board {
	return core.Board{Width: BoardW, Height: BoardH, FPS: 30}
}

// Initialize loads the palette and returns the starting word. With
// "--state <word>" in args the game resumes from that word instead.
func (g *Game) Initialize(args []string) (uint64, error) {
	if !g.fixedPalette {
		cfg, err := config.LoadBreakout(configPath)
		if err != nil {
			return 0, fmt.Errorf("breakout: %w", err)
		}
		p, err := PaletteFromConfig(cfg.Palette)
		if err != nil {
			return 0, err
		}
		g.palette = p
	}

	var stateArg string
	fs := pflag.NewFlagSet("breakout", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&stateArg, "state", "", "state word to resume from")
	if err := fs.Parse(args); err != nil {
		return 0, fmt.Errorf("breakout: %w", err)
	}

	if stateArg == "" {
		return Encode(Initial()), nil
	}
	return ParseWord(stateArg)
}

// Step advances the state word by one frame.
func (g *Game) Step(state uint64, in core.InputFrame) uint64 {
	return Step(state, in)
}

// Trace steps the word and names the collision that fired, if any.
func (g *Game) Trace(state uint64, in core.InputFrame) (uint64, string) {
	next, c := Advance(Decode(state), in)
	if c == CollisionNone {
		return Encode(next), ""
	}
	return Encode(next), c.String()
}

// Describe renders the decoded fields of a state word.
func (g *Game) Describe(state uint64) string {
	return Decode(state).String()
}

// Draw returns the display list for a state word.
func (g *Game) Draw(state uint64) []core.DrawCommand {
	return Draw(Decode(state), g.palette)
}

// ParseWord parses a state word (decimal, or hex with 0x prefix) and
// rejects words with reserved bits set.
func ParseWord(s string) (uint64, error) {
	word, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("breakout: invalid state word %q: %w", s, err)
	}
	if err := ValidateWord(word); err != nil {
		return 0, err
	}
	return word, nil
}

// PaletteFromConfig parses configured hex colors.
func PaletteFromConfig(pc config.PaletteConfig) (Palette, error) {
	var p Palette
	var err error

	if p.Background, err = core.ParseHex(pc.Background); err != nil {
		return p, fmt.Errorf("breakout: palette background: %w", err)
	}
	if p.Paddle, err = core.ParseHex(pc.Paddle); err != nil {
		return p, fmt.Errorf("breakout: palette paddle: %w", err)
	}
	if p.Ball, err = core.ParseHex(pc.Ball); err != nil {
		return p, fmt.Errorf("breakout: palette ball: %w", err)
	}
	if len(pc.Bricks) != BrickRows {
		return p, fmt.Errorf("breakout: palette needs %d brick colors, got %d", BrickRows, len(pc.Bricks))
	}
	for i, hex := range pc.Bricks {
		if p.Bricks[i], err = core.ParseHex(hex); err != nil {
			return p, fmt.Errorf("breakout: palette brick row %d: %w", i, err)
		}
	}
	return p, nil
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
