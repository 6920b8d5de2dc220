package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Display: DisplayConfig{
			FPS:   30,
			Scale: 1,
		},
		Input: InputConfig{
			HoldFrames: 4,
		},
		Palette: PaletteConfig{
			Background: "#000000",
			Paddle:     "#ffffff",
			Ball:       "#ffd700",
			Bricks:     []string{"#e04040", "#f09030", "#e8d840", "#40c060", "#4080e0"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
