// Package config provides YAML-based configuration loading for the
// bitwise arcade host and its games.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for the Breakout host session.
// None of it is part of the game state word.
type BreakoutConfig struct {
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Palette PaletteConfig `yaml:"palette"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig defines frame pacing and pixel scaling.
type DisplayConfig struct {
	FPS   int `yaml:"fps"`   // Frame rate ceiling
	Scale int `yaml:"scale"` // Pixels per board unit
}

// InputConfig defines how terminal key presses become held inputs.
type InputConfig struct {
	HoldFrames int `yaml:"hold_frames"` // Frames a key press stays held
}

// PaletteConfig defines colors as "#rrggbb" strings.
type PaletteConfig struct {
	Background string   `yaml:"background"`
	Paddle     string   `yaml:"paddle"`
	Ball       string   `yaml:"ball"`
	Bricks     []string `yaml:"bricks"` // One per brick row, top row first
}

// LogConfig defines logging behavior.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// BrickRows is the number of brick colors a palette must define.
const BrickRows = 5

// Validate checks that the configuration is usable.
func (c BreakoutConfig) Validate() error {
	var errs []error
	if c.Display.FPS <= 0 {
		errs = append(errs, fmt.Errorf("display.fps must be positive, got %d", c.Display.FPS))
	}
	if c.Display.Scale <= 0 {
		errs = append(errs, fmt.Errorf("display.scale must be positive, got %d", c.Display.Scale))
	}
	if c.Input.HoldFrames < 1 {
		errs = append(errs, fmt.Errorf("input.hold_frames must be at least 1, got %d", c.Input.HoldFrames))
	}
	if len(c.Palette.Bricks) != BrickRows {
		errs = append(errs, fmt.Errorf("palette.bricks must have %d colors, got %d", BrickRows, len(c.Palette.Bricks)))
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
