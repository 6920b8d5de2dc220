// Package registry provides a global registry for bitwise game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bitwise-arcade/internal/core"
)

// Game is the contract every bitwise game implements. The whole game state
// lives in a single uint64; the game itself holds only immutable settings.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "breakout").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Board returns the logical grid size and preferred frame rate.
	Board() core.Board

	// Initialize returns the starting state word.
	// args are the startup arguments forwarded by the host.
	Initialize(args []string) (uint64, error)

	// Step advances the state by exactly one frame given the held inputs.
	Step(state uint64, in core.InputFrame) uint64

	// Draw returns the display list for a state, in painter's order.
	Draw(state uint64) []core.DrawCommand
}

// Tracer is implemented by games that can report what happened during a
// step. Headless runs use it for debug logging.
type Tracer interface {
	// Trace steps like Game.Step and also returns a short event name,
	// or "" when nothing notable happened.
	Trace(state uint64, in core.InputFrame) (uint64, string)

	// Describe renders a state word's fields for logs.
	Describe(state uint64) string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
