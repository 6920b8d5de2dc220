package core

// RuntimeConfig contains configuration passed to the host session at startup.
type RuntimeConfig struct {
	FPS        int      // Simulation steps per second
	Scale      int      // Pixels per board unit along each axis
	HoldFrames int      // Frames a terminal key press stays held
	Args       []string // Startup arguments forwarded to the game
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FPS:        30,
		Scale:      1,
		HoldFrames: 4,
	}
}

// Board describes a game's logical grid and display parameters.
type Board struct {
	Width  int // Logical width in board units
	Height int // Logical height in board units
	FPS    int // Preferred frame rate
}
