// Package host drives a registered game one frame at a time and rasterizes
// each resulting state. It owns no timing; the terminal loop and the
// headless simulate command both sit on top of it.
package host

import (
	"fmt"

	"github.com/vovakirdan/bitwise-arcade/internal/core"
	"github.com/vovakirdan/bitwise-arcade/internal/registry"
)

// Session pairs a game with the frame buffer its states are drawn into.
// A session is not safe for concurrent use.
type Session struct {
	game  registry.Game
	board core.Board
	fb    *core.FrameBuffer
}

// NewSession creates a session that renders at scale pixels per board unit.
func NewSession(game registry.Game, scale int) *Session {
	board := game.Board()
	return &Session{
		game:  game,
		board: board,
		fb:    core.NewFrameBuffer(board.Width, board.Height, scale),
	}
}

// Game returns the game driven by this session.
func (s *Session) Game() registry.Game {
	return s.game
}

// Board returns the game's board description.
func (s *Session) Board() core.Board {
	return s.board
}

// Initialize asks the game for its starting word and renders it.
func (s *Session) Initialize(args []string) (uint64, *core.FrameBuffer, error) {
	state, err := s.game.Initialize(args)
	if err != nil {
		return 0, nil, fmt.Errorf("host: initialize %s: %w", s.game.ID(), err)
	}
	return state, s.Render(state), nil
}

// Step advances the state by one frame with the given held inputs and
// renders the result. The returned buffer is reused by the next call.
func (s *Session) Step(state uint64, held core.InputFrame) (uint64, *core.FrameBuffer) {
	next := s.game.Step(state, held)
	return next, s.Render(next)
}

// Render draws a state into the session's frame buffer.
func (s *Session) Render(state uint64) *core.FrameBuffer {
	s.fb.Render(s.game.Draw(state))
	return s.fb
}
