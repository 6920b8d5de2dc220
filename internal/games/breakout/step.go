package breakout

import "github.com/vovakirdan/bitwise-arcade/internal/core"

// Advance runs one frame on a decoded state: paddle input, ball move, then
// the collision pipeline. It returns the next state and the collision that
// fired, if any.
func Advance(s State, in core.InputFrame) (State, Collision) {
	s = movePaddle(s, in)
	return Resolve(s, NewMotion(s))
}

// Step is Advance over encoded words.
func Step(word uint64, in core.InputFrame) uint64 {
	next, _ := Advance(Decode(word), in)
	return Encode(next)
}

// movePaddle applies held left/right input. Each direction is checked on
// its own and the paddle is clamped to the board every step, with or
// without input.
func movePaddle(s State, in core.InputFrame) State {
	pos := int(s.Paddle)
	if in.Has(core.ActionLeft) && pos > 0 {
		pos = max(pos-PaddleStep, 0)
	}
	if in.Has(core.ActionRight) && pos+PaddleW < BoardW {
		pos = min(pos+PaddleStep, PaddleMax)
	}
	s.Paddle = uint8(core.Clamp(pos, 0, PaddleMax))
	return s
}
