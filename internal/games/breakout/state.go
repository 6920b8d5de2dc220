package breakout

import (
	"fmt"
	"math/bits"

	"github.com/vovakirdan/bitwise-arcade/internal/bitfield"
)

// Board geometry in board units.
const (
	BoardW = 64
	BoardH = 64

	BrickRows = 5
	BrickCols = 8
	BrickW    = 8
	BrickH    = 4
	BrickTop  = 8 // y of the first brick row
	BrickBot  = BrickTop + BrickRows*BrickH
	Bricks    = BrickRows * BrickCols

	BallSize = 2

	PaddleW    = 12
	PaddleH    = 2
	PaddleY    = 59 // y of the paddle's top row
	PaddleStep = 2
	PaddleMax  = BoardW - PaddleW
)

// Starting positions. The ball rests on the paddle, centered on the board.
const (
	StartPaddle = (BoardW - PaddleW) / 2
	StartBallX  = BoardW/2 - BallSize/2
	StartBallY  = PaddleY - BallSize
	StartVel    = VelUpRight

	AllBricks uint64 = 1<<Bricks - 1
)

// Ball velocity codes. Bit 0 is the horizontal direction (1 = right),
// bit 1 the vertical direction (1 = down).
const (
	VelUpLeft uint8 = iota
	VelUpRight
	VelDownLeft
	VelDownRight
)

const (
	velRight uint8 = 1 << 0
	velDown  uint8 = 1 << 1
)

// Packed layout of the state word, least significant field first.
var (
	FieldBricks = bitfield.Field{Name: "bricks", Start: 0, Width: Bricks}
	FieldPaddle = bitfield.Field{Name: "paddle_pos", Start: 40, Width: 6}
	FieldBallX  = bitfield.Field{Name: "ball_pos_x", Start: 46, Width: 6}
	FieldBallY  = bitfield.Field{Name: "ball_pos_y", Start: 52, Width: 6}
	FieldVel    = bitfield.Field{Name: "ball_vel", Start: 58, Width: 2}

	Layout = bitfield.Layout{FieldBricks, FieldPaddle, FieldBallX, FieldBallY, FieldVel}.MustValidate()
)

// Word is an encoded game state.
type Word uint64

// String formats the word as fixed-width hex.
func (w Word) String() string {
	return fmt.Sprintf("0x%016x", uint64(w))
}

// State is the decoded view of a state word. It is a plain value: the step
// takes one and returns a new one.
type State struct {
	Bricks  uint64 // bit row*BrickCols+col set => brick present
	Paddle  uint8  // paddle left x
	BallX   uint8  // ball left x
	BallY   uint8  // ball top y
	BallVel uint8  // VelUpLeft..VelDownRight
}

// Initial returns the starting state: full wall, centered paddle, ball
// resting on the paddle moving up-right.
func Initial() State {
	return State{
		Bricks:  AllBricks,
		Paddle:  StartPaddle,
		BallX:   StartBallX,
		BallY:   StartBallY,
		BallVel: StartVel,
	}
}

// Decode unpacks a state word. Reserved bits are ignored.
func Decode(word uint64) State {
	return State{
		Bricks:  bitfield.Get[uint64](word, FieldBricks),
		Paddle:  bitfield.Get[uint8](word, FieldPaddle),
		BallX:   bitfield.Get[uint8](word, FieldBallX),
		BallY:   bitfield.Get[uint8](word, FieldBallY),
		BallVel: bitfield.Get[uint8](word, FieldVel),
	}
}

// Encode packs the state into a word, injecting fields in layout order.
func Encode(s State) uint64 {
	var word uint64
	word = bitfield.Put(word, FieldBricks, s.Bricks)
	word = bitfield.Put(word, FieldPaddle, s.Paddle)
	word = bitfield.Put(word, FieldBallX, s.BallX)
	word = bitfield.Put(word, FieldBallY, s.BallY)
	word = bitfield.Put(word, FieldVel, s.BallVel)
	return word
}

// Validate reports the first field whose value does not fit its width.
func (s State) Validate() error {
	checks := []struct {
		field bitfield.Field
		value uint64
	}{
		{FieldBricks, s.Bricks},
		{FieldPaddle, uint64(s.Paddle)},
		{FieldBallX, uint64(s.BallX)},
		{FieldBallY, uint64(s.BallY)},
		{FieldVel, uint64(s.BallVel)},
	}
	for _, c := range checks {
		if c.value > c.field.Max() {
			return fmt.Errorf("breakout: %s=%d exceeds %d bits", c.field.Name, c.value, c.field.Width)
		}
	}
	return nil
}

// ValidateWord rejects words with reserved bits set or a paddle that
// does not fit on the board.
func ValidateWord(word uint64) error {
	if extra := word & Layout.Reserved(); extra != 0 {
		return fmt.Errorf("breakout: reserved bits set in %s (%#x)", Word(word), extra)
	}
	if p := bitfield.Get[uint8](word, FieldPaddle); p > PaddleMax {
		return fmt.Errorf("breakout: paddle_pos=%d in %s exceeds %d", p, Word(word), PaddleMax)
	}
	return nil
}

// HasBrick reports whether the brick at index is present.
func (s State) HasBrick(index int) bool {
	return index >= 0 && index < Bricks && s.Bricks&(1<<uint(index)) != 0
}

// BrickCount returns the number of surviving bricks.
func (s State) BrickCount() int {
	return bits.OnesCount64(s.Bricks)
}

// Direction returns the per-step displacement for the ball's velocity code.
func (s State) Direction() (dx, dy int) {
	dx, dy = -1, -1
	if s.BallVel&velRight != 0 {
		dx = 1
	}
	if s.BallVel&velDown != 0 {
		dy = 1
	}
	return dx, dy
}

// String renders the fields for logs and the decode command.
func (s State) String() string {
	return fmt.Sprintf("bricks=%d paddle=%d ball=(%d,%d) vel=%d",
		s.BrickCount(), s.Paddle, s.BallX, s.BallY, s.BallVel)
}
