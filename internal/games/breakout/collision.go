package breakout

import "github.com/vovakirdan/bitwise-arcade/internal/core"

// Collision identifies which response fired during a step.
// At most one fires per step.
type Collision int

const (
	CollisionNone   Collision = iota
	CollisionLoss             // Ball left through the bottom and was reset
	CollisionWall             // Side and/or top wall bounce
	CollisionPaddle           // Vertical bounce off the paddle
	CollisionBrick            // A brick was destroyed
)

// String returns a human-readable name for the collision.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionLoss:
		return "loss"
	case CollisionWall:
		return "wall"
	case CollisionPaddle:
		return "paddle"
	case CollisionBrick:
		return "brick"
	default:
		return "unknown"
	}
}

// Motion is the ball's move for this step: where it was and where it is
// tentatively going. Coordinates are signed so that a move past the board
// edge is representable and never wraps.
type Motion struct {
	OldX, OldY int
	DX, DY     int
}

// NewMotion records the ball's pre-move position and its displacement.
func NewMotion(s State) Motion {
	dx, dy := s.Direction()
	return Motion{OldX: int(s.BallX), OldY: int(s.BallY), DX: dx, DY: dy}
}

// Next returns the tentative post-move position.
func (m Motion) Next() (x, y int) {
	return m.OldX + m.DX, m.OldY + m.DY
}

// Resolve runs the collision pipeline for one step and returns the state
// with the ball's final position and velocity. Checks run in priority
// order and the first category that matches ends the pipeline.
func Resolve(s State, m Motion) (State, Collision) {
	x, y := m.Next()

	if hitsBottom(y, m) {
		return resetBall(s), CollisionLoss
	}

	if bounceX, bounceY := hitsWall(x, y, m); bounceX || bounceY {
		if bounceX {
			s.BallVel ^= velRight
			x = m.OldX
		}
		if bounceY {
			s.BallVel ^= velDown
			y = m.OldY
		}
		return place(s, x, y), CollisionWall
	}

	if hitsPaddle(s, x, y, m) {
		s.BallVel ^= velDown
		return place(s, x, m.OldY), CollisionPaddle
	}

	if index, ok := brickHit(s, x, y, m); ok {
		s.Bricks &^= 1 << uint(index)
		if alignedWithBrick(m.OldX, index) {
			s.BallVel ^= velDown
			y = m.OldY
		} else {
			s.BallVel ^= velRight
			x = m.OldX
		}
		return place(s, x, y), CollisionBrick
	}

	return place(s, x, y), CollisionNone
}

// hitsBottom reports whether the ball's bottom edge reached the board's
// bottom edge while moving down.
func hitsBottom(y int, m Motion) bool {
	return m.DY > 0 && y+BallSize >= BoardH
}

// hitsWall reports a bounce per axis. Left and top fire when the move would
// carry the ball past 0; right fires when the right edge reaches the board width.
func hitsWall(x, y int, m Motion) (bounceX, bounceY bool) {
	bounceX = (m.DX < 0 && x < 0) || (m.DX > 0 && x+BallSize >= BoardW)
	bounceY = m.DY < 0 && y < 0
	return bounceX, bounceY
}

// hitsPaddle reports whether the ball's bottom row crossed the paddle's top
// row during this step while overlapping the paddle horizontally.
func hitsPaddle(s State, x, y int, m Motion) bool {
	if m.DY <= 0 {
		return false
	}
	wasAbove := m.OldY+BallSize-1 < PaddleY
	isBelow := y+BallSize-1 >= PaddleY
	if !wasAbove || !isBelow {
		return false
	}
	return core.SpansOverlap(x, BallSize, int(s.Paddle), PaddleW)
}

// brickHit returns the index of the first present brick under one of the
// ball's corners. Corners are sampled leading-first: the corner in the
// direction of travel on both axes, then the other corner on the leading
// horizontal edge, then the other corner on the leading vertical edge, then
// the trailing corner. Only evaluated while the ball's top edge is inside
// the brick field.
func brickHit(s State, x, y int, m Motion) (int, bool) {
	if y < BrickTop || y >= BrickBot {
		return 0, false
	}

	left, right := x, x+BallSize-1
	top, bottom := y, y+BallSize-1

	leadX, trailX := left, right
	if m.DX > 0 {
		leadX, trailX = right, left
	}
	leadY, trailY := top, bottom
	if m.DY > 0 {
		leadY, trailY = bottom, top
	}

	corners := [4][2]int{
		{leadX, leadY},
		{trailX, leadY},
		{leadX, trailY},
		{trailX, trailY},
	}
	for _, c := range corners {
		index, ok := brickAt(c[0], c[1])
		if ok && s.HasBrick(index) {
			return index, true
		}
	}
	return 0, false
}

// brickAt maps a board point to a brick index.
func brickAt(x, y int) (int, bool) {
	if x < 0 || x >= BoardW || y < BrickTop || y >= BrickBot {
		return 0, false
	}
	row := (y - BrickTop) / BrickH
	col := x / BrickW
	return row*BrickCols + col, true
}

// BrickRect returns the board rectangle occupied by the brick at index.
func BrickRect(index int) core.Rect {
	row, col := index/BrickCols, index%BrickCols
	return core.NewRect(col*BrickW, BrickTop+row*BrickH, BrickW, BrickH)
}

// alignedWithBrick reports whether the ball's pre-move horizontal extent
// overlapped the brick's columns, which makes the hit a top/bottom hit.
func alignedWithBrick(oldX, index int) bool {
	r := BrickRect(index)
	return core.SpansOverlap(oldX, BallSize, r.X, r.W)
}

// resetBall puts the ball back on the paddle's start spot moving up-right.
// Bricks and paddle are untouched.
func resetBall(s State) State {
	s.BallX = StartBallX
	s.BallY = StartBallY
	s.BallVel = StartVel
	return s
}

// place stores a resolved position. Every caller passes a position inside
// the board because the wall and loss checks ran first.
func place(s State, x, y int) State {
	s.BallX = uint8(x)
	s.BallY = uint8(y)
	return s
}
