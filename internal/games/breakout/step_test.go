package breakout

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/bitwise-arcade/internal/core"
)

func TestStepFromInitialWord(t *testing.T) {
	word := Step(Encode(Initial()), core.NewInputFrame())
	s := Decode(word)

	require.Equal(t, uint8(32), s.BallX)
	require.Equal(t, uint8(56), s.BallY)
	require.Equal(t, VelUpRight, s.BallVel)
	require.Equal(t, uint8(26), s.Paddle)
	require.Equal(t, AllBricks, s.Bricks)
}

func TestMovePaddle(t *testing.T) {
	tests := []struct {
		name    string
		paddle  uint8
		actions []core.Action
		want    uint8
	}{
		{"no input", 26, nil, 26},
		{"left", 26, []core.Action{core.ActionLeft}, 24},
		{"right", 26, []core.Action{core.ActionRight}, 28},
		{"both cancel", 26, []core.Action{core.ActionLeft, core.ActionRight}, 26},
		{"left at wall", 0, []core.Action{core.ActionLeft}, 0},
		{"left clamps", 1, []core.Action{core.ActionLeft}, 0},
		{"right at wall", 52, []core.Action{core.ActionRight}, 52},
		{"right clamps", 51, []core.Action{core.ActionRight}, 52},
		{"pause is not movement", 26, []core.Action{core.ActionPause}, 26},
		{"out of range pulled back without input", 60, nil, 52},
		{"out of range pulled back moving right", 63, []core.Action{core.ActionRight}, 52},
		{"out of range moving left", 60, []core.Action{core.ActionLeft}, 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Initial()
			s.Paddle = tt.paddle
			got := movePaddle(s, core.NewInputFrame(tt.actions...))
			if got.Paddle != tt.want {
				t.Errorf("paddle = %d, expected %d", got.Paddle, tt.want)
			}
		})
	}
}

func TestStepKeepsPaddleOnBoard(t *testing.T) {
	s := Initial()
	s.Paddle = 60

	next := Decode(Step(Encode(s), core.NewInputFrame()))
	require.LessOrEqual(t, int(next.Paddle), PaddleMax)
	require.NoError(t, ValidateWord(Encode(next)))
}

func TestAdvanceMovesPaddleBeforeBall(t *testing.T) {
	// Paddle at 18 misses a ball landing at x=16; one step left puts it under.
	s := State{Paddle: 18, BallX: 17, BallY: 57, BallVel: VelDownLeft}

	missed, c := Advance(s, core.NewInputFrame())
	require.Equal(t, CollisionNone, c)
	require.Equal(t, VelDownLeft, missed.BallVel)

	caught, c := Advance(s, core.NewInputFrame(core.ActionLeft))
	require.Equal(t, CollisionPaddle, c)
	require.Equal(t, uint8(16), caught.Paddle)
	require.Equal(t, VelUpLeft, caught.BallVel)
}

func TestStepMatchesAdvance(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 42))
	for range 2000 {
		s := randomState(rng)
		in := randomInput(rng)
		next, _ := Advance(s, in)
		require.Equal(t, Encode(next), Step(Encode(s), in))
	}
}

func TestStepProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 99))

	for run := range 20 {
		s := Initial()
		if run > 0 {
			s = randomState(rng)
			s.Paddle = uint8(rng.IntN(PaddleMax + 1))
		}

		for i := range 5000 {
			in := randomInput(rng)
			next, c := Advance(s, in)

			require.NoError(t, next.Validate(), "run %d step %d", run, i)
			require.NoError(t, ValidateWord(Encode(next)))
			require.LessOrEqual(t, int(next.Paddle)+PaddleW, BoardW, "paddle bound")
			require.LessOrEqual(t, next.BallVel, VelDownRight, "velocity domain")

			// Bricks only ever disappear, one at a time, and only on a brick hit
			require.Zero(t, next.Bricks&^s.Bricks, "brick reappeared")
			lost := s.BrickCount() - next.BrickCount()
			if c == CollisionBrick {
				require.Equal(t, 1, lost)
			} else {
				require.Zero(t, lost)
			}

			if c == CollisionLoss {
				require.Equal(t, uint8(StartBallX), next.BallX)
				require.Equal(t, uint8(StartBallY), next.BallY)
				require.Equal(t, StartVel, next.BallVel)
			}

			s = next
		}
	}
}

func TestTrackingPaddleBreaksBricks(t *testing.T) {
	// A paddle that follows the ball keeps it in play long enough to break bricks
	s := Initial()
	for range 200000 {
		if s.Bricks == 0 {
			break
		}
		in := core.NewInputFrame()
		center := int(s.Paddle) + PaddleW/2
		switch ball := int(s.BallX) + BallSize/2; {
		case ball < center-1:
			in.Set(core.ActionLeft)
		case ball > center+1:
			in.Set(core.ActionRight)
		}
		s, _ = Advance(s, in)
	}
	require.Less(t, s.BrickCount(), Bricks, "paddle-tracking play should destroy bricks")
}

func randomInput(rng *rand.Rand) core.InputFrame {
	in := core.NewInputFrame()
	if rng.IntN(3) == 0 {
		in.Set(core.ActionLeft)
	}
	if rng.IntN(3) == 0 {
		in.Set(core.ActionRight)
	}
	return in
}
