package breakout

import (
	"strings"

	"github.com/vovakirdan/bitwise-arcade/internal/core"
)

// Palette holds the colors used by Draw.
type Palette struct {
	Background core.Color
	Paddle     core.Color
	Ball       core.Color
	Bricks     [BrickRows]core.Color // one color per row, top row first
}

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	return Palette{
		Background: core.ColorBlack,
		Paddle:     core.ColorWhite,
		Ball:       core.RGB(0xFF, 0xD7, 0x00),
		Bricks: [BrickRows]core.Color{
			core.RGB(0xE0, 0x40, 0x40),
			core.RGB(0xF0, 0x90, 0x30),
			core.RGB(0xE8, 0xD8, 0x40),
			core.RGB(0x40, 0xC0, 0x60),
			core.RGB(0x40, 0x80, 0xE0),
		},
	}
}

// Draw builds the display list for a state: background, surviving bricks,
// paddle, then ball.
func Draw(s State, p Palette) []core.DrawCommand {
	cmds := make([]core.DrawCommand, 0, 3+s.BrickCount())
	cmds = append(cmds, core.FillRect{Rect: core.NewRect(0, 0, BoardW, BoardH), Color: p.Background})

	for i := range Bricks {
		if !s.HasBrick(i) {
			continue
		}
		cmds = append(cmds, core.FillRect{Rect: BrickRect(i), Color: p.Bricks[i/BrickCols]})
	}

	cmds = append(cmds,
		core.FillRect{Rect: core.NewRect(int(s.Paddle), PaddleY, PaddleW, PaddleH), Color: p.Paddle},
		core.FillRect{Rect: core.NewRect(int(s.BallX), int(s.BallY), BallSize, BallSize), Color: p.Ball},
	)
	return cmds
}

// Glyphs used by RenderASCII.
const (
	EmptyChar  = '.'
	BrickChar  = '#'
	PaddleChar = '='
	BallChar   = 'o'
)

// RenderASCII draws the board as text, one character per board unit.
// Used by the decode command and in tests.
func RenderASCII(s State) string {
	var cells [BoardH][BoardW]rune
	for y := range cells {
		for x := range cells[y] {
			cells[y][x] = EmptyChar
		}
	}

	fill := func(r core.Rect, ch rune) {
		for y := max(r.Y, 0); y < min(r.Bottom(), BoardH); y++ {
			for x := max(r.X, 0); x < min(r.Right(), BoardW); x++ {
				cells[y][x] = ch
			}
		}
	}

	for i := range Bricks {
		if s.HasBrick(i) {
			fill(BrickRect(i), BrickChar)
		}
	}
	fill(core.NewRect(int(s.Paddle), PaddleY, PaddleW, PaddleH), PaddleChar)
	fill(core.NewRect(int(s.BallX), int(s.BallY), BallSize, BallSize), BallChar)

	var sb strings.Builder
	sb.Grow(BoardH * (BoardW + 1))
	for y := range cells {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(string(cells[y][:]))
	}
	return sb.String()
}
