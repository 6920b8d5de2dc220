package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bitwise-arcade/internal/core"
)

// upperHalf draws the top pixel in the foreground color and the bottom
// pixel in the background color.
const upperHalf = "▀"

// cellColors is the pixel pair shown by one terminal cell.
type cellColors struct {
	top, bottom uint32
}

// FrameRenderer converts frame buffers to styled terminal text, one
// column per pixel and two pixel rows per line.
type FrameRenderer struct {
	styles map[cellColors]lipgloss.Style
}

// NewFrameRenderer creates a renderer with an empty style cache.
func NewFrameRenderer() *FrameRenderer {
	return &FrameRenderer{styles: make(map[cellColors]lipgloss.Style)}
}

// Render converts a frame buffer to a string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *FrameRenderer) Render(fb *core.FrameBuffer) string {
	var sb strings.Builder
	lines := (fb.Height + 1) / 2
	sb.Grow(fb.Width*lines*4 + lines)

	for line := range lines {
		if line > 0 {
			sb.WriteRune('\n')
		}
		y := line * 2

		x := 0
		for x < fb.Width {
			start := r.cell(fb, x, y)
			n := 0
			for x < fb.Width && r.cell(fb, x, y) == start {
				n++
				x++
			}
			sb.WriteString(r.style(start).Render(strings.Repeat(upperHalf, n)))
		}
	}
	return sb.String()
}

func (r *FrameRenderer) cell(fb *core.FrameBuffer, x, y int) cellColors {
	return cellColors{top: fb.At(x, y), bottom: fb.At(x, y+1)}
}

func (r *FrameRenderer) style(c cellColors) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(core.Unpack(c.top).Hex())).
		Background(lipgloss.Color(core.Unpack(c.bottom).Hex()))
	r.styles[c] = s
	return s
}
