package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bitwise-arcade/internal/core"
)

func TestFrameRendererShape(t *testing.T) {
	fb := core.NewFrameBuffer(3, 4, 1)
	fb.Render([]core.DrawCommand{
		core.FillRect{Rect: core.NewRect(0, 0, 3, 4), Color: core.ColorBlack},
		core.FillRect{Rect: core.NewRect(1, 1, 1, 1), Color: core.ColorWhite},
	})

	out := NewFrameRenderer().Render(fb)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, upperHalf); n != 3 {
			t.Errorf("line %d has %d half blocks, expected 3", i, n)
		}
	}
}

func TestFrameRendererOddHeight(t *testing.T) {
	fb := core.NewFrameBuffer(2, 3, 1)
	out := NewFrameRenderer().Render(fb)

	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("got %d line breaks, expected 1", got)
	}
}

func TestFrameRendererCachesStyles(t *testing.T) {
	fb := core.NewFrameBuffer(4, 4, 1)
	fb.Render([]core.DrawCommand{
		core.FillRect{Rect: core.NewRect(0, 0, 4, 4), Color: core.ColorBlack},
		core.FillRect{Rect: core.NewRect(0, 0, 2, 1), Color: core.ColorWhite},
	})

	r := NewFrameRenderer()
	r.Render(fb)
	r.Render(fb)

	// white over black, black over black
	if len(r.styles) != 2 {
		t.Errorf("cached %d styles, expected 2", len(r.styles))
	}
}
