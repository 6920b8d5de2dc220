package core

import (
	"fmt"
	"image"
	"image/color"
)

// FrameBuffer is a flat ARGB pixel buffer. Draw commands are given in board
// units and every unit covers a Scale x Scale block of pixels.
type FrameBuffer struct {
	Pixels []uint32
	Width  int // Width in pixels
	Height int // Height in pixels
	Scale  int
}

// NewFrameBuffer allocates a buffer for a board of the given logical size.
func NewFrameBuffer(boardW, boardH, scale int) *FrameBuffer {
	if scale < 1 {
		scale = 1
	}
	w, h := boardW*scale, boardH*scale
	return &FrameBuffer{
		Pixels: make([]uint32, w*h),
		Width:  w,
		Height: h,
		Scale:  scale,
	}
}

// Render draws every command in order. Later commands paint over earlier ones.
func (fb *FrameBuffer) Render(cmds []DrawCommand) {
	for _, cmd := range cmds {
		fb.Draw(cmd)
	}
}

// Draw rasterizes a single command.
func (fb *FrameBuffer) Draw(cmd DrawCommand) {
	switch c := cmd.(type) {
	case FillRect:
		fb.fillRect(c.Rect, c.Color)
	case Line:
		fb.drawLine(c)
	case Circle:
		fb.fillCircle(c)
	default:
		panic(fmt.Sprintf("core: unknown draw command %T", cmd))
	}
}

// At returns the pixel at (x, y) in pixel coordinates, or 0 when out of bounds.
func (fb *FrameBuffer) At(x, y int) uint32 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return 0
	}
	return fb.Pixels[y*fb.Width+x]
}

// Cell returns the color of board unit (x, y), sampled at the block's top-left pixel.
func (fb *FrameBuffer) Cell(x, y int) Color {
	return Unpack(fb.At(x*fb.Scale, y*fb.Scale))
}

// Image copies the buffer into an image for export.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := range fb.Height {
		for x := range fb.Width {
			c := Unpack(fb.Pixels[y*fb.Width+x])
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return img
}

func (fb *FrameBuffer) fillRect(r Rect, c Color) {
	p := r.Scaled(fb.Scale)
	x0, x1 := Clamp(p.X, 0, fb.Width), Clamp(p.Right(), 0, fb.Width)
	y0, y1 := Clamp(p.Y, 0, fb.Height), Clamp(p.Bottom(), 0, fb.Height)
	packed := c.Pack()
	for y := y0; y < y1; y++ {
		row := fb.Pixels[y*fb.Width : (y+1)*fb.Width]
		for x := x0; x < x1; x++ {
			row[x] = packed
		}
	}
}

// plot fills the block of board unit (x, y).
func (fb *FrameBuffer) plot(x, y int, c Color) {
	fb.fillRect(NewRect(x, y, 1, 1), c)
}

// drawLine uses Bresenham's algorithm over board units.
func (fb *FrameBuffer) drawLine(l Line) {
	x0, y0 := l.X1, l.Y1
	dx := Abs(l.X2 - x0)
	dy := -Abs(l.Y2 - y0)
	sx, sy := 1, 1
	if x0 > l.X2 {
		sx = -1
	}
	if y0 > l.Y2 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.plot(x0, y0, l.Color)
		if x0 == l.X2 && y0 == l.Y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillCircle walks the midpoint circle and fills the horizontal span
// between each pair of mirrored octant points.
func (fb *FrameBuffer) fillCircle(c Circle) {
	x, y := c.Radius, 0
	err := 0

	for x >= y {
		fb.span(c.X-x, c.X+x, c.Y+y, c.Color)
		fb.span(c.X-x, c.X+x, c.Y-y, c.Color)
		fb.span(c.X-y, c.X+y, c.Y+x, c.Color)
		fb.span(c.X-y, c.X+y, c.Y-x, c.Color)

		if err <= 0 {
			y++
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

func (fb *FrameBuffer) span(x0, x1, y int, c Color) {
	fb.fillRect(NewRect(x0, y, x1-x0+1, 1), c)
}
