// Package core provides the fundamental types shared by bitwise games and the
// host platform: geometry, input frames, colors, draw commands and the pixel
// rasterizer. It has no dependency on the terminal UI so game logic stays pure
// and testable.
package core

// Rect represents an axis-aligned box on an integer grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	return SpansOverlap(r.X, r.W, other.X, other.W) && SpansOverlap(r.Y, r.H, other.Y, other.H)
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Scaled returns the rectangle with every coordinate multiplied by n.
func (r Rect) Scaled(n int) Rect {
	return Rect{X: r.X * n, Y: r.Y * n, W: r.W * n, H: r.H * n}
}

// SpansOverlap reports whether the half-open intervals [a, a+aLen) and
// [b, b+bLen) share at least one unit.
func SpansOverlap(a, aLen, b, bLen int) bool {
	return a < b+bLen && b < a+aLen
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
