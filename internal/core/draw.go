package core

// DrawCommand is one primitive in a frame's display list.
// The set of implementations is closed: FillRect, Line and Circle.
type DrawCommand interface {
	drawCommand()
}

// FillRect fills an axis-aligned rectangle.
type FillRect struct {
	Rect  Rect
	Color Color
}

// Line draws a one-unit-wide line between two points, inclusive.
type Line struct {
	X1, Y1 int
	X2, Y2 int
	Color  Color
}

// Circle draws a filled circle centered at (X, Y).
type Circle struct {
	X, Y   int
	Radius int
	Color  Color
}

func (FillRect) drawCommand() {}
func (Line) drawCommand()     {}
func (Circle) drawCommand()   {}
