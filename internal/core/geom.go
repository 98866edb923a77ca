// Package core provides fundamental types and utilities for the arcade
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Rect represents an axis-aligned screen-space rectangle in character cells.
// Used for drawing; simulation hitboxes use Box instead.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Inset is a 4-tuple of inward offsets that shrink a Box's collision
// rectangle without changing its drawn bounds. Each value pulls the named
// edge toward the center.
type Inset struct {
	Left, Top, Right, Bottom float64
}

// Box is an axis-aligned bounding box in pixel space, stored about its
// center, with y growing upward. The optional Inset shrinks the rectangle
// used for collision tests.
type Box struct {
	X, Y  float64 // Center position
	W, H  float64 // Full width and height
	Inset Inset
}

// NewBox creates a box centered at (x, y) with no inset.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the inset-adjusted left edge.
func (b Box) Left() float64 {
	return b.X - b.W/2 + b.Inset.Left
}

// Right returns the x-coordinate of the inset-adjusted right edge.
func (b Box) Right() float64 {
	return b.X + b.W/2 - b.Inset.Right
}

// Top returns the y-coordinate of the inset-adjusted top edge.
func (b Box) Top() float64 {
	return b.Y + b.H/2 - b.Inset.Top
}

// Bottom returns the y-coordinate of the inset-adjusted bottom edge.
func (b Box) Bottom() float64 {
	return b.Y - b.H/2 + b.Inset.Bottom
}

// Collides returns true if the inset-adjusted rectangles of b and other
// overlap. Intervals are closed on both axes: touching edges collide.
func (b Box) Collides(other Box) bool {
	if b.Right() < other.Left() || other.Right() < b.Left() {
		return false
	}
	if b.Top() < other.Bottom() || other.Top() < b.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) lies within the inset-adjusted
// rectangle. Edges are inclusive.
func (b Box) Contains(x, y float64) bool {
	return x >= b.Left() && x <= b.Right() && y >= b.Bottom() && y <= b.Top()
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
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

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
