// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// the simulation pure and testable.
package core

// Box is an axis-aligned bounding box in logical units.
// Positions are float64 because the simulation moves in sub-cell steps.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Inset returns a copy of the box shrunk by m on all four sides.
func (b Box) Inset(m float64) Box {
	return Box{X: b.X + m, Y: b.Y + m, W: b.W - 2*m, H: b.H - 2*m}
}

// Intersects reports whether two boxes overlap on both axes.
// It is the complement of being disjoint on either axis.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) is inside the box.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
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
