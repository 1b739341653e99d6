// Package core provides fundamental types and utilities shared by the
// simulation and the terminal front end. It has no external dependencies
// (especially no Bubble Tea) so game logic stays pure and testable.
package core

// Rect is an integer axis-aligned box in screen cells.
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

// RectF is an axis-aligned bounding box in arena units.
// Position is real-valued, extent is whole units.
type RectF struct {
	X, Y float64
	W, H int
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + float64(r.W)
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + float64(r.H)
}

// Intersects reports whether two boxes overlap with non-zero area.
// Intervals are half-open, so boxes that only touch do not intersect.
func (r RectF) Intersects(other RectF) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Center returns the center point of the box.
func (r RectF) Center() (float64, float64) {
	return r.X + float64(r.W)/2, r.Y + float64(r.H)/2
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
