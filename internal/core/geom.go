// Package core provides the framework's pure building blocks: the bit-field
// codec for packed states, input snapshots, draw commands and the rasterizer.
// It contains no platform dependencies (no window, no terminal) so game logic
// built on it stays pure and testable.
package core

import "math"

// Rect is an axis-aligned pixel rectangle.
// The origin may lie outside the frame; the size is never negative.
type Rect struct {
	X, Y int  // Top-left corner, may be negative
	W, H uint // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y int, w, h uint) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
// It saturates at math.MaxInt for widths that overflow int.
func (r Rect) Right() int {
	return extend(r.X, r.W)
}

// Bottom returns the y-coordinate one past the bottom edge.
// It saturates at math.MaxInt for heights that overflow int.
func (r Rect) Bottom() int {
	return extend(r.Y, r.H)
}

// extend returns start+n clamped to math.MaxInt.
func extend(start int, n uint) int {
	if n > math.MaxInt {
		n = math.MaxInt
	}
	if start > 0 && int(n) > math.MaxInt-start {
		return math.MaxInt
	}
	return start + int(n)
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W == 0 || r.H == 0
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Intersect returns the overlapping part of two rectangles.
// The result is empty when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: uint(x1) - uint(x0), H: uint(y1) - uint(y0)}
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
