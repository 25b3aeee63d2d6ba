// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in screen cells.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned bounding box in world units.
// X and Y name the centre, matching how sprites are positioned in the world.
type Box struct {
	X, Y float64
	W, H float64
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.X - b.W/2 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W/2 }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Y - b.H/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H/2 }

// Overlap returns the penetration depth along each axis.
// Both values are positive only when the boxes intersect.
func (b Box) Overlap(other Box) (dx, dy float64) {
	dx = min(b.Right(), other.Right()) - max(b.Left(), other.Left())
	dy = min(b.Bottom(), other.Bottom()) - max(b.Top(), other.Top())
	return dx, dy
}

// Intersects reports whether two boxes overlap with non-zero area.
func (b Box) Intersects(other Box) bool {
	dx, dy := b.Overlap(other)
	return dx > 0 && dy > 0
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

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
