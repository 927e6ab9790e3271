// Package core provides the value types shared by the simulation modules,
// the engine and the terminal host: geometry, the cell screen, theme tokens
// and per-frame input commands. It has no dependency on Bubble Tea so game
// logic stays pure and testable.
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

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
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

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Box is an axis-aligned box in logical world units. Continuous games
// simulate in these units and only the viewport converts them to cells.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects reports strict overlap. Touching edges do not collide.
func (b Box) Intersects(other Box) bool {
	return b.X < other.Right() && other.X < b.Right() &&
		b.Y < other.Bottom() && other.Y < b.Bottom()
}

// SizeF is a logical playfield size.
type SizeF struct {
	W, H float64
}

// Arena is the logical world shared by the continuous games.
var Arena = SizeF{W: 400, H: 400}

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
