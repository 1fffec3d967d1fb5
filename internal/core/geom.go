// Package core provides the cell buffer and small numeric helpers shared by the
// terminal renderer and exporters. It does not depend on Bubble Tea.
package core

// Rect is an axis-aligned area in cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// PercentX maps a percentage of the width to a column inside r.
func (r Rect) PercentX(p float64) int {
	return r.X + percentOf(p, r.W)
}

// PercentY maps a percentage of the height to a row inside r.
func (r Rect) PercentY(p float64) int {
	return r.Y + percentOf(p, r.H)
}

// percentOf converts p% of size to a cell offset in [0, size-1].
func percentOf(p float64, size int) int {
	if size <= 0 {
		return 0
	}
	return Clamp(int(p/100*float64(size)), 0, size-1)
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
