// Package core provides fundamental types and utilities shared by the game and
// the platform layer. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Box is an axis-aligned bounding box in world units.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewBox creates a new box with the given position and dimensions.
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

// Intersects reports whether the two boxes overlap with nonzero area.
// Boxes that only share an edge do not intersect.
func (b Box) Intersects(other Box) bool {
	return b.X < other.Right() &&
		b.Right() > other.X &&
		b.Y < other.Bottom() &&
		b.Bottom() > other.Y
}

// Shrink returns the box reduced by the given inset on each side.
func (b Box) Shrink(in Inset) Box {
	return Box{
		X: b.X + in.Left,
		Y: b.Y + in.Top,
		W: b.W - in.Left - in.Right,
		H: b.H - in.Top - in.Bottom,
	}
}

// Inset describes how far a collision box sits inside a visual box.
type Inset struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// UniformInset returns an inset of n on every side.
func UniformInset(n float64) Inset {
	return Inset{Left: n, Top: n, Right: n, Bottom: n}
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
