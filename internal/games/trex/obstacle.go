package trex

import "github.com/vovakirdan/trex-runner/internal/core"

// Obstacle is a ground obstacle the runner must jump over.
type Obstacle struct {
	X       float64 // Left edge
	Y       float64 // Top edge, fixed so the obstacle stands on the ground
	Width   float64
	Height  float64
	Variant int     // Index into the obstacle catalog
	Speed   float64 // Assigned by the simulation every tick

	inset float64
}

// Update moves the obstacle left by its current speed.
func (o *Obstacle) Update(dt float64) {
	o.X -= o.Speed * dt
}

// Box returns the visual bounding box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// Bounds returns the collision box, inset from the visual box.
func (o Obstacle) Bounds() core.Box {
	return o.Box().Shrink(core.UniformInset(o.inset))
}

// Right returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}
