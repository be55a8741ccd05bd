package trex

import (
	"math"

	"github.com/vovakirdan/trex-runner/internal/core"
)

// Cloud is a background decoration drifting slower than the ground.
type Cloud struct {
	X, Y     float64
	Width    float64
	Height   float64
	Parallax float64
}

// Update drifts the cloud left, scaled by the world speed.
func (c *Cloud) Update(dt, worldSpeed float64) {
	c.X -= c.Parallax * dt * worldSpeed
}

// Box returns the cloud's bounding box.
func (c Cloud) Box() core.Box {
	return core.NewBox(c.X, c.Y, c.Width, c.Height)
}

// Ground phases the repeating ground pattern. Offset stays in [0, SegmentWidth).
type Ground struct {
	Offset       float64
	SegmentWidth float64
}

// Update scrolls the pattern by the world speed.
func (g *Ground) Update(dt, worldSpeed float64) {
	g.Offset = math.Mod(g.Offset+worldSpeed*dt, g.SegmentWidth)
	if g.Offset < 0 {
		g.Offset += g.SegmentWidth
	}
}
