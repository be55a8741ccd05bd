package trex

import (
	"math"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
)

// Runner is the player character. Only Y moves; X stays fixed on screen.
type Runner struct {
	X, Y      float64
	VelocityY float64
	Width     float64
	Height    float64
	Grounded  bool
	Stride    float64 // Leg animation phase counter

	groundY float64
	cfg     config.PlayerConfig
}

// NewRunner creates a runner standing on the ground.
func NewRunner(cfg config.PlayerConfig, groundY float64) Runner {
	r := Runner{
		Width:   cfg.Width,
		Height:  cfg.Height,
		groundY: groundY,
		cfg:     cfg,
	}
	r.Reset()
	return r
}

// Reset puts the runner back at its start position, standing still.
func (r *Runner) Reset() {
	r.X = r.cfg.X
	r.Y = r.groundY - r.Height
	r.VelocityY = 0
	r.Grounded = true
	r.Stride = 0
}

// Jump launches the runner if it is on the ground. There is no double jump.
func (r *Runner) Jump() {
	if !r.Grounded {
		return
	}
	r.VelocityY = -r.cfg.JumpStrength
	r.Grounded = false
}

// Update integrates gravity over dt frames (semi-implicit Euler) and lands
// the runner on the baseline.
func (r *Runner) Update(dt float64) {
	r.VelocityY += r.cfg.Gravity * dt
	r.Y += r.VelocityY * dt

	if r.Y+r.Height >= r.groundY {
		r.Y = r.groundY - r.Height
		r.VelocityY = 0
		r.Grounded = true
	}
}

// animate advances the leg cycle while running on the ground.
func (r *Runner) animate(dt, speed float64) {
	if r.Grounded {
		r.Stride += dt * r.cfg.StrideRate * speed
	}
}

// LegPhase returns 0 or 1 for the alternating running pose.
func (r Runner) LegPhase() int {
	return int(math.Floor(r.Stride)) % 2
}

// Box returns the visual bounding box.
func (r Runner) Box() core.Box {
	return core.NewBox(r.X, r.Y, r.Width, r.Height)
}

// Bounds returns the collision box, inset from the visual box.
func (r Runner) Bounds() core.Box {
	return r.Box().Shrink(r.cfg.Hitbox)
}
