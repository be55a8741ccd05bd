package trex

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/trex-runner/internal/config"
)

// Spawner places new obstacles off the right edge of the world.
type Spawner struct {
	rng        *rand.Rand
	cfg        config.ObstacleConfig
	worldWidth float64
	groundY    float64
}

// NewSpawner creates a spawner drawing from the given random source.
func NewSpawner(rng *rand.Rand, cfg config.ObstacleConfig, world config.WorldConfig) *Spawner {
	return &Spawner{
		rng:        rng,
		cfg:        cfg,
		worldWidth: world.Width,
		groundY:    world.GroundY,
	}
}

// Spawn creates the next obstacle. The variant is uniform over the catalog and
// the gap after the newest existing obstacle is uniform over [GapMin, GapMax).
// The obstacle never appears before it has fully cleared the right edge.
func (s *Spawner) Spawn(existing []Obstacle, worldSpeed float64) Obstacle {
	variant := s.rng.Intn(len(s.cfg.Variants))
	v := s.cfg.Variants[variant]

	lastX := s.worldWidth + s.cfg.DefaultLastX
	if len(existing) > 0 {
		lastX = existing[len(existing)-1].X
	}
	gap := s.cfg.GapMin + s.rng.Float64()*(s.cfg.GapMax-s.cfg.GapMin)
	x := math.Max(s.worldWidth+s.cfg.SpawnMargin, lastX+gap)

	return Obstacle{
		X:       x,
		Y:       s.groundY - v.Height,
		Width:   v.Width,
		Height:  v.Height,
		Variant: variant,
		Speed:   worldSpeed + s.cfg.SpeedMargin,
		inset:   s.cfg.HitboxInset,
	}
}
