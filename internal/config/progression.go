package config

import "math"

// Progression derives speed, score and spawn cadence from the world state.
// It holds no mutable state of its own.
type Progression struct {
	cfg ProgressionConfig
}

// NewProgression creates a progression calculator.
func NewProgression(cfg ProgressionConfig) Progression {
	return Progression{cfg: cfg}
}

// InitialSpeed returns the world speed at the start of a run.
func (p Progression) InitialSpeed() float64 {
	return p.cfg.InitialSpeed
}

// InitialSpawnInterval returns the base spawn interval in frames.
func (p Progression) InitialSpawnInterval() float64 {
	return p.cfg.SpawnInterval
}

// Accelerate returns the speed after dt frames of play.
// The increment is never negative, so speed only grows.
func (p Progression) Accelerate(speed, dt float64) float64 {
	return speed + math.Max(0, p.cfg.SpeedIncrement)*math.Max(0, dt)
}

// Score converts distance travelled into points.
func (p Progression) Score(distance float64) int {
	if p.cfg.DistancePerPoint <= 0 {
		return 0
	}
	return int(math.Floor(distance / p.cfg.DistancePerPoint))
}

// SpawnEvery returns the number of frames between obstacles at the given speed.
// Spawns get more frequent as speed rises, floored at the minimum interval.
func (p Progression) SpawnEvery(interval, speed float64) float64 {
	return math.Max(p.cfg.MinSpawnInterval, interval-speed*p.cfg.SpawnIntervalDecay)
}
