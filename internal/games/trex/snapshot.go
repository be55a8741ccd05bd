package trex

// Snapshot captures the complete simulation state for determinism testing and replay.
type Snapshot struct {
	Phase         Phase
	Speed         float64
	Distance      float64
	Score         int
	HighScore     int
	SpawnTimer    float64
	SpawnInterval float64
	Runner        Runner
	GroundOffset  float64
	Obstacles     []Obstacle
	Clouds        []Cloud
}

// Snapshot returns a deep copy of the current state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Phase:         s.phase,
		Speed:         s.speed,
		Distance:      s.distance,
		Score:         s.score,
		HighScore:     s.highScore,
		SpawnTimer:    s.spawnTimer,
		SpawnInterval: s.spawnInterval,
		Runner:        s.runner,
		GroundOffset:  s.ground.Offset,
		Obstacles:     s.Obstacles(),
		Clouds:        s.Clouds(),
	}
}
