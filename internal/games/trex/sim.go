// Package trex implements a Chrome Dino-style endless runner.
// The simulation is pure: it advances by a frame delta, reacts to intents,
// and exposes a Scene for whatever renderer sits on top.
package trex

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
)

// FrameDuration is the reference frame; a delta of 1.0 equals one frame.
const FrameDuration = time.Second / 60

// ClampDelta converts wall-clock time into frames, bounded to [0, maxDelta]
// so a long stall cannot tunnel the runner through the ground or an obstacle.
func ClampDelta(elapsed time.Duration, maxDelta float64) float64 {
	return core.ClampF(float64(elapsed)/float64(FrameDuration), 0, maxDelta)
}

// Simulation owns every entity and the phase state machine.
// It is not safe for concurrent use; intents and updates must be serialised.
type Simulation struct {
	cfg         config.TrexConfig
	progression config.Progression
	rng         *rand.Rand
	spawner     *Spawner
	store       HighScoreStore

	phase         Phase
	speed         float64 // World speed in units per frame
	distance      float64
	score         int
	highScore     int
	spawnTimer    float64
	spawnInterval float64

	runner    Runner
	ground    Ground
	obstacles []Obstacle // Oldest first; spawn order equals x order
	clouds    []Cloud
}

// New creates a simulation in the Idle phase. A nil store keeps the high
// score in memory only.
func New(cfg config.TrexConfig, seed int64, store HighScoreStore) *Simulation {
	if store == nil {
		store = NewMemoryStore(0)
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Simulation{
		cfg:         cfg,
		progression: config.NewProgression(cfg.Progression),
		rng:         rng,
		spawner:     NewSpawner(rng, cfg.Obstacles, cfg.World),
		store:       store,
		phase:       PhaseIdle,
		highScore:   max(store.ReadHighScore(), 0),
		runner:      NewRunner(cfg.Player, cfg.World.GroundY),
		ground:      Ground{SegmentWidth: cfg.Ground.SegmentWidth},
		obstacles:   make([]Obstacle, 0, 8),
	}
	s.resetWorld()
	return s
}

// Reset starts a fresh run. The high score is kept.
func (s *Simulation) Reset() {
	s.resetWorld()
	s.phase = PhasePlaying
}

func (s *Simulation) resetWorld() {
	s.speed = s.progression.InitialSpeed()
	s.distance = 0
	s.score = 0
	s.runner.Reset()
	s.obstacles = s.obstacles[:0]
	s.clouds = s.clouds[:0]
	s.spawnTimer = 0
	s.spawnInterval = s.progression.InitialSpawnInterval()
	s.seedClouds()
}

// seedClouds scatters the initial decorations across the sky.
func (s *Simulation) seedClouds() {
	c := s.cfg.Clouds
	for i := 0; i < c.InitialCount; i++ {
		x := c.InitialX + float64(i)*c.InitialSpacing + s.rng.Float64()*c.InitialJitter
		y := c.MinY + s.rng.Float64()*c.RangeY
		s.clouds = append(s.clouds, s.newCloud(x, y))
	}
}

func (s *Simulation) newCloud(x, y float64) Cloud {
	c := s.cfg.Clouds
	return Cloud{X: x, Y: y, Width: c.Width, Height: c.Height, Parallax: c.Parallax}
}

// HandleIntent applies a player intent. Intents that make no sense in the
// current phase are ignored.
func (s *Simulation) HandleIntent(in Intent) {
	switch in {
	case IntentJump:
		switch s.phase {
		case PhaseIdle, PhaseGameOver:
			s.Reset()
		case PhasePlaying:
			s.runner.Jump()
		}
	case IntentTogglePause:
		switch s.phase {
		case PhasePlaying:
			s.phase = PhasePaused
		case PhasePaused:
			s.phase = PhasePlaying
		}
	case IntentRestart:
		if s.phase == PhaseIdle || s.phase == PhaseGameOver {
			s.Reset()
		}
	}
}

// Update advances the world by dt frames. Callers clamp dt with ClampDelta.
func (s *Simulation) Update(dt float64) {
	switch s.phase {
	case PhasePaused:
		return
	case PhaseIdle, PhaseGameOver:
		s.ground.Update(dt, s.speed)
		s.updateClouds(dt)
		return
	}

	s.speed = s.progression.Accelerate(s.speed, dt)
	s.distance += s.speed * dt
	s.score = s.progression.Score(s.distance)
	if s.score > s.highScore {
		s.highScore = s.score
		s.store.WriteHighScore(s.highScore)
	}

	s.ground.Update(dt, s.speed)

	if s.rng.Float64() < s.cfg.Clouds.SpawnChance*dt {
		y := s.cfg.Clouds.MinY + s.rng.Float64()*s.cfg.Clouds.RangeY
		s.clouds = append(s.clouds, s.newCloud(s.cfg.World.Width+s.cfg.Clouds.SpawnMargin, y))
	}
	s.updateClouds(dt)

	s.runner.Update(dt)
	s.runner.animate(dt, s.speed)

	s.spawnTimer += dt
	if s.spawnTimer >= s.progression.SpawnEvery(s.spawnInterval, s.speed) {
		s.spawnTimer = 0
		s.obstacles = append(s.obstacles, s.spawner.Spawn(s.obstacles, s.speed))
	}

	for i := range s.obstacles {
		s.obstacles[i].Speed = s.speed + s.cfg.Obstacles.SpeedMargin
		s.obstacles[i].Update(dt)
	}

	// Obstacles never overtake each other, so only the head can be off-screen.
	for len(s.obstacles) > 0 && s.obstacles[0].Right() < -s.cfg.Obstacles.PruneMargin {
		s.obstacles = s.obstacles[1:]
	}

	bounds := s.runner.Bounds()
	for _, o := range s.obstacles {
		if bounds.Intersects(o.Bounds()) {
			s.phase = PhaseGameOver
			return
		}
	}
}

// updateClouds drifts every cloud and drops those fully off-screen.
func (s *Simulation) updateClouds(dt float64) {
	kept := s.clouds[:0]
	for _, c := range s.clouds {
		c.Update(dt, s.speed)
		if c.X+c.Width >= -s.cfg.Clouds.PruneMargin {
			kept = append(kept, c)
		}
	}
	s.clouds = kept
}

// Phase returns the current phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Score returns the score of the current run.
func (s *Simulation) Score() int {
	return s.score
}

// HighScore returns the best score seen, including earlier sessions.
func (s *Simulation) HighScore() int {
	return s.highScore
}

// Speed returns the current world speed.
func (s *Simulation) Speed() float64 {
	return s.speed
}

// Distance returns the distance covered in the current run.
func (s *Simulation) Distance() float64 {
	return s.distance
}

// Runner returns a copy of the player character.
func (s *Simulation) Runner() Runner {
	return s.runner
}

// Obstacles returns a copy of the live obstacles, oldest first.
func (s *Simulation) Obstacles() []Obstacle {
	return append([]Obstacle(nil), s.obstacles...)
}

// Clouds returns a copy of the live decorations.
func (s *Simulation) Clouds() []Cloud {
	return append([]Cloud(nil), s.clouds...)
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.TrexConfig {
	return s.cfg
}
