package trex

import (
	"fmt"

	"github.com/vovakirdan/trex-runner/internal/core"
)

// Scene is a read-only description of everything that must be visible in one
// frame. Renderers draw it without reaching back into the simulation.
type Scene struct {
	Phase        Phase
	WorldWidth   float64
	WorldHeight  float64
	GroundY      float64
	GroundOffset float64
	SegmentWidth float64
	Runner       RunnerView
	Obstacles    []ObstacleView
	Clouds       []core.Box
	Score        int
	HighScore    int
}

// RunnerView is the drawable state of the runner.
type RunnerView struct {
	Box      core.Box
	Grounded bool
	LegPhase int
}

// ObstacleView is the drawable state of one obstacle.
type ObstacleView struct {
	Box     core.Box
	Variant int
}

// Overlay is the phase-specific text drawn over the world.
type Overlay struct {
	Lines []string
	Panel bool // Draw a framed panel behind the text
}

// Scene builds the presentation snapshot for the current frame.
func (s *Simulation) Scene() Scene {
	obstacles := make([]ObstacleView, len(s.obstacles))
	for i, o := range s.obstacles {
		obstacles[i] = ObstacleView{Box: o.Box(), Variant: o.Variant}
	}
	clouds := make([]core.Box, len(s.clouds))
	for i, c := range s.clouds {
		clouds[i] = c.Box()
	}

	return Scene{
		Phase:        s.phase,
		WorldWidth:   s.cfg.World.Width,
		WorldHeight:  s.cfg.World.Height,
		GroundY:      s.cfg.World.GroundY,
		GroundOffset: s.ground.Offset,
		SegmentWidth: s.ground.SegmentWidth,
		Runner: RunnerView{
			Box:      s.runner.Box(),
			Grounded: s.runner.Grounded,
			LegPhase: s.runner.LegPhase(),
		},
		Obstacles: obstacles,
		Clouds:    clouds,
		Score:     s.score,
		HighScore: s.highScore,
	}
}

// HUD returns the score line, e.g. "00042  HI 00107".
func (sc Scene) HUD() string {
	return fmt.Sprintf("%s  HI %s", FormatScore(sc.Score), FormatScore(sc.HighScore))
}

// Overlay returns the text shown for the current phase. Playing has none.
func (sc Scene) Overlay() Overlay {
	switch sc.Phase {
	case PhaseIdle:
		return Overlay{Lines: []string{"T-Rex Runner", "", "Press Space / Tap to start"}}
	case PhasePaused:
		return Overlay{Lines: []string{"Paused (press P)"}}
	case PhaseGameOver:
		return Overlay{
			Lines: []string{"Game Over", fmt.Sprintf("Score: %d", sc.Score), "Press R to restart"},
			Panel: true,
		}
	default:
		return Overlay{}
	}
}

// FormatScore renders a score as its last five digits, zero padded.
func FormatScore(score int) string {
	return fmt.Sprintf("%05d", max(score, 0)%100000)
}
