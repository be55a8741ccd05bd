package config

import (
	_ "embed"

	"github.com/vovakirdan/trex-runner/internal/core"
)

//go:embed defaults/trex.yaml
var defaultTrexYAML []byte

// DefaultTrexConfig returns the default T-Rex Runner configuration.
func DefaultTrexConfig() TrexConfig {
	return TrexConfig{
		World: WorldConfig{
			Width:   800,
			Height:  300,
			GroundY: 258,
		},
		Player: PlayerConfig{
			X:            50,
			Width:        44,
			Height:       47,
			Hitbox:       core.Inset{Left: 6, Top: 6, Right: 6, Bottom: 4},
			Gravity:      0.8,
			JumpStrength: 13.5,
			StrideRate:   0.25,
		},
		Obstacles: ObstacleConfig{
			Variants: []Variant{
				{Width: 18, Height: 36},
				{Width: 24, Height: 48},
				{Width: 34, Height: 42},
				{Width: 48, Height: 56},
			},
			HitboxInset:  4,
			GapMin:       140,
			GapMax:       280,
			SpawnMargin:  30,
			DefaultLastX: 60,
			SpeedMargin:  0.5,
			PruneMargin:  40,
		},
		Clouds: CloudConfig{
			InitialCount:   4,
			Width:          46,
			Height:         16,
			Parallax:       0.35,
			SpawnChance:    0.01,
			SpawnMargin:    30,
			PruneMargin:    20,
			MinY:           40,
			RangeY:         80,
			InitialX:       100,
			InitialSpacing: 180,
			InitialJitter:  120,
		},
		Ground: GroundConfig{
			SegmentWidth: 16,
		},
		Progression: ProgressionConfig{
			InitialSpeed:       6,
			SpeedIncrement:     0.0025,
			DistancePerPoint:   10,
			SpawnInterval:      75,
			MinSpawnInterval:   38,
			SpawnIntervalDecay: 2,
		},
		Timing: TimingConfig{
			MaxDelta: 3,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultTrexYAML
}
