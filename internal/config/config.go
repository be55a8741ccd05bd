// Package config provides YAML-based game configuration loading and the
// speed progression rules for the runner.
package config

import "github.com/vovakirdan/trex-runner/internal/core"

// TrexConfig contains all configuration for the T-Rex Runner game.
// Distances are world units; rates are per 60 Hz frame.
type TrexConfig struct {
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Clouds      CloudConfig       `yaml:"clouds"`
	Ground      GroundConfig      `yaml:"ground"`
	Progression ProgressionConfig `yaml:"progression"`
	Timing      TimingConfig      `yaml:"timing"`
}

// WorldConfig defines the logical play field.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Baseline the runner stands on
}

// PlayerConfig defines the runner's size and physics.
type PlayerConfig struct {
	X            float64    `yaml:"x"`
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	Hitbox       core.Inset `yaml:"hitbox"`
	Gravity      float64    `yaml:"gravity"`
	JumpStrength float64    `yaml:"jump_strength"`
	StrideRate   float64    `yaml:"stride_rate"` // Leg animation rate per unit of speed
}

// Variant is one obstacle size from the catalog.
type Variant struct {
	Width  float64 `yaml:"w"`
	Height float64 `yaml:"h"`
}

// ObstacleConfig defines the obstacle catalog and spawn placement.
type ObstacleConfig struct {
	Variants     []Variant `yaml:"variants"`
	HitboxInset  float64   `yaml:"hitbox_inset"`
	GapMin       float64   `yaml:"gap_min"`
	GapMax       float64   `yaml:"gap_max"`
	SpawnMargin  float64   `yaml:"spawn_margin"`   // Distance past the right edge for new obstacles
	DefaultLastX float64   `yaml:"default_last_x"` // Offset past the right edge used when none exist
	SpeedMargin  float64   `yaml:"speed_margin"`   // Added to world speed
	PruneMargin  float64   `yaml:"prune_margin"`   // Distance past the left edge before removal
}

// CloudConfig defines background decoration behaviour.
type CloudConfig struct {
	InitialCount   int     `yaml:"initial_count"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Parallax       float64 `yaml:"parallax"`
	SpawnChance    float64 `yaml:"spawn_chance"` // Per-frame probability while playing
	SpawnMargin    float64 `yaml:"spawn_margin"`
	PruneMargin    float64 `yaml:"prune_margin"`
	MinY           float64 `yaml:"min_y"`
	RangeY         float64 `yaml:"range_y"`
	InitialX       float64 `yaml:"initial_x"`
	InitialSpacing float64 `yaml:"initial_spacing"`
	InitialJitter  float64 `yaml:"initial_jitter"`
}

// GroundConfig defines the scrolling ground pattern.
type GroundConfig struct {
	SegmentWidth float64 `yaml:"segment_width"`
}

// ProgressionConfig defines speed-up, scoring and spawn cadence.
type ProgressionConfig struct {
	InitialSpeed       float64 `yaml:"initial_speed"`
	SpeedIncrement     float64 `yaml:"speed_increment"`
	DistancePerPoint   float64 `yaml:"distance_per_point"`
	SpawnInterval      float64 `yaml:"spawn_interval"`
	MinSpawnInterval   float64 `yaml:"min_spawn_interval"`
	SpawnIntervalDecay float64 `yaml:"spawn_interval_decay"`
}

// TimingConfig bounds the frame delta handed to the simulation.
type TimingConfig struct {
	MaxDelta float64 `yaml:"max_delta"`
}
