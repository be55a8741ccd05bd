package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTrex loads T-Rex Runner configuration.
// Search order: customPath -> ~/.trex/configs/trex.yaml -> ./configs/trex.yaml -> embedded default
func LoadTrex(customPath string) (TrexConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TrexConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseTrex(data)
		if err != nil {
			return TrexConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("trex.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseTrex(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "trex.yaml")); err == nil {
		if cfg, err := ParseTrex(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseTrex(defaultTrexYAML)
	if err != nil {
		return DefaultTrexConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseTrex decodes a YAML document on top of the defaults and validates it.
// Keys missing from the document keep their default values.
func ParseTrex(data []byte) (TrexConfig, error) {
	cfg := DefaultTrexConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TrexConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TrexConfig{}, err
	}
	return cfg, nil
}

// MaxDeltaLimit bounds timing.max_delta. Larger steps let the runner tunnel
// through the ground or a thin obstacle in a single tick.
const MaxDeltaLimit = 3.0

// Validate reports every value that would make the game unplayable.
func (c TrexConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive")
	check(c.World.GroundY > 0 && c.World.GroundY <= c.World.Height, "ground_y must lie inside the world")

	p := c.Player
	check(p.Width > 0 && p.Height > 0, "player size must be positive")
	check(p.Height <= c.World.GroundY, "player is taller than the space above ground")
	check(p.Hitbox.Left+p.Hitbox.Right < p.Width, "player hitbox insets exceed width")
	check(p.Hitbox.Top+p.Hitbox.Bottom < p.Height, "player hitbox insets exceed height")
	check(p.Gravity > 0, "gravity must be positive")
	check(p.JumpStrength > 0, "jump_strength must be positive")
	check(p.StrideRate >= 0, "stride_rate must not be negative")

	o := c.Obstacles
	check(len(o.Variants) > 0, "obstacle catalog is empty")
	for i, v := range o.Variants {
		check(v.Width > 2*o.HitboxInset && v.Height > 2*o.HitboxInset,
			"obstacle variant %d is smaller than its hitbox inset", i)
	}
	check(o.GapMin > 0, "gap_min must be positive")
	check(o.GapMax >= o.GapMin, "gap_max (%v) is below gap_min (%v)", o.GapMax, o.GapMin)
	check(o.PruneMargin >= 0, "obstacles.prune_margin must not be negative")

	check(c.Clouds.InitialCount >= 0, "clouds.initial_count must not be negative")
	check(c.Clouds.SpawnChance >= 0 && c.Clouds.SpawnChance <= 1, "clouds.spawn_chance must be a probability")
	check(c.Clouds.Parallax >= 0, "clouds.parallax must not be negative")
	check(c.Clouds.PruneMargin >= 0, "clouds.prune_margin must not be negative")
	check(c.Ground.SegmentWidth > 0, "ground.segment_width must be positive")

	pr := c.Progression
	check(pr.InitialSpeed > 0, "initial_speed must be positive")
	check(pr.SpeedIncrement >= 0, "speed_increment must not be negative")
	check(pr.DistancePerPoint > 0, "distance_per_point must be positive")
	check(pr.MinSpawnInterval > 0, "min_spawn_interval must be positive")
	check(pr.SpawnInterval >= pr.MinSpawnInterval, "spawn_interval is below min_spawn_interval")
	check(pr.SpawnIntervalDecay >= 0, "spawn_interval_decay must not be negative")
	check(c.Timing.MaxDelta > 0 && c.Timing.MaxDelta <= MaxDeltaLimit,
		"timing.max_delta must be in (0, %v]", MaxDeltaLimit)

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".trex", "configs", filename)
}
