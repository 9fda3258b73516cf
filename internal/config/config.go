// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// TunnelConfig contains all configuration for Gremm Tunnel.
type TunnelConfig struct {
	// Assets is a directory holding maps and layouts. Empty selects the
	// bundled assets.
	Assets   string `yaml:"assets"`
	Layout   string `yaml:"layout"`    // layout path relative to Assets
	MaxDepth int    `yaml:"max_depth"` // reflection depth cap per move
	Intro    string `yaml:"intro"`
}

// FishingConfig contains all configuration for Fishing.
type FishingConfig struct {
	Board      FishingBoard     `yaml:"board"`
	Timing     FishingTiming    `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FishingBoard defines the pond size.
type FishingBoard struct {
	Size int `yaml:"size"`
}

// FishingTiming defines how long a fish takes to bite, in seconds.
// The wait is drawn as abs(gauss(mean, std_dev)).
type FishingTiming struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"std_dev"`
}

// FootstepsConfig contains all configuration for Footsteps.
type FootstepsConfig struct {
	BoardSize      int `yaml:"board_size"` // odd number of cells
	StartingEnergy int `yaml:"starting_energy"`
}

// TigerConfig contains all configuration for Tiger.
type TigerConfig struct {
	Lambs int `yaml:"lambs"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
