package config

import (
	_ "embed"
)

//go:embed defaults/tunnel.yaml
var defaultTunnelYAML []byte

//go:embed defaults/fishing.yaml
var defaultFishingYAML []byte

//go:embed defaults/footsteps.yaml
var defaultFootstepsYAML []byte

//go:embed defaults/tiger.yaml
var defaultTigerYAML []byte

// DefaultTunnelConfig returns the default Gremm Tunnel configuration.
func DefaultTunnelConfig() TunnelConfig {
	return TunnelConfig{
		Layout:   "gbd1/gbd1.layout",
		MaxDepth: 20,
		Intro:    "Arrow keys to move, Spacebar to (re)start",
	}
}

// DefaultFishingConfig returns the default Fishing configuration.
func DefaultFishingConfig() FishingConfig {
	return FishingConfig{
		Board: FishingBoard{Size: 5},
		Timing: FishingTiming{
			Mean:   3.0,
			StdDev: 1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressByScore,
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultFootstepsConfig returns the default Footsteps configuration.
func DefaultFootstepsConfig() FootstepsConfig {
	return FootstepsConfig{
		BoardSize:      7,
		StartingEnergy: 50,
	}
}

// DefaultTigerConfig returns the default Tiger configuration.
func DefaultTigerConfig() TigerConfig {
	return TigerConfig{Lambs: 15}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tunnel":
		return defaultTunnelYAML
	case "fishing":
		return defaultFishingYAML
	case "footsteps":
		return defaultFootstepsYAML
	case "tiger":
		return defaultTigerYAML
	default:
		return nil
	}
}
