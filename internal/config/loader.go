package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load reads the configuration for game.
// Search order: customPath -> ~/.arcade/configs/<game>.yaml -> ./configs/<game>.yaml
// -> embedded default -> fallback.
func load[T any](game, customPath string, embedded []byte, fallback func() T) (T, error) {
	var cfg T
	filename := game + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadTunnel loads Gremm Tunnel configuration.
func LoadTunnel(customPath string) (TunnelConfig, error) {
	cfg, err := load("tunnel", customPath, defaultTunnelYAML, DefaultTunnelConfig)
	if err != nil {
		return cfg, err
	}

	def := DefaultTunnelConfig()
	if cfg.Layout == "" {
		cfg.Layout = def.Layout
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = def.MaxDepth
	}
	if cfg.Intro == "" {
		cfg.Intro = def.Intro
	}
	return cfg, nil
}

// LoadFishing loads Fishing configuration.
func LoadFishing(customPath string) (FishingConfig, error) {
	cfg, err := load("fishing", customPath, defaultFishingYAML, DefaultFishingConfig)
	if err != nil {
		return cfg, err
	}

	if cfg.Board.Size <= 0 {
		cfg.Board.Size = DefaultFishingConfig().Board.Size
	}
	if cfg.Timing.Mean <= 0 {
		cfg.Timing.Mean = DefaultFishingConfig().Timing.Mean
	}
	if cfg.Timing.StdDev < 0 {
		cfg.Timing.StdDev = 0
	}
	return cfg, nil
}

// LoadFootsteps loads Footsteps configuration.
func LoadFootsteps(customPath string) (FootstepsConfig, error) {
	cfg, err := load("footsteps", customPath, defaultFootstepsYAML, DefaultFootstepsConfig)
	if err != nil {
		return cfg, err
	}

	if cfg.BoardSize < 3 {
		cfg.BoardSize = DefaultFootstepsConfig().BoardSize
	}
	if cfg.BoardSize%2 == 0 {
		cfg.BoardSize++ // the token needs a middle cell
	}
	if cfg.StartingEnergy <= 0 {
		cfg.StartingEnergy = DefaultFootstepsConfig().StartingEnergy
	}
	return cfg, nil
}

// LoadTiger loads Tiger configuration.
func LoadTiger(customPath string) (TigerConfig, error) {
	cfg, err := load("tiger", customPath, defaultTigerYAML, DefaultTigerConfig)
	if err != nil {
		return cfg, err
	}

	if cfg.Lambs <= 0 {
		cfg.Lambs = DefaultTigerConfig().Lambs
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyFishingPreset modifies the config based on a difficulty preset.
func ApplyFishingPreset(cfg *FishingConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Bigger pond is harder to reach in time
	switch preset {
	case DifficultyEasy:
		cfg.Board.Size = 4
	case DifficultyHard:
		cfg.Board.Size = 7
	}
}
