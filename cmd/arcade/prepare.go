package main

import (
	"github.com/vovakirdan/gremm-arcade/internal/core"
	"github.com/vovakirdan/gremm-arcade/internal/games/fishing"
	"github.com/vovakirdan/gremm-arcade/internal/games/footsteps"
	"github.com/vovakirdan/gremm-arcade/internal/games/tiger"
	"github.com/vovakirdan/gremm-arcade/internal/games/tunnel"
	"github.com/vovakirdan/gremm-arcade/internal/games/tunnel/levels"
	"github.com/vovakirdan/gremm-arcade/internal/platform/tui"
)

// prepareGame applies the command-line settings to gameID before it is
// created. For the tunnel it may show the layout picker; ok is false when
// the player backed out of it.
func prepareGame(gameID, layout string, cfg core.RuntimeConfig) (ok bool, err error) {
	switch gameID {
	case "tunnel":
		tunnel.SetConfigPath(flagConfig)
		tunnel.SetAssetsRoot(flagAssets)
		tunnel.SetLogger(gameLogger(gameID))
		tunnel.SetLayout(layout)
		if layout != "" {
			return true, nil
		}

		selection, err := tui.RunTunnelLayoutSelector(levels.ForRoot(flagAssets), cfg)
		if err != nil {
			return false, err
		}
		if selection == nil {
			return false, nil
		}
		tunnel.SetLayout(selection.Layout)
		logger.Info("layout selected", "layout", selection.Layout)

	case "fishing":
		fishing.SetConfigPath(flagConfig)
		fishing.SetDifficultyPreset(flagDifficulty)
	case "footsteps":
		footsteps.SetConfigPath(flagConfig)
	case "tiger":
		tiger.SetConfigPath(flagConfig)
	}
	return true, nil
}
