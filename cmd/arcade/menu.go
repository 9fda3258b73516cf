package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gremm-arcade/internal/core"
	"github.com/vovakirdan/gremm-arcade/internal/platform/tui"
	"github.com/vovakirdan/gremm-arcade/internal/registry"
	"github.com/vovakirdan/gremm-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.
Tab shows the results of the games played since the menu started.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Session results
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --assets ./my-layouts`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Results live for this menu session only
	store := storage.New()

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: flagSeed}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	for {
		choice, err := tui.RunMenu(cfg, store)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = choice.Config

		if choice.WantsResults {
			back, err := tui.RunResults(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if back {
				continue
			}
			break
		}
		if choice.Quit || choice.GameID == "" {
			break
		}

		if err := playFromMenu(choice.GameID, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	logger.Info("menu closed", "results", store.Len())
}

// playFromMenu runs one game and returns to the menu afterwards.
func playFromMenu(gameID string, store *storage.Store, cfg core.RuntimeConfig) error {
	ok, err := prepareGame(gameID, "", cfg)
	if err != nil || !ok {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Fresh seed for each game unless one was given
	if flagSeed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := tui.Run(game, store, gameLogger(gameID), cfg); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
