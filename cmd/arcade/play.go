package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gremm-arcade/internal/core"
	"github.com/vovakirdan/gremm-arcade/internal/platform/tui"
	"github.com/vovakirdan/gremm-arcade/internal/registry"
	"github.com/vovakirdan/gremm-arcade/internal/storage"
)

var flagLayout string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (Gremm Tunnel):
  Up         - Move every traveler one step
  Left/Right - Rotate every traveler
  Space      - Start / restart the layout
  Q/Ctrl+C   - Quit

Other keys:
  P          - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot

Difficulty options (Fishing):
  easy   - Small pond, start at lowest difficulty
  normal - Start at 30% difficulty, progresses to max
  hard   - Large pond, start at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play tunnel
  arcade play tunnel --layout practice.yaml
  arcade play fishing --difficulty easy
  arcade play tiger --config ./few-lambs.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Tunnel layout to play, relative to the assets root (skips the picker)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for the layout picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	ok, err := prepareGame(gameID, flagLayout, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		return
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := storage.New()
	if err := tui.Run(game, store, gameLogger(gameID), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	for _, r := range store.Recent(gameID, 1) {
		if r.Status != "" {
			fmt.Printf("%s: %s (score %d)\n", game.Title(), r.Status, r.Score)
		}
	}
}
