// arcade is a TUI arcade for Gremm Tunnel and its companion games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade check [layout]    - Validate tunnel layouts
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--assets <dir>       - Load tunnel layouts from dir instead of the bundled set
//	--log <file>         - Write diagnostics to file
//	--config <file>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset for Fishing
//
// ARCADE_ASSETS and ARCADE_LOG (from the environment or a .env file)
// provide defaults for --assets and --log.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gremm-arcade/internal/logging"

	// Import games to register them
	_ "github.com/vovakirdan/gremm-arcade/internal/games/fishing"
	_ "github.com/vovakirdan/gremm-arcade/internal/games/footsteps"
	_ "github.com/vovakirdan/gremm-arcade/internal/games/tiger"
	_ "github.com/vovakirdan/gremm-arcade/internal/games/tunnel"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagAssets     string
	flagLog        string
	flagConfig     string
	flagDifficulty string

	logger    = logging.Discard()
	logCloser io.Closer
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Gremm Arcade - mirror mazes and small games in your terminal",
	Long: `Gremm Arcade bundles Gremm Tunnel, a mirror maze where every traveler
moves at once, with three small companion games.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  check    - Validate tunnel layouts

Examples:
  arcade list
  arcade play tunnel
  arcade play tunnel --assets ./my-layouts --layout castle/castle.layout
  arcade menu
  arcade check gbd1/gbd1.layout`,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	SilenceUsage:       true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with tunnel layouts and maps (default: bundled, or $ARCADE_ASSETS)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write diagnostics to this file (default: $ARCADE_LOG, or off)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(checkCmd)
}

// setup loads .env, fills flag defaults from the environment and opens the log.
func setup(cmd *cobra.Command, _ []string) error {
	// A missing .env is fine
	_ = godotenv.Load()

	if !cmd.Flags().Changed("assets") {
		flagAssets = os.Getenv("ARCADE_ASSETS")
	}
	if !cmd.Flags().Changed("log") {
		flagLog = os.Getenv("ARCADE_LOG")
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	l, closer, err := logging.Open(flagLog, "arcade")
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	logger.Debug("arcade starting", "command", cmd.Name(), "assets", flagAssets, "fps", flagFPS)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logCloser == nil {
		return nil
	}
	return logCloser.Close()
}

// gameLogger returns the shared logger tagged for one game.
func gameLogger(gameID string) *log.Logger {
	return logger.WithPrefix(gameID)
}
