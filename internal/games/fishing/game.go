// Package fishing implements a patience game: move the hook around a small
// pond and hope the next fish bites right under it.
package fishing

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/gremm-arcade/internal/config"
	"github.com/vovakirdan/gremm-arcade/internal/core"
	"github.com/vovakirdan/gremm-arcade/internal/registry"
)

// Phase is the screen the game is on.
type Phase string

const (
	PhaseIntro   Phase = "intro"
	PhaseFishing Phase = "fishing"
	PhaseCatch   Phase = "catch" // showing a caught fish until any key
)

// rippleTicks is how long a missed bite stays visible.
const rippleTicks = 10

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// Game implements Fishing.
type Game struct {
	cfg        config.FishingConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tickRate   int

	phase  Phase
	tick   int
	cursor core.Rect // X, Y hold the hook; W, H the pond size
	nextIn int       // ticks until the next bite

	catches int
	misses  int
	caught  *Fish

	ripple      core.Rect // last missed bite
	rippleTicks int

	screenW int
	screenH int
}

// New creates a new Fishing game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("fishing", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "fishing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fishing"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	fc, err := config.LoadFishing(configPath)
	if err != nil {
		fc = config.DefaultFishingConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFishingPreset(&fc, difficultyPreset)
	}
	g.cfg = fc
	g.difficulty = config.NewDifficultyManager(fc.Difficulty)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.phase = PhaseIntro
	g.tick = 0
	g.cursor = core.NewRect(0, 0, fc.Board.Size, fc.Board.Size)
	g.catches = 0
	g.misses = 0
	g.caught = nil
	g.rippleTicks = 0
	g.scheduleBite()
}

// scheduleBite draws the wait until the next bite: abs(gauss(mean, std_dev))
// seconds, where the mean shrinks as the difficulty grows.
func (g *Game) scheduleBite() {
	mean := g.difficulty.Wait(g.cfg.Timing.Mean, g.catches, g.tick)
	secs := math.Abs(g.rng.NormFloat64()*g.cfg.Timing.StdDev + mean)
	g.nextIn = max(1, int(math.Round(secs*float64(g.tickRate))))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseIntro:
		if in.Has(core.ActionAnyKey) {
			g.phase = PhaseFishing
		}
		return core.StepResult{State: g.State()}
	case PhaseCatch:
		if in.Has(core.ActionAnyKey) {
			g.caught = nil
			g.phase = PhaseFishing
			g.scheduleBite()
		}
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.moveHook(in)

	if g.rippleTicks > 0 {
		g.rippleTicks--
	}

	g.nextIn--
	if g.nextIn <= 0 {
		g.bite()
	}

	return core.StepResult{State: g.State()}
}

// moveHook moves the cursor one cell, staying inside the pond.
func (g *Game) moveHook(in core.InputFrame) {
	size := g.cfg.Board.Size
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y--
	case in.Has(core.ActionDown):
		g.cursor.Y++
	case in.Has(core.ActionLeft):
		g.cursor.X--
	case in.Has(core.ActionRight):
		g.cursor.X++
	}
	g.cursor.X = core.Clamp(g.cursor.X, 0, size-1)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, size-1)
}

// bite places a fish on a random cell. Under the hook it is caught.
func (g *Game) bite() {
	size := g.cfg.Board.Size
	x, y := g.rng.Intn(size), g.rng.Intn(size)

	if x == g.cursor.X && y == g.cursor.Y {
		fish := Catalog[g.rng.Intn(len(Catalog))]
		g.caught = &fish
		g.catches++
		g.phase = PhaseCatch
		return
	}

	g.misses++
	g.ripple = core.NewRect(x, y, 1, 1)
	g.rippleTicks = rippleTicks
	g.scheduleBite()
}

// Resize records the new screen size.
func (g *Game) Resize(width, height int) {
	g.screenW, g.screenH = width, height
}

// State returns the current game state. Score is the number of catches.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.catches,
		Paused: g.phase == PhaseIntro,
	}
}
