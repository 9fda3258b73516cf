// Package tunnel implements Gremm Tunnel, a mirror maze where every traveler
// moves at once and mirrors split them into more travelers.
package tunnel

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gremm-arcade/internal/config"
	"github.com/vovakirdan/gremm-arcade/internal/core"
	tcore "github.com/vovakirdan/gremm-arcade/internal/games/tunnel/core"
	"github.com/vovakirdan/gremm-arcade/internal/games/tunnel/levels"
	"github.com/vovakirdan/gremm-arcade/internal/logging"
	"github.com/vovakirdan/gremm-arcade/internal/registry"
)

// WinMessage is shown once an END exit is reached.
const WinMessage = "You Win - Das Ende"

// Phase is the screen the game is on.
type Phase string

const (
	PhaseIntro    Phase = "intro"
	PhasePlaying  Phase = "playing"
	PhaseWon      Phase = "won"
	PhaseError    Phase = "error" // the layout failed to load
	PhaseTooSmall Phase = "paused_small_window"
)

// Package-level settings applied on the next Reset.
var (
	configPath     string
	selectedLayout string
	assetsRoot     string
	logger         = logging.Discard()
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLayout selects the layout to play, relative to the assets root.
// An empty path uses the configured layout.
func SetLayout(path string) {
	selectedLayout = path
}

// SetAssetsRoot overrides the assets directory. Empty keeps the configured one.
func SetAssetsRoot(root string) {
	assetsRoot = root
}

// SetLogger routes game diagnostics to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	logger = l
}

// Game wires the turn controller to the arcade platform.
type Game struct {
	cfg    config.TunnelConfig
	loader *levels.Loader
	layout string
	ctrl   *tcore.Controller
	logger *log.Logger

	phase   Phase
	resume  Phase // phase to return to once the window is big enough
	loadErr error
	tick    uint64

	lastOutcome tcore.Outcome
	collisions  int // cells walled off by collisions since start

	screenW int
	screenH int
}

// New creates a new Gremm Tunnel game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tunnel", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tunnel"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Gremm Tunnel"
}

// Reset loads the configured layout and shows the intro screen.
// A layout that fails to load leaves the game on the error screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.logger = logger.WithPrefix("tunnel")
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.collisions = 0
	g.lastOutcome = tcore.OutcomeIgnored
	g.loadErr = nil
	g.ctrl = nil

	tc, err := config.LoadTunnel(configPath)
	if err != nil {
		g.logger.Warn("could not load config, using defaults", "error", err)
		tc = config.DefaultTunnelConfig()
	}
	if assetsRoot != "" {
		tc.Assets = assetsRoot
	}
	g.cfg = tc

	g.layout = tc.Layout
	if selectedLayout != "" {
		g.layout = selectedLayout
	}
	g.loader = levels.ForRoot(tc.Assets)

	layout, err := g.loader.Load(g.layout)
	if err != nil {
		g.logger.Error("layout failed to load", "layout", g.layout, "error", err)
		g.loadErr = err
		g.phase = PhaseError
		return
	}

	g.ctrl = tcore.NewController(layout, tc.MaxDepth, g.logger)
	g.ctrl.Start()
	g.phase = PhaseIntro
	g.checkScreenSize()
}

// checkScreenSize pauses the game when the room does not fit.
func (g *Game) checkScreenSize() {
	if g.ctrl == nil || g.phase == PhaseError {
		return
	}
	minW, minH := g.minSize()
	small := g.screenW < minW || g.screenH < minH
	switch {
	case small && g.phase != PhaseTooSmall:
		g.resume = g.phase
		g.phase = PhaseTooSmall
	case !small && g.phase == PhaseTooSmall:
		g.phase = g.resume
	}
}

// Resize records the new screen size and pauses or resumes accordingly.
func (g *Game) Resize(width, height int) {
	g.screenW, g.screenH = width, height
	g.checkScreenSize()
}

// minSize is the largest room plus the HUD.
func (g *Game) minSize() (int, int) {
	w, h := len(g.cfg.Intro), 0
	for _, r := range g.ctrl.Layout().Rooms() {
		w = max(w, r.Grid.Width()+2)
		h = max(h, r.Grid.Height()+2)
	}
	return w, h + hudHeight + 1
}

// Step applies at most one action per tick.
// Up moves, Left and Right rotate, Space restarts the layout.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseError, PhaseTooSmall:
		return core.StepResult{State: g.State()}
	case PhaseIntro:
		if in.Has(core.ActionStart) {
			g.phase = PhasePlaying
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionStart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}
	if g.phase == PhaseWon {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.move()
	case in.Has(core.ActionLeft):
		g.ctrl.Rotate(1)
	case in.Has(core.ActionRight):
		g.ctrl.Rotate(-1)
	}
	if g.phase == PhasePlaying {
		g.collisions += len(g.ctrl.Collide())
	}

	return core.StepResult{State: g.State()}
}

// move advances every traveler one turn.
func (g *Game) move() {
	g.lastOutcome = g.ctrl.Move()
	if g.lastOutcome == tcore.OutcomeWon {
		g.phase = PhaseWon
	}
}

// restart replays the layout from its start room.
func (g *Game) restart() {
	g.ctrl.Start()
	g.collisions = 0
	g.lastOutcome = tcore.OutcomeIgnored
	g.phase = PhasePlaying
}

// State returns the current game state. Score is the total move count.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Paused: g.phase == PhaseTooSmall || g.phase == PhaseIntro,
	}
	if g.ctrl != nil {
		st.Score = g.ctrl.TotalMoves()
	}
	switch g.phase {
	case PhaseWon:
		st.GameOver = true
		st.Status = WinMessage
	case PhaseError:
		st.GameOver = true
		st.Status = "Layout error"
	}
	return st
}

// Err returns the layout load error, if any.
func (g *Game) Err() error {
	return g.loadErr
}
