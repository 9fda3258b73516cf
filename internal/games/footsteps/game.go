// Package footsteps implements a two-player tug-of-war: each round both
// players secretly spend energy and the bigger spender pulls the token one
// step toward their side.
package footsteps

import (
	"github.com/vovakirdan/gremm-arcade/internal/config"
	"github.com/vovakirdan/gremm-arcade/internal/core"
	"github.com/vovakirdan/gremm-arcade/internal/multiplayer"
	"github.com/vovakirdan/gremm-arcade/internal/registry"
)

// Phase is the screen the game is on.
type Phase string

const (
	PhaseIntro   Phase = "intro"
	PhaseBidding Phase = "bidding"
	PhaseOver    Phase = "over"
)

// Side is one player's state. Left is Player1, Right is Player2.
type Side struct {
	Energy int
	Bid    int  // pending bid, clamped to [0, Energy] when the round resolves
	Done   bool // submitted, or out of energy
}

// Round records the last resolved round.
type Round struct {
	Left  int // energy actually spent
	Right int
	Step  int // -1 toward left, +1 toward right, 0 tie
}

var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements Footsteps.
type Game struct {
	cfg   config.FootstepsConfig
	phase Phase
	tick  uint64

	loc    int // token position, 0 is the center cell
	left   Side
	right  Side
	rounds int
	last   Round

	screenW int
	screenH int
}

// New creates a new Footsteps game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("footsteps", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "footsteps"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Footsteps"
}

// Players returns the number of seats.
func (g *Game) Players() int {
	return 2
}

// Reset starts a fresh match on the intro screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	fc, err := config.LoadFootsteps(configPath)
	if err != nil {
		fc = config.DefaultFootstepsConfig()
	}
	g.cfg = fc
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.loc = 0
	g.rounds = 0
	g.last = Round{}
	g.left = Side{Energy: fc.StartingEnergy}
	g.right = Side{Energy: fc.StartingEnergy}
	g.phase = PhaseIntro
}

// Step drives the game from a single keyboard frame as the left player.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	multi := core.NewMultiInputFrame()
	multi.SetPlayer(multiplayer.Player1, in)
	return g.StepMulti(multi)
}

// StepMulti advances the game with separate input for each player.
// Up raises the bid, Down lowers it, Confirm submits it.
func (g *Game) StepMulti(in core.MultiInputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseIntro:
		if anyKey(in.Player1()) || anyKey(in.Player2()) {
			g.startRound()
			g.phase = PhaseBidding
		}
	case PhaseBidding:
		bid(&g.left, in.Player1())
		bid(&g.right, in.Player2())
		if g.left.Done && g.right.Done {
			g.resolve()
		}
	}

	return core.StepResult{State: g.State()}
}

func anyKey(f core.InputFrame) bool {
	return !f.Empty()
}

// bid applies one player's keys to their pending bid.
func bid(s *Side, in core.InputFrame) {
	if s.Done {
		return
	}
	if in.Has(core.ActionUp) {
		s.Bid++
	}
	if in.Has(core.ActionDown) {
		s.Bid--
	}
	if in.Has(core.ActionConfirm) {
		s.Done = true
	}
}

// startRound clears bids. A player without energy sits the round out.
func (g *Game) startRound() {
	g.left.Bid, g.right.Bid = 0, 0
	g.left.Done = g.left.Energy <= 0
	g.right.Done = g.right.Energy <= 0
}

// resolve spends both bids and moves the token toward the bigger one.
func (g *Game) resolve() {
	l := core.Clamp(g.left.Bid, 0, g.left.Energy)
	r := core.Clamp(g.right.Bid, 0, g.right.Energy)
	g.left.Energy -= l
	g.right.Energy -= r

	step := 0
	switch {
	case l > r:
		step = -1
	case r > l:
		step = 1
	}
	g.loc += step
	g.rounds++
	g.last = Round{Left: l, Right: r, Step: step}

	if g.finished() {
		g.phase = PhaseOver
		return
	}
	g.startRound()
}

// finished is true once the token reaches an end cell or nobody can bid.
func (g *Game) finished() bool {
	half := g.cfg.BoardSize / 2
	inside := -half < g.loc && g.loc < half
	return !inside || (g.left.Energy <= 0 && g.right.Energy <= 0)
}

// IsGameOver returns true once the match is decided.
func (g *Game) IsGameOver() bool {
	return g.phase == PhaseOver
}

// Winner returns the side the token ended on, or PlayerNone for a draw.
func (g *Game) Winner() multiplayer.PlayerID {
	if g.phase != PhaseOver {
		return core.PlayerNone
	}
	switch {
	case g.loc < 0:
		return multiplayer.Player1
	case g.loc > 0:
		return multiplayer.Player2
	default:
		return core.PlayerNone
	}
}

// Result returns the end-of-match message.
func (g *Game) Result() string {
	switch g.Winner() {
	case multiplayer.Player1:
		return "Left side wins!"
	case multiplayer.Player2:
		return "Right side wins!"
	default:
		return "It's a draw."
	}
}

// Resize records the new screen size.
func (g *Game) Resize(width, height int) {
	g.screenW, g.screenH = width, height
}

// State returns the current game state. Score is the number of rounds played.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.rounds,
		GameOver: g.phase == PhaseOver,
	}
	if st.GameOver {
		st.Status = g.Result()
	}
	return st
}
