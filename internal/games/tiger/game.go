// Package tiger implements Tiger, a hunt game for two players sharing one
// keyboard: lambs try to trap the tigers, tigers try to eat the lambs.
package tiger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/gremm-arcade/internal/config"
	"github.com/vovakirdan/gremm-arcade/internal/core"
	"github.com/vovakirdan/gremm-arcade/internal/registry"
)

// Phase is the screen the game is on.
type Phase string

const (
	PhaseIntro   Phase = "intro"
	PhasePlaying Phase = "playing"
	PhaseOver    Phase = "over"
)

// StartTigers are the tigers' starting nodes.
var StartTigers = []Node{{0, 0}, {1, 2}, {1, 3}}

var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements Tiger.
type Game struct {
	cfg   config.TigerConfig
	board *Board
	pos   *Position

	phase    Phase
	turn     Side
	unplaced int
	eaten    int
	winner   Side

	cursor   Node
	selected *Node
	message  string

	screenW int
	screenH int
}

// New creates a new Tiger game instance.
func New() *Game {
	return &Game{board: DefaultBoard()}
}

func init() {
	registry.Register("tiger", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tiger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tiger"
}

// Players reports that two people take turns at the keyboard.
func (g *Game) Players() int {
	return 2
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tc, err := config.LoadTiger(configPath)
	if err != nil {
		tc = config.DefaultTigerConfig()
	}
	g.cfg = tc
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.pos = NewPosition(g.board, StartTigers...)
	g.phase = PhaseIntro
	g.turn = Lambs
	g.unplaced = tc.Lambs
	g.eaten = 0
	g.cursor = Node{Row: 1, Col: 0}
	g.selected = nil
	g.message = ""
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseIntro:
		if in.Has(core.ActionAnyKey) {
			g.phase = PhasePlaying
		}
		return core.StepResult{State: g.State()}
	case PhaseOver:
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursorRow(-1)
	case in.Has(core.ActionDown):
		g.moveCursorRow(1)
	case in.Has(core.ActionLeft):
		g.cursor.Col = max(0, g.cursor.Col-1)
	case in.Has(core.ActionRight):
		g.cursor.Col = min(g.board.Shape[g.cursor.Row]-1, g.cursor.Col+1)
	case in.Has(core.ActionBack):
		g.selected = nil
		g.message = ""
	case in.Has(core.ActionConfirm), in.Has(core.ActionStart):
		g.Select(g.cursor)
	}

	return core.StepResult{State: g.State()}
}

// moveCursorRow moves the cursor to the horizontally nearest node of the
// next row up or down.
func (g *Game) moveCursorRow(dir int) {
	row := g.cursor.Row + dir
	if row < 0 || row >= g.board.Rows() {
		return
	}
	x := g.board.X[g.cursor.Row][g.cursor.Col]
	best, bestDist := 0, math.Inf(1)
	for c, nx := range g.board.X[row] {
		if d := math.Abs(nx - x); d < bestDist {
			best, bestDist = c, d
		}
	}
	g.cursor = Node{Row: row, Col: best}
}

// Select acts on node n for the side to move: it places a lamb, picks up a
// piece, or moves the picked-up piece to n.
func (g *Game) Select(n Node) {
	if g.phase != PhasePlaying || !g.board.Contains(n) {
		return
	}
	g.message = ""

	switch {
	case g.turn == Lambs && g.unplaced > 0:
		if !g.pos.ValidPlace(n) {
			g.message = "That node is taken"
			return
		}
		g.pos.Lambs.Put(n)
		g.unplaced--
	case g.selected == nil:
		if !g.pos.pieces(g.turn).Has(n) {
			g.message = fmt.Sprintf("Pick one of the %s", g.turn)
			return
		}
		g.selected = &n
		return
	case *g.selected == n:
		g.selected = nil
		return
	default:
		from := *g.selected
		g.selected = nil
		ok, victim, captured := g.pos.ValidMove(g.turn, from, n)
		if !ok {
			if g.pos.pieces(g.turn).Has(n) {
				g.selected = &n
				return
			}
			g.message = "Invalid move"
			return
		}
		g.pos.pieces(g.turn).Remove(from)
		g.pos.pieces(g.turn).Put(n)
		if captured {
			g.pos.Lambs.Remove(victim)
			g.eaten++
			g.message = fmt.Sprintf("A lamb was eaten at %s", victim)
		}
	}

	g.endTurn()
}

// endTurn removes trapped tigers, checks for a winner and hands over.
func (g *Game) endTurn() {
	for _, t := range g.pos.DeadTigers() {
		g.pos.Tigers.Remove(t)
		g.message = fmt.Sprintf("The tiger at %s is trapped", t)
	}

	if g.unplaced+g.pos.Lambs.Size() < 2 {
		g.finish(Tigers)
		return
	}
	if g.pos.Tigers.Size() == 0 {
		g.finish(Lambs)
		return
	}

	g.turn = 1 - g.turn
	if g.turn == Lambs && g.unplaced == 0 && !g.pos.CanMoveLamb() {
		g.turn = Tigers
		g.message = "Lambs cannot move, tigers go again"
	}
}

func (g *Game) finish(winner Side) {
	g.winner = winner
	g.phase = PhaseOver
	g.selected = nil
}

// Turn returns the side to move.
func (g *Game) Turn() Side {
	return g.turn
}

// Winner returns the winning side once the game is over.
func (g *Game) Winner() (Side, bool) {
	return g.winner, g.phase == PhaseOver
}

// Result returns the end-of-game line, or "" while playing.
func (g *Game) Result() string {
	if g.phase != PhaseOver {
		return ""
	}
	return g.winner.String() + " win!"
}

// Resize records the new screen size.
func (g *Game) Resize(width, height int) {
	g.screenW, g.screenH = width, height
}

// State returns the current game state. Score counts eaten lambs.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.eaten,
		GameOver: g.phase == PhaseOver,
		Paused:   g.phase == PhaseIntro,
		Status:   g.Result(),
	}
}
