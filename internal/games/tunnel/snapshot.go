package tunnel

import (
	tcore "github.com/vovakirdan/gremm-arcade/internal/games/tunnel/core"
)

// Snapshot captures the game state for deterministic testing.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Layout     string
	Room       string
	Travelers  []tcore.Entity
	TotalMoves int
	LevelMoves int
	Rooms      int
	Collisions int
	Outcome    tcore.Outcome
	Grid       string // live grid including collision walls
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Phase:      g.phase,
		Layout:     g.layout,
		Collisions: g.collisions,
		Outcome:    g.lastOutcome,
	}
	if g.ctrl == nil {
		return s
	}

	s.Room = g.ctrl.Room().Name
	s.Travelers = g.ctrl.Travelers()
	s.TotalMoves = g.ctrl.TotalMoves()
	s.LevelMoves = g.ctrl.LevelMoves()
	s.Rooms = g.ctrl.RoomsVisited()
	s.Grid = g.ctrl.Grid().String()
	return s
}
