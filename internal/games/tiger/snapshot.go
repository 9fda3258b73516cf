package tiger

// Snapshot captures the game state for deterministic testing.
type Snapshot struct {
	Phase    Phase
	Turn     Side
	Unplaced int
	Eaten    int
	Lambs    []Node // in board order
	Tigers   []Node
	Cursor   Node
	Selected *Node
	Message  string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:    g.phase,
		Turn:     g.turn,
		Unplaced: g.unplaced,
		Eaten:    g.eaten,
		Lambs:    sorted(g.pos.Lambs),
		Tigers:   sorted(g.pos.Tigers),
		Cursor:   g.cursor,
		Message:  g.message,
	}
	if g.selected != nil {
		sel := *g.selected
		s.Selected = &sel
	}
	return s
}
