package footsteps

// Snapshot captures the complete game state for deterministic testing.
type Snapshot struct {
	Tick   uint64
	Phase  Phase
	Loc    int
	Left   Side
	Right  Side
	Rounds int
	Last   Round
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tick,
		Phase:  g.phase,
		Loc:    g.loc,
		Left:   g.left,
		Right:  g.right,
		Rounds: g.rounds,
		Last:   g.last,
	}
}
