package fishing

// Snapshot captures the game state for deterministic testing.
type Snapshot struct {
	Tick    int
	Phase   Phase
	HookX   int
	HookY   int
	NextIn  int
	Catches int
	Misses  int
	Caught  string // name of the fish on display, empty otherwise
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Phase:   g.phase,
		HookX:   g.cursor.X,
		HookY:   g.cursor.Y,
		NextIn:  g.nextIn,
		Catches: g.catches,
		Misses:  g.misses,
	}
	if g.caught != nil {
		s.Caught = g.caught.Name
	}
	return s
}
