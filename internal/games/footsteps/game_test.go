package footsteps

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gremm-arcade/internal/core"
	"github.com/vovakirdan/gremm-arcade/internal/multiplayer"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	SetConfigPath("")
	g := New()
	g.Reset(core.DefaultConfig())
	g.cfg.BoardSize = 7
	g.left.Energy, g.right.Energy = 50, 50
	return g
}

func frame(p1, p2 []core.Action) core.MultiInputFrame {
	m := core.NewMultiInputFrame()
	for _, a := range p1 {
		m.Press(multiplayer.Player1, a)
	}
	for _, a := range p2 {
		m.Press(multiplayer.Player2, a)
	}
	return m
}

// round submits one bid per side, one key per tick.
func round(g *Game, left, right int) {
	adjust := func(p multiplayer.PlayerID, n int) {
		a := core.ActionUp
		if n < 0 {
			a, n = core.ActionDown, -n
		}
		for i := 0; i < n; i++ {
			m := core.NewMultiInputFrame()
			m.Press(p, a)
			g.StepMulti(m)
		}
	}
	adjust(multiplayer.Player1, left)
	adjust(multiplayer.Player2, right)
	g.StepMulti(frame([]core.Action{core.ActionConfirm}, []core.Action{core.ActionConfirm}))
}

func start(g *Game) {
	g.StepMulti(frame([]core.Action{core.ActionAnyKey}, nil))
}

func TestIntroWaitsForKey(t *testing.T) {
	g := newGame(t)
	g.StepMulti(core.NewMultiInputFrame())
	if g.Snapshot().Phase != PhaseIntro {
		t.Fatal("left intro without a key")
	}
	g.StepMulti(frame(nil, []core.Action{core.ActionDown}))
	if g.Snapshot().Phase != PhaseBidding {
		t.Fatal("any key from either player should start")
	}
}

func TestRoundMovesTowardBiggerBid(t *testing.T) {
	tests := []struct {
		name        string
		left, right int
		loc         int
		leftE       int
		rightE      int
	}{
		{"left wins", 10, 4, -1, 40, 46},
		{"right wins", 0, 1, 1, 50, 49},
		{"tie", 7, 7, 0, 43, 43},
		{"negative bid clamps to zero", -3, 0, 0, 50, 50},
		{"overbid clamps to energy", 80, 49, -1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t)
			start(g)
			round(g, tt.left, tt.right)

			snap := g.Snapshot()
			if snap.Loc != tt.loc || snap.Left.Energy != tt.leftE || snap.Right.Energy != tt.rightE {
				t.Errorf("loc=%d energy=%d/%d, expected %d %d/%d",
					snap.Loc, snap.Left.Energy, snap.Right.Energy, tt.loc, tt.leftE, tt.rightE)
			}
			if snap.Rounds != 1 {
				t.Errorf("rounds = %d", snap.Rounds)
			}
		})
	}
}

func TestBidsIgnoredAfterSubmit(t *testing.T) {
	g := newGame(t)
	start(g)

	g.StepMulti(frame([]core.Action{core.ActionUp, core.ActionConfirm}, nil))
	g.StepMulti(frame([]core.Action{core.ActionUp}, nil))
	if s := g.Snapshot().Left; !s.Done || s.Bid != 1 {
		t.Fatalf("left = %+v, expected bid 1 submitted", s)
	}
	if g.Snapshot().Rounds != 0 {
		t.Fatal("round resolved before right submitted")
	}
}

func TestLeftReachesEnd(t *testing.T) {
	g := newGame(t)
	start(g)
	for i := 0; i < 3; i++ {
		round(g, 2, 1)
	}

	if !g.IsGameOver() {
		t.Fatalf("expected game over at loc %d", g.Snapshot().Loc)
	}
	if g.Winner() != multiplayer.Player1 {
		t.Errorf("winner = %v", g.Winner())
	}
	if st := g.State(); st.Status != "Left side wins!" || st.Score != 3 {
		t.Errorf("state = %+v", st)
	}

	// Input after the end changes nothing.
	round(g, 5, 0)
	if g.Snapshot().Rounds != 3 {
		t.Error("round played after game over")
	}
}

func TestOutOfEnergy(t *testing.T) {
	g := newGame(t)
	start(g)

	// Left burns everything; right wins one step.
	round(g, 50, 0)
	if g.Snapshot().Loc != -1 {
		t.Fatalf("loc = %d", g.Snapshot().Loc)
	}
	if !g.Snapshot().Left.Done {
		t.Fatal("empty side should be auto-submitted")
	}

	// Only right needs to submit now.
	g.StepMulti(frame(nil, []core.Action{core.ActionUp}))
	g.StepMulti(frame(nil, []core.Action{core.ActionConfirm}))
	if g.Snapshot().Loc != 0 || g.Snapshot().Rounds != 2 {
		t.Fatalf("snapshot = %+v", g.Snapshot())
	}

	// Right spends the rest; token ends on the right half.
	g.StepMulti(frame(nil, []core.Action{core.ActionUp}))
	for g.Snapshot().Right.Bid < 49 {
		g.StepMulti(frame(nil, []core.Action{core.ActionUp}))
	}
	g.StepMulti(frame(nil, []core.Action{core.ActionConfirm}))

	if !g.IsGameOver() || g.Winner() != multiplayer.Player2 {
		t.Errorf("expected right to win when energy ran out, snapshot %+v", g.Snapshot())
	}
}

func TestDraw(t *testing.T) {
	g := newGame(t)
	start(g)
	round(g, 50, 50)

	if !g.IsGameOver() || g.Winner() != core.PlayerNone || g.Result() != "It's a draw." {
		t.Errorf("expected draw, got %+v", g.Snapshot())
	}
}

func TestStepDrivesLeftPlayer(t *testing.T) {
	g := newGame(t)
	start(g)

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	if !g.Snapshot().Left.Done || g.Snapshot().Right.Done {
		t.Error("Step should only feed the left player")
	}
}

func TestRenderBoard(t *testing.T) {
	g := newGame(t)
	start(g)
	round(g, 3, 1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Left", "Right", "47", "49", "|X|", "Round 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}
