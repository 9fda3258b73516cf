package tiger

import (
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/vovakirdan/gremm-arcade/internal/core"
	"github.com/vovakirdan/gremm-arcade/internal/registry"
)

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// newGame starts a game past the intro with the given number of lambs.
func newGame(t *testing.T, lambs int) *Game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiger.yaml")
	if err := os.WriteFile(path, []byte("lambs: "+strconv.Itoa(lambs)+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.DefaultConfig())
	g.Step(press(core.ActionAnyKey))
	return g
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create("tiger")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Tiger" {
		t.Errorf("Title = %q", g.Title())
	}
}

func TestResetUsesConfig(t *testing.T) {
	g := newGame(t, 15)
	snap := g.Snapshot()
	if snap.Unplaced != 15 || snap.Turn != Lambs || snap.Phase != PhasePlaying {
		t.Fatalf("unexpected start: %+v", snap)
	}
	if !reflect.DeepEqual(snap.Tigers, StartTigers) {
		t.Errorf("Tigers = %v, want %v", snap.Tigers, StartTigers)
	}
}

func TestCursorFollowsBoard(t *testing.T) {
	g := newGame(t, 15)

	steps := []struct {
		action core.Action
		want   Node
	}{
		{core.ActionDown, Node{2, 1}},
		{core.ActionDown, Node{3, 0}},
		{core.ActionDown, Node{3, 0}},
		{core.ActionLeft, Node{3, 0}},
		{core.ActionRight, Node{3, 1}},
		{core.ActionUp, Node{2, 2}},
		{core.ActionUp, Node{1, 2}},
		{core.ActionUp, Node{0, 0}},
		{core.ActionRight, Node{0, 0}},
	}
	for i, s := range steps {
		g.Step(press(s.action))
		if got := g.Snapshot().Cursor; got != s.want {
			t.Fatalf("step %d (%s): cursor = %s, want %s", i, s.action, got, s.want)
		}
	}
}

func TestPlacementAlternatesTurns(t *testing.T) {
	g := newGame(t, 15)

	g.Select(Node{0, 0})
	if snap := g.Snapshot(); snap.Unplaced != 15 || snap.Message == "" {
		t.Fatalf("placing on a tiger should fail: %+v", snap)
	}

	g.Step(press(core.ActionConfirm)) // cursor starts on (1,0)
	snap := g.Snapshot()
	if snap.Unplaced != 14 || snap.Turn != Tigers {
		t.Fatalf("after placement: %+v", snap)
	}
	if !reflect.DeepEqual(snap.Lambs, []Node{{1, 0}}) {
		t.Errorf("Lambs = %v", snap.Lambs)
	}

	// Tigers must pick one of their own.
	g.Select(Node{1, 0})
	if g.Snapshot().Selected != nil {
		t.Error("tigers selected a lamb")
	}

	g.Select(Node{1, 3})
	g.Select(Node{1, 4})
	snap = g.Snapshot()
	if snap.Turn != Lambs || !reflect.DeepEqual(snap.Tigers, []Node{{0, 0}, {1, 2}, {1, 4}}) {
		t.Errorf("after tiger move: %+v", snap)
	}
}

func TestSelectionCancelAndReselect(t *testing.T) {
	g := newGame(t, 15)
	g.turn = Tigers

	g.Select(Node{1, 2})
	g.Select(Node{1, 3}) // another tiger: switch selection
	if sel := g.Snapshot().Selected; sel == nil || *sel != (Node{1, 3}) {
		t.Fatalf("Selected = %v, want (1,3)", sel)
	}

	g.Step(press(core.ActionBack))
	if g.Snapshot().Selected != nil {
		t.Error("Esc should clear the selection")
	}

	g.Select(Node{1, 2})
	g.Select(Node{3, 3}) // not connected
	snap := g.Snapshot()
	if snap.Selected != nil || snap.Message != "Invalid move" || snap.Turn != Tigers {
		t.Errorf("invalid move: %+v", snap)
	}
}

func TestTigersWinByEating(t *testing.T) {
	g := newGame(t, 2)

	g.Select(Node{1, 1})
	g.Select(Node{1, 2})
	g.Select(Node{1, 0}) // jumps (1,1)

	snap := g.Snapshot()
	if snap.Eaten != 1 || len(snap.Lambs) != 0 {
		t.Fatalf("expected a capture: %+v", snap)
	}
	state := g.State()
	if !state.GameOver || state.Status != "Tigers win!" || state.Score != 1 {
		t.Errorf("State = %+v", state)
	}
	if w, over := g.Winner(); !over || w != Tigers {
		t.Errorf("Winner = %v, %v", w, over)
	}

	g.Step(press(core.ActionConfirm))
	if g.Snapshot().Phase != PhaseOver {
		t.Error("input after the end should be ignored")
	}
}

func TestLambsWinByTrapping(t *testing.T) {
	g := newGame(t, 15)
	walls := []Node{{1, 1}, {1, 2}, {1, 3}, {1, 4}, {2, 1}, {2, 2}, {2, 3}}
	g.pos = NewPosition(g.board, Node{0, 0})
	for _, w := range walls {
		g.pos.Lambs.Put(w)
	}
	g.unplaced = 1

	g.Select(Node{2, 4}) // closes the last jump for the apex tiger

	state := g.State()
	if !state.GameOver || state.Status != "Lambs win!" {
		t.Errorf("State = %+v", state)
	}
}

func TestStuckLambsPass(t *testing.T) {
	g := newGame(t, 15)
	g.pos = NewPosition(g.board, Node{0, 0}, Node{2, 1}, Node{2, 4})
	g.pos.Lambs.Put(Node{3, 0})
	g.pos.Lambs.Put(Node{3, 3})
	g.unplaced = 0
	g.turn = Tigers

	g.Select(Node{0, 0})
	g.Select(Node{1, 1})

	snap := g.Snapshot()
	if snap.Turn != Tigers || !strings.Contains(snap.Message, "cannot move") {
		t.Errorf("lambs should pass: %+v", snap)
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, 15)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"TIGER", "Lambs to move", "Unplaced lambs: 15", "T", "[o]"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	small := core.NewScreen(20, 10)
	g.screenW, g.screenH = 20, 10
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("expected too-small notice")
	}
}
