package registry

import (
	"testing"

	"github.com/vovakirdan/gremm-arcade/internal/core"
)

type fakeGame struct {
	id      string
	players int
}

func (f *fakeGame) ID() string                           { return f.id }
func (f *fakeGame) Title() string                        { return "Fake " + f.id }
func (f *fakeGame) Reset(core.RuntimeConfig)             {}
func (f *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (f *fakeGame) Render(*core.Screen)                  {}
func (f *fakeGame) State() core.GameState                { return core.GameState{} }

type fakeDuel struct{ fakeGame }

func (f *fakeDuel) Players() int { return 2 }

func TestRegisterAndList(t *testing.T) {
	Register("zz-solo", func() Game { return &fakeGame{id: "zz-solo"} })
	Register("zz-duel", func() Game { return &fakeDuel{fakeGame{id: "zz-duel"}} })

	want := map[string]int{"zz-solo": 1, "zz-duel": 2}
	found := 0
	for _, info := range List() {
		if p, ok := want[info.ID]; ok {
			found++
			if info.Players != p {
				t.Errorf("%s: Players = %d, want %d", info.ID, info.Players, p)
			}
			if info.Title != "Fake "+info.ID {
				t.Errorf("%s: Title = %q", info.ID, info.Title)
			}
		}
	}
	if found != 2 {
		t.Fatalf("found %d of 2 registered games", found)
	}

	if !Exists("zz-duel") || Exists("zz-missing") {
		t.Error("Exists mismatch")
	}
	if _, err := Create("zz-missing"); err == nil {
		t.Error("Create of unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &fakeGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Register("zz-dup", func() Game { return &fakeGame{id: "zz-dup"} })
}
