package storage

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/gremm-arcade/internal/multiplayer"
)

func newTestStore() *Store {
	s := New()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	s.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	}
	return s
}

func TestSaveResult(t *testing.T) {
	s := newTestStore()

	id, err := s.SaveResult(Result{GameID: "tunnel", Score: 22, Finished: true})
	if err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d, want 1", id)
	}

	got := s.Recent("tunnel", 0)
	if len(got) != 1 || got[0].CreatedAt.IsZero() || got[0].Score != 22 {
		t.Errorf("Recent = %+v", got)
	}

	if _, err := s.SaveResult(Result{Score: 5}); !errors.Is(err, ErrEmptyGameID) {
		t.Errorf("err = %v, want ErrEmptyGameID", err)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	s := newTestStore()
	for _, score := range []int{3, 9, 1, 4} {
		if _, err := s.SaveResult(Result{GameID: "fishing", Score: score, Finished: true}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.SaveResult(Result{GameID: "tiger", Score: 2}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		limit int
		want  []int
	}{
		{0, []int{4, 1, 9, 3}},
		{2, []int{4, 1}},
		{10, []int{4, 1, 9, 3}},
	}
	for _, tt := range tests {
		var scores []int
		for _, r := range s.Recent("fishing", tt.limit) {
			scores = append(scores, r.Score)
		}
		if !reflect.DeepEqual(scores, tt.want) {
			t.Errorf("Recent(limit=%d) = %v, want %v", tt.limit, scores, tt.want)
		}
	}

	if got := s.Recent("unknown", 5); len(got) != 0 {
		t.Errorf("unknown game returned %v", got)
	}

	all := s.Recent("", 2)
	if len(all) != 2 || all[0].GameID != "tiger" || all[1].Score != 4 {
		t.Errorf("Recent across games = %+v", all)
	}
}

func TestBestSkipsUnfinished(t *testing.T) {
	s := newTestStore()
	s.SaveResult(Result{GameID: "footsteps", Score: 12, Finished: false})
	s.SaveResult(Result{GameID: "footsteps", Score: 5, Finished: true, Winner: multiplayer.Player2})
	s.SaveResult(Result{GameID: "footsteps", Score: 7, Finished: true, Winner: multiplayer.Player1})

	best, ok := s.Best("footsteps")
	if !ok || best.Score != 7 || best.Winner != multiplayer.Player1 {
		t.Errorf("Best = %+v, %v", best, ok)
	}
	if _, ok := s.Best("tunnel"); ok {
		t.Error("Best for a game without results")
	}
}

func TestGamesAndConcurrency(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := "tiger"
			if i%2 == 0 {
				id = "fishing"
			}
			s.SaveResult(Result{GameID: id, Score: i})
		}(i)
	}
	wg.Wait()

	if s.Len() != 20 {
		t.Errorf("Len = %d, want 20", s.Len())
	}
	if got := s.Games(); !reflect.DeepEqual(got, []string{"fishing", "tiger"}) {
		t.Errorf("Games = %v", got)
	}
}
