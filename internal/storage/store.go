// Package storage keeps the results of the games played during one arcade
// session. Nothing is written to disk: results live until the process exits.
package storage

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/gremm-arcade/internal/multiplayer"
)

// ErrEmptyGameID is returned when a result has no game.
var ErrEmptyGameID = errors.New("storage: result has no game id")

// Result is one finished (or abandoned) game.
type Result struct {
	ID        int64
	GameID    string
	Score     int
	Status    string               // outcome line reported by the game, may be empty
	Winner    multiplayer.PlayerID // hotseat winner; PlayerNone for solo games and draws
	Finished  bool                 // false when the player quit mid-game
	CreatedAt time.Time
}

// Store is an in-memory result log, safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	results []Result
	nextID  int64
	now     func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{now: time.Now}
}

// SaveResult records r and returns its assigned ID.
// CreatedAt is filled in when zero.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.GameID == "" {
		return 0, ErrEmptyGameID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	r.ID = s.nextID
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	s.results = append(s.results, r)
	return r.ID, nil
}

// Recent returns up to limit results for gameID, newest first.
// An empty gameID matches every game. A limit of zero or less returns all
// of them.
func (s *Store) Recent(gameID string, limit int) []Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Result
	for i := len(s.results) - 1; i >= 0; i-- {
		if gameID != "" && s.results[i].GameID != gameID {
			continue
		}
		out = append(out, s.results[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Best returns the highest-scoring finished result for gameID.
func (s *Store) Best(gameID string) (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best Result
	found := false
	for _, r := range s.results {
		if r.GameID != gameID || !r.Finished {
			continue
		}
		if !found || r.Score > best.Score {
			best, found = r, true
		}
	}
	return best, found
}

// Games returns the IDs of games with at least one result, sorted.
func (s *Store) Games() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var ids []string
	for _, r := range s.results {
		if !seen[r.GameID] {
			seen[r.GameID] = true
			ids = append(ids, r.GameID)
		}
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of recorded results.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
