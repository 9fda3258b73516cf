package multiplayer

import (
	"github.com/vovakirdan/gremm-arcade/internal/core"
)

// HotseatGame is implemented by games that take separate input per player.
type HotseatGame interface {
	// Reset initializes the game state.
	Reset(cfg core.RuntimeConfig)

	// StepMulti advances the game by one tick using input from both players.
	StepMulti(input core.MultiInputFrame) core.StepResult

	// IsGameOver returns true if the game has ended.
	IsGameOver() bool

	// Winner returns the winning player, or PlayerNone for a draw or while playing.
	Winner() PlayerID
}

// MatchEndReason describes why a match ended.
type MatchEndReason int

const (
	MatchEndReasonCompleted MatchEndReason = iota // Normal game completion
	MatchEndReasonCancelled                       // Players quit before the end
)

func (r MatchEndReason) String() string {
	switch r {
	case MatchEndReasonCompleted:
		return "Match completed"
	case MatchEndReasonCancelled:
		return "Match cancelled"
	default:
		return "Unknown"
	}
}

// MatchResult contains the outcome of a completed match.
type MatchResult struct {
	MatchID MatchID
	Reason  MatchEndReason
	Winner  PlayerID
	Ticks   uint64
}

// LocalMatch runs a hotseat game: it gathers key presses from both players
// between ticks and hands them to the game as one MultiInputFrame.
type LocalMatch struct {
	id      MatchID
	game    HotseatGame
	pending core.MultiInputFrame
	tick    uint64

	result *MatchResult
}

// NewLocalMatch creates a match around game. The game must already be Reset.
func NewLocalMatch(id MatchID, game HotseatGame) *LocalMatch {
	return &LocalMatch{
		id:      id,
		game:    game,
		pending: core.NewMultiInputFrame(),
	}
}

// ID returns the match identifier.
func (m *LocalMatch) ID() MatchID {
	return m.id
}

// Mode returns the match mode.
func (m *LocalMatch) Mode() MatchMode {
	return MatchModeHotseat
}

// Press queues an action for player until the next tick.
func (m *LocalMatch) Press(player PlayerID, a core.Action) {
	m.pending.Press(player, a)
}

// Tick steps the game with everything pressed since the last tick.
// done is true exactly once, on the tick the game ends.
func (m *LocalMatch) Tick() (res core.StepResult, done bool) {
	input := m.pending.Clone()
	m.pending.Clear()

	res = m.game.StepMulti(input)
	m.tick++

	if m.result == nil && m.game.IsGameOver() {
		m.result = &MatchResult{
			MatchID: m.id,
			Reason:  MatchEndReasonCompleted,
			Winner:  m.game.Winner(),
			Ticks:   m.tick,
		}
		return res, true
	}
	return res, false
}

// Cancel ends an unfinished match. It has no effect after completion.
func (m *LocalMatch) Cancel() {
	if m.result != nil {
		return
	}
	m.result = &MatchResult{
		MatchID: m.id,
		Reason:  MatchEndReasonCancelled,
		Winner:  core.PlayerNone,
		Ticks:   m.tick,
	}
}

// Result returns the match outcome once it is known.
func (m *LocalMatch) Result() (MatchResult, bool) {
	if m.result == nil {
		return MatchResult{}, false
	}
	return *m.result, true
}

// Ticks returns the number of ticks played.
func (m *LocalMatch) Ticks() uint64 {
	return m.tick
}
