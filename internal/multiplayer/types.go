// Package multiplayer provides the local hotseat match support: two players
// sharing one keyboard, each with their own keys.
package multiplayer

import "github.com/vovakirdan/gremm-arcade/internal/core"

// PlayerID identifies a seat at the keyboard.
type PlayerID = core.PlayerID

const (
	PlayerNone = core.PlayerNone
	Player1    = core.Player1
	Player2    = core.Player2
)

// MatchID names one match within an arcade session, e.g. "footsteps-3".
type MatchID string

// MatchMode says how input reaches a game.
type MatchMode int

const (
	// MatchModeSolo routes every key to the game's single input frame. Tiger
	// runs this way too: its players take turns on the same keys.
	MatchModeSolo MatchMode = iota

	// MatchModeHotseat gives each player a separate set of keys on one keyboard.
	MatchModeHotseat
)

func (m MatchMode) String() string {
	if m == MatchModeHotseat {
		return "hotseat"
	}
	return "solo"
}
