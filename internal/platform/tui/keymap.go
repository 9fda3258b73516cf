package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gremm-arcade/internal/core"
	"github.com/vovakirdan/gremm-arcade/internal/multiplayer"
)

// GameKeyMap holds the bindings for single-keyboard play.
type GameKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Start      key.Binding
	Back       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Right, k.Start, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Start, k.Back},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Start: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "cancel"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HotseatKeyMap holds the per-player bindings for two players on one keyboard.
type HotseatKeyMap struct {
	LeftUp      key.Binding
	LeftDown    key.Binding
	LeftSubmit  key.Binding
	RightUp     key.Binding
	RightDown   key.Binding
	RightSubmit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HotseatKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.LeftSubmit, k.RightUp, k.RightDown, k.RightSubmit}
}

// FullHelp returns key bindings for the full help view.
func (k HotseatKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown, k.LeftSubmit},
		{k.RightUp, k.RightDown, k.RightSubmit},
	}
}

// DefaultHotseatKeyMap returns default hotseat key bindings.
func DefaultHotseatKeyMap() HotseatKeyMap {
	return HotseatKeyMap{
		LeftUp:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "left +1")),
		LeftDown:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "left -1")),
		LeftSubmit:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "left submit")),
		RightUp:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "right +1")),
		RightDown:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "right -1")),
		RightSubmit: key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "right submit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Game    GameKeyMap
	Hotseat HotseatKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Game:    DefaultGameKeyMap(),
		Hotseat: DefaultHotseatKeyMap(),
	}
}

// MapKey translates a key message to an action for a single player.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.Game
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Start):
		return core.ActionStart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Every key other than quit also sets ActionAnyKey.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	frame.Set(core.ActionAnyKey)
	return false
}

// MapHotseatKey resolves a key to the player it belongs to. Keys outside
// the per-player sets fall back to the single-player map for Player1.
func (km *KeyMapper) MapHotseatKey(msg tea.KeyMsg) (player multiplayer.PlayerID, action core.Action, isQuit bool) {
	k := km.Hotseat
	switch {
	case key.Matches(msg, k.LeftUp):
		return multiplayer.Player1, core.ActionUp, false
	case key.Matches(msg, k.LeftDown):
		return multiplayer.Player1, core.ActionDown, false
	case key.Matches(msg, k.LeftSubmit):
		return multiplayer.Player1, core.ActionConfirm, false
	case key.Matches(msg, k.RightUp):
		return multiplayer.Player2, core.ActionUp, false
	case key.Matches(msg, k.RightDown):
		return multiplayer.Player2, core.ActionDown, false
	case key.Matches(msg, k.RightSubmit):
		return multiplayer.Player2, core.ActionConfirm, false
	}

	action, isQuit = km.MapKey(msg)
	return multiplayer.Player1, action, isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionResults
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionResults
	}

	return MenuActionNone
}
