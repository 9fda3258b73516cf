package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gremm-arcade/internal/core"
	"github.com/vovakirdan/gremm-arcade/internal/multiplayer"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionStart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey = (%v, %v), want (%v, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameSetsAnyKey(t *testing.T) {
	km := NewKeyMapper()

	frame := core.NewInputFrame()
	if km.MapKeyToFrame(runeKey('z'), &frame) {
		t.Fatal("z is not a quit key")
	}
	if !frame.Has(core.ActionAnyKey) || len(frame.List()) != 1 {
		t.Errorf("unbound key should only set AnyKey, got %v", frame.List())
	}

	frame.Clear()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame)
	if !frame.Has(core.ActionConfirm) || !frame.Has(core.ActionAnyKey) {
		t.Errorf("enter frame = %v", frame.List())
	}

	frame.Clear()
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
	if !frame.Empty() {
		t.Errorf("quit should not touch the frame, got %v", frame.List())
	}
}

func TestMapHotseatKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		player multiplayer.PlayerID
		action core.Action
	}{
		{runeKey('w'), multiplayer.Player1, core.ActionUp},
		{runeKey('s'), multiplayer.Player1, core.ActionDown},
		{runeKey('d'), multiplayer.Player1, core.ActionConfirm},
		{runeKey('o'), multiplayer.Player2, core.ActionUp},
		{runeKey('l'), multiplayer.Player2, core.ActionDown},
		{runeKey('k'), multiplayer.Player2, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeySpace}, multiplayer.Player1, core.ActionStart},
	}

	for _, tt := range tests {
		player, action, quit := km.MapHotseatKey(tt.msg)
		if quit || player != tt.player || action != tt.action {
			t.Errorf("%s: got (%v, %v, %v), want (%v, %v)", tt.msg, player, action, quit, tt.player, tt.action)
		}
	}

	if _, _, quit := km.MapHotseatKey(runeKey('q')); !quit {
		t.Error("q should quit in hotseat mode too")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionResults},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.msg, got, tt.want)
		}
	}
}
