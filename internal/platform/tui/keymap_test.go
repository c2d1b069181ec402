package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/HC-Build/Hustle-Trail/internal/core"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyGameBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{keyRunes("z"), core.ActionPaceSteady},
		{keyRunes("x"), core.ActionPaceStrenuous},
		{keyRunes("c"), core.ActionPaceGrueling},
		{keyRunes("1"), core.ActionOption1},
		{keyRunes("3"), core.ActionOption3},
		{keyRunes("5"), core.ActionOption5},
		{keyRunes("f"), core.ActionPrimary},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionPrimary},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{keyRunes("b"), core.ActionBack},
		{keyRunes("p"), core.ActionPause},
		{keyRunes("r"), core.ActionRestart},
		{keyRunes("w"), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
	}

	for _, tt := range tests {
		got, quit := km.MapKey(tt.msg)
		if got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
		if quit {
			t.Errorf("MapKey(%q) should not flag quit", tt.msg.String())
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}} {
		action, quit := km.MapKey(msg)
		if !quit {
			t.Errorf("MapKey(%q) should flag quit", msg.String())
		}
		if action != core.ActionQuit {
			t.Errorf("MapKey(%q) = %v, want ActionQuit", msg.String(), action)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyRunes("z"), &frame); quit {
		t.Error("z should not quit")
	}
	km.MapKeyToFrame(keyRunes("2"), &frame)

	if !frame.Has(core.ActionPaceSteady) {
		t.Error("frame should contain PaceSteady")
	}
	if frame.Option() != 2 {
		t.Errorf("frame option = %d, want 2", frame.Option())
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{keyRunes("k"), MenuActionUp},
		{keyRunes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionHistory},
		{keyRunes("b"), MenuActionBack},
		{keyRunes("q"), MenuActionQuit},
		{keyRunes("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
