package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bitwise-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help is not an action", runeKey('?'), core.ActionNone},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHeldKeysCountdown(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.ActionLeft)

	for i := range 3 {
		if !h.Frame().Has(core.ActionLeft) {
			t.Fatalf("frame %d: left should still be held", i)
		}
	}
	if h.Frame().Has(core.ActionLeft) {
		t.Error("left should be released after 3 frames")
	}
}

func TestHeldKeysRepeatRefreshes(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(core.ActionRight)
	h.Frame()
	h.Press(core.ActionRight)

	if !h.Frame().Has(core.ActionRight) || !h.Frame().Has(core.ActionRight) {
		t.Error("repeat press should restart the hold")
	}
	if h.Frame().Has(core.ActionRight) {
		t.Error("right should be released")
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := NewHeldKeys(4)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	f := h.Frame()
	if f.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !f.Has(core.ActionRight) {
		t.Error("right should be held")
	}
}

func TestHeldKeysReset(t *testing.T) {
	h := NewHeldKeys(0)
	h.Press(core.ActionLeft)
	h.Reset()

	if len(h.Frame().Actions) != 0 {
		t.Error("Reset should release everything")
	}
}
