package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bitwise-arcade/internal/core"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Pause, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Help is a view toggle, not a game action, and maps to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// HeldKeys turns key presses into held inputs. Terminals report presses
// and auto-repeat but never releases, so a press keeps its action held for
// a fixed number of frames and each repeat refreshes it.
type HeldKeys struct {
	hold   int
	remain map[core.Action]int
}

// NewHeldKeys creates a tracker that holds each press for holdFrames frames.
func NewHeldKeys(holdFrames int) *HeldKeys {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &HeldKeys{
		hold:   holdFrames,
		remain: make(map[core.Action]int),
	}
}

// Press starts or refreshes the hold on a movement action. Pressing one
// direction releases the opposite one.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remain, core.ActionRight)
	case core.ActionRight:
		delete(h.remain, core.ActionLeft)
	}
	h.remain[a] = h.hold
}

// Frame returns the actions held for the next frame and counts every hold
// down by one.
func (h *HeldKeys) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range h.remain {
		frame.Set(a)
		if n <= 1 {
			delete(h.remain, a)
		} else {
			h.remain[a] = n - 1
		}
	}
	return frame
}

// Reset releases every held action.
func (h *HeldKeys) Reset() {
	clear(h.remain)
}
