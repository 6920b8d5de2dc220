package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bitwise-arcade/internal/core"
	"github.com/vovakirdan/bitwise-arcade/internal/games/breakout"
	"github.com/vovakirdan/bitwise-arcade/internal/platform/host"
)

func newTestModel(t *testing.T, args ...string) Model {
	t.Helper()
	session := host.NewSession(breakout.NewWithPalette(breakout.DefaultPalette()), 1)
	cfg := core.DefaultConfig()
	cfg.Args = args
	m, err := NewModel(session, cfg, nil)
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := update(t, m, TickMsg(time.Now()))
	require.NotNil(t, cmd, "tick should schedule the next tick")
	return m
}

func TestModelStartsAtInitialWord(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, breakout.Encode(breakout.Initial()), m.State())
	require.NotEmpty(t, m.SessionID())
	require.NotNil(t, m.Init())
}

func TestModelTickSteps(t *testing.T) {
	m := newTestModel(t)
	m = tick(t, m)

	require.Equal(t, uint64(1), m.Frames())
	require.Equal(t, breakout.Step(breakout.Encode(breakout.Initial()), core.NewInputFrame()), m.State())
}

func TestModelHeldInput(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	// Default hold is four frames of +2 each
	for range 6 {
		m = tick(t, m)
	}
	require.Equal(t, uint8(breakout.StartPaddle+8), breakout.Decode(m.State()).Paddle)
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runeKey('p'))
	require.True(t, m.Paused())

	before := m.State()
	m = tick(t, m)
	require.Equal(t, before, m.State())
	require.Zero(t, m.Frames())

	m, _ = update(t, m, runeKey('p'))
	require.False(t, m.Paused())
	m = tick(t, m)
	require.NotEqual(t, before, m.State())
}

func TestModelRestart(t *testing.T) {
	start := breakout.Encode(breakout.State{Bricks: 0x3, Paddle: 10, BallX: 20, BallY: 40, BallVel: breakout.VelUpLeft})
	m := newTestModel(t, "--state", breakout.Word(start).String())
	require.Equal(t, start, m.State())

	for range 5 {
		m = tick(t, m)
	}
	require.NotEqual(t, start, m.State())

	m, _ = update(t, m, runeKey('r'))
	require.Equal(t, start, m.State())
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok, "esc should quit")
	require.Empty(t, m.View())
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	require.Contains(t, view, "Breakout")
	require.Contains(t, view, "frame 0")
	require.Contains(t, view, upperHalf)
}

func TestNewModelRejectsBadState(t *testing.T) {
	session := host.NewSession(breakout.NewWithPalette(breakout.DefaultPalette()), 1)
	cfg := core.DefaultConfig()
	cfg.Args = []string{"--state", "0xf000000000000000"}

	_, err := NewModel(session, cfg, nil)
	require.Error(t, err)
}
