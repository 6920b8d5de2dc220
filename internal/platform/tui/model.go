package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/bitwise-arcade/internal/core"
	"github.com/vovakirdan/bitwise-arcade/internal/platform/host"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Model is the Bubble Tea model for running a bitwise game.
type Model struct {
	session  *host.Session
	config   core.RuntimeConfig
	logger   *log.Logger
	id       string
	keys     KeyMap
	help     help.Model
	held     *HeldKeys
	renderer *FrameRenderer

	start    uint64 // word the session started from, used by restart
	state    uint64
	frame    *core.FrameBuffer
	frames   uint64
	paused   bool
	quitting bool
}

// NewModel initializes the game through the session and returns a model
// ready to run. A nil logger discards log output.
func NewModel(session *host.Session, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.FPS < 1 {
		cfg.FPS = session.Board().FPS
	}

	state, fb, err := session.Initialize(cfg.Args)
	if err != nil {
		return Model{}, err
	}

	id := uuid.NewString()
	return Model{
		session:  session,
		config:   cfg,
		logger:   logger.With("session", id, "game", session.Game().ID()),
		id:       id,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		held:     NewHeldKeys(cfg.HoldFrames),
		renderer: NewFrameRenderer(),
		start:    state,
		state:    state,
		frame:    fb,
	}, nil
}

// SessionID returns the identifier attached to this session's log lines.
func (m Model) SessionID() string {
	return m.id
}

// State returns the current state word.
func (m Model) State() uint64 {
	return m.state
}

// Frames returns the number of frames stepped so far.
func (m Model) Frames() uint64 {
	return m.frames
}

// Paused reports whether stepping is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "state", fmt.Sprintf("0x%016x", m.state), "fps", m.config.FPS)
	return tickCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("session ended", "frames", m.frames, "state", fmt.Sprintf("0x%016x", m.state))
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		m.held.Reset()
		m.logger.Debug("pause toggled", "paused", m.paused, "frame", m.frames)
	case core.ActionRestart:
		m.state = m.start
		m.frame = m.session.Render(m.state)
		m.held.Reset()
		m.paused = false
		m.logger.Info("session restarted", "frame", m.frames)
	case core.ActionLeft, core.ActionRight:
		if !m.paused {
			m.held.Press(action)
		}
	}

	return m, nil
}

// handleTick runs exactly one simulation step unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if !m.paused {
		m.state, m.frame = m.session.Step(m.state, m.held.Frame())
		m.frames++
	}
	return m, tickCmd(m.config.FPS)
}

// View renders the current frame plus a status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.renderer.Render(m.frame))
	sb.WriteRune('\n')

	status := fmt.Sprintf("%s  frame %d  0x%016x",
		titleStyle.Render(m.session.Game().Title()), m.frames, m.state)
	if m.paused {
		status += "  " + pausedStyle.Render("PAUSED")
	}
	sb.WriteString(statusStyle.Render(status))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for a session.
func Run(session *host.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(session, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && !fm.quitting {
		fm.logger.Info("session ended", "frames", fm.frames)
	}
	return nil
}
