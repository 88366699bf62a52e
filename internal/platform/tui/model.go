package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Terminals report key presses but not releases, so a direction stays held
// for this long after its last press. Key repeat refreshes it.
const holdWindow = 150 * time.Millisecond

// frameRate is how often the view is redrawn. The simulation catches up to
// wall time on each frame at its own fixed rate.
const frameRate = 30

// helpRows is the footer height reserved for the key help line.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running breakout.
type Model struct {
	game   *breakout.Game
	screen *core.Screen
	clock  *core.FixedStep
	sink   audio.Sink
	keys   KeyMap
	help   help.Model

	held    map[core.Action]time.Time // Direction -> hold expiry
	pending core.InputFrame           // One-shot actions for the next tick
	last    time.Time
	now     func() time.Time

	quitting bool
}

// NewModel creates a Bubble Tea model for the game, sized from cfg.
// A nil sink discards sound events.
func NewModel(game *breakout.Game, sink audio.Sink, cfg core.RuntimeConfig) Model {
	if sink == nil {
		sink = audio.NopSink{}
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		clock:   core.NewFixedStep(game.TickDuration(), game.Config().Timing.MaxCatchUp),
		sink:    sink,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		held:    make(map[core.Action]time.Time),
		pending: core.NewInputFrame(),
		now:     time.Now,
	}
}

// Init sets the window title and starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.game.Title()), tickCmd(frameRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.sink.Close()
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		// Reversing drops the opposite direction immediately
		opposite := core.ActionRight
		if action == core.ActionRight {
			opposite = core.ActionLeft
		}
		delete(m.held, opposite)
		m.held[action] = m.now().Add(holdWindow)
	case core.ActionPause, core.ActionRestart:
		m.pending.Set(action)
	}

	return m, nil
}

// handleTick runs every simulation tick due since the previous frame.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.last.IsZero() {
		m.last = t
		return m, tickCmd(frameRate)
	}

	steps := m.clock.Advance(t.Sub(m.last))
	m.last = t

	// Pause and restart wait for the next due tick and apply once
	for range steps {
		in := m.pending.Clone()
		m.pending.Clear()
		for action, until := range m.held {
			if until.After(t) {
				in.Set(action)
			} else {
				delete(m.held, action)
			}
		}

		result := m.game.Step(in)
		m.sink.Play(result.Events)
	}

	return m, tickCmd(frameRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game *breakout.Game, sink audio.Sink, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, sink, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
