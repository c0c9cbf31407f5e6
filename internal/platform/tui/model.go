package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/galactix/internal/core"
	"github.com/vovakirdan/galactix/internal/game"
	"github.com/vovakirdan/galactix/internal/storage"
)

// AudioCuer receives session events. The audio player implements it.
type AudioCuer interface {
	Cue(ev game.Event, muted bool)
}

// Options are the collaborators of the frontend. All are optional.
type Options struct {
	Store  *storage.Store
	Audio  AudioCuer
	Logger *log.Logger
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	audio      AudioCuer
	log        *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	snap       game.Snapshot
	ticking    bool // A tick is scheduled
	history    *HistoryModel
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is reset with cfg; a zero seed is replaced by the current time.
func NewModel(g *game.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	g.Reset(cfg)

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		audio:      opts.Audio,
		log:        logger,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		snap:       g.State(),
	}
}

// Init initializes the model. Nothing ticks until the first run starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.history != nil {
			return m.updateHistory(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKeyToFrame(msg, &m.inputFrame)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionHistory && m.snap.Phase != game.PhasePlaying {
		h := NewHistoryModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.history = &h
		return m, nil
	}
	if m.inputFrame.Empty() || m.ticking {
		// Nothing to do, or applied on the next tick.
		return m, nil
	}

	// Outside PLAYING nothing ticks, so apply the input right away.
	m.step()
	return m, m.schedule()
}

// updateHistory forwards a key to the history view.
func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	h, cmd := m.history.Update(msg)
	switch {
	case h.Quitting():
		m.quitting = true
		m.history = nil
	case h.Closed():
		m.history = nil
	default:
		m.history = &h
	}
	return m, cmd
}

// handleResize processes window resize events. The world is scaled to the
// terminal, so the run continues unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.history != nil {
		h, _ := m.history.Update(msg)
		m.history = &h
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}
	m.ticking = false
	m.step()
	return m, m.schedule()
}

// step runs the game once with the pending input.
func (m *Model) step() {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.snap = result.Snapshot

	for _, ev := range result.Events {
		m.handleEvent(ev)
	}
}

// schedule starts the next tick while the session is PLAYING.
func (m *Model) schedule() tea.Cmd {
	if m.snap.Phase != game.PhasePlaying {
		return nil
	}
	m.ticking = true
	return tickCmd(m.config.TickRate)
}

// handleEvent forwards an event to the audio player and records finished runs.
func (m *Model) handleEvent(ev game.Event) {
	m.log.Debug("event", "event", ev, "score", m.snap.Score, "level", m.snap.Level)

	if m.audio != nil {
		m.audio.Cue(ev, m.snap.Muted)
	}

	switch ev {
	case game.EventCrashed:
		m.saveRun(storage.OutcomeCrashed, m.snap.Cause.String())
	case game.EventVictory:
		m.saveRun(storage.OutcomeVictory, "")
	}
}

// saveRun records the finished run. Failures are logged; the game continues.
func (m *Model) saveRun(outcome, cause string) {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		Score:    m.snap.Score,
		Level:    m.snap.Level,
		Distance: m.snap.Distance,
		Outcome:  outcome,
		Cause:    cause,
	})
	if err != nil {
		m.log.Error("cannot save run", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.history != nil {
		return m.history.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(g *game.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(g, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
