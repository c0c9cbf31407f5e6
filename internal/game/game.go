package game

import (
	"github.com/vovakirdan/galactix/internal/config"
	"github.com/vovakirdan/galactix/internal/core"
)

// StepResult contains the outcome of a single step.
type StepResult struct {
	Snapshot Snapshot
	Events   []Event
}

// Game adapts a Session to the frame-based host loop: input frames in,
// snapshots and events out.
type Game struct {
	cfg     config.Config
	opts    []Option
	session *Session
	runtime core.RuntimeConfig
}

// New creates a game for the given configuration. Options are applied to
// every session created by Reset.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{cfg: cfg, opts: opts}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "galactix"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Galactix Cat"
}

// Reset discards the session, high score included, and creates a new one
// in START.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	opts := append([]Option{WithSeed(rc.Seed)}, g.opts...)
	muted := g.session != nil && g.session.Muted()
	g.session = NewSession(g.cfg, opts...)
	g.session.SetMuted(muted)
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies the frame's actions and then runs one tick. The frame that
// starts or restarts a run does not tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	s := g.session
	was := s.Phase()

	if in.Has(core.ActionMute) {
		s.ToggleMute()
	}
	if in.Has(core.ActionRestart) {
		if !s.Restart() {
			s.Start()
		}
	}
	if in.Has(core.ActionJump) {
		s.Jump()
	}

	// A run that starts on this frame waits for the next tick to move.
	if was != PhasePlaying && s.Phase() == PhasePlaying {
		return g.result()
	}
	s.Tick()
	return g.result()
}

func (g *Game) result() StepResult {
	s := g.session
	return StepResult{
		Snapshot: s.Snapshot(),
		Events:   s.DrainEvents(),
	}
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.session.Snapshot())
}

// State returns the current snapshot.
func (g *Game) State() Snapshot {
	return g.session.Snapshot()
}
