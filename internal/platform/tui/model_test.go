package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/galactix/internal/config"
	"github.com/vovakirdan/galactix/internal/core"
	"github.com/vovakirdan/galactix/internal/game"
	"github.com/vovakirdan/galactix/internal/storage"
)

// recorder collects audio cues.
type recorder struct {
	events []game.Event
}

func (r *recorder) Cue(ev game.Event, _ bool) {
	r.events = append(r.events, ev)
}

func (r *recorder) has(ev game.Event) bool {
	for _, e := range r.events {
		if e == ev {
			return true
		}
	}
	return false
}

func newTestModel(t *testing.T) (Model, *recorder, *storage.Store) {
	t.Helper()
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	now := time.Unix(1_700_000_000, 0)
	clock := func() time.Time {
		now = now.Add(time.Second / 60)
		return now
	}

	rec := &recorder{}
	g := game.New(config.Default(), game.WithClock(clock))
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99}
	return NewModel(g, cfg, Options{Store: store, Audio: rec}), rec, store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestModelIdleUntilStart(t *testing.T) {
	m, _, _ := newTestModel(t)

	if m.Init() != nil {
		t.Error("Init() should not start ticking in START")
	}
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd != nil || m.ticking {
		t.Error("a stray tick should not start the loop")
	}
	if !strings.Contains(m.View(), "GALACTIX CAT") {
		t.Error("START view should show the title")
	}
}

func TestModelRunLifecycle(t *testing.T) {
	m, rec, store := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil || !m.ticking {
		t.Fatal("starting a run should schedule a tick")
	}
	if m.snap.Phase != game.PhasePlaying || !rec.has(game.EventStarted) {
		t.Fatalf("phase=%v cues=%v", m.snap.Phase, rec.events)
	}

	// Nobody jumps, so the cat falls to the floor.
	for i := 0; i < 100 && m.ticking; i++ {
		m, cmd = update(t, m, TickMsg(time.Now()))
	}
	if m.ticking || cmd != nil {
		t.Fatal("ticking should stop when the run ends")
	}
	if m.snap.Phase != game.PhaseGameOver || !rec.has(game.EventCrashed) {
		t.Fatalf("phase=%v cues=%v", m.snap.Phase, rec.events)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Outcome != storage.OutcomeCrashed || runs[0].Cause != "bounds" {
		t.Fatalf("expected one crashed run, got %+v", runs)
	}
	if !strings.Contains(m.View(), "CRASHED!") {
		t.Error("GAME_OVER view should show the crash box")
	}

	// Restart starts a new tick loop.
	m, cmd = update(t, m, runeKey("r"))
	if cmd == nil || m.snap.Phase != game.PhasePlaying {
		t.Errorf("restart: phase=%v cmd=%v", m.snap.Phase, cmd != nil)
	}
}

func TestModelMuteWhileIdle(t *testing.T) {
	m, rec, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey("m"))
	if cmd != nil {
		t.Error("muting in START should not start ticking")
	}
	if !m.snap.Muted || !rec.has(game.EventMuted) {
		t.Errorf("muted=%v cues=%v", m.snap.Muted, rec.events)
	}
}

func TestModelHistoryView(t *testing.T) {
	m, _, store := newTestModel(t)
	if _, err := store.SaveRun(storage.Run{Score: 42, Level: 5, Distance: 2100, Outcome: storage.OutcomeCrashed, Cause: "obstacle"}); err != nil {
		t.Fatal(err)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.history == nil {
		t.Fatal("tab should open the history outside PLAYING")
	}
	view := m.View()
	if !strings.Contains(view, "RUN HISTORY") || !strings.Contains(view, "42") {
		t.Errorf("history view should list the run:\n%s", view)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.history != nil {
		t.Error("esc should close the history")
	}

	// No history during a run.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.history != nil {
		t.Error("history should not open while PLAYING")
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "SCORE", core.ColorHUD)
	s.FillRect(6, 1, 3, 1, core.Cell{Rune: 'x', BG: core.ColorPanel})

	out := RenderScreen(s)
	if !strings.Contains(out, "SCORE") || !strings.Contains(out, "xxx") {
		t.Errorf("rendered screen lost its text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected 2 lines, got %d newlines", got)
	}
}
