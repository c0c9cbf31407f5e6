package game

import (
	"slices"
	"testing"

	"github.com/vovakirdan/galactix/internal/config"
	"github.com/vovakirdan/galactix/internal/core"
)

func newTestGame(seed int64) *Game {
	clock := newFakeClock()
	g := New(config.Default(), WithClock(clock.Now), WithStrictInvariants(true))
	rc := core.DefaultConfig()
	rc.Seed = seed
	g.Reset(rc)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameIdentity(t *testing.T) {
	g := newTestGame(1)
	if g.ID() != "galactix" || g.Title() != "Galactix Cat" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestGameStepStartsOnJump(t *testing.T) {
	g := newTestGame(1)

	res := g.Step(frame())
	if res.Snapshot.Phase != PhaseStart || len(res.Events) != 0 {
		t.Fatalf("empty frame in START: phase=%v events=%v", res.Snapshot.Phase, res.Events)
	}

	res = g.Step(frame(core.ActionJump))
	if res.Snapshot.Phase != PhasePlaying {
		t.Fatalf("phase = %v, expected playing", res.Snapshot.Phase)
	}
	if !slices.Contains(res.Events, EventStarted) {
		t.Errorf("events = %v, expected started", res.Events)
	}
	if res.Snapshot.Distance != 0 || res.Snapshot.Player.DY != 0 {
		t.Errorf("distance=%d dy=%v, the starting frame should not tick", res.Snapshot.Distance, res.Snapshot.Player.DY)
	}

	res = g.Step(frame())
	if res.Snapshot.Distance != 1 {
		t.Errorf("distance = %d, expected the next frame to tick", res.Snapshot.Distance)
	}
}

func TestGameStepRestart(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionRestart))
	if g.State().Phase != PhasePlaying {
		t.Fatalf("restart in START should start a run, phase = %v", g.State().Phase)
	}

	var res StepResult
	for i := 0; i < 100 && g.State().Phase == PhasePlaying; i++ {
		res = g.Step(frame())
	}
	if res.Snapshot.Phase != PhaseGameOver || !slices.Contains(res.Events, EventCrashed) {
		t.Fatalf("expected a crash, got phase=%v events=%v", res.Snapshot.Phase, res.Events)
	}

	res = g.Step(frame())
	if res.Snapshot.Phase != PhaseGameOver {
		t.Error("an empty frame should not leave GAME_OVER")
	}

	res = g.Step(frame(core.ActionRestart))
	if res.Snapshot.Phase != PhasePlaying || res.Snapshot.Distance != 0 {
		t.Errorf("after restart: phase=%v distance=%d", res.Snapshot.Phase, res.Snapshot.Distance)
	}
}

func TestGameMuteSurvivesReset(t *testing.T) {
	g := newTestGame(1)

	res := g.Step(frame(core.ActionMute))
	if !res.Snapshot.Muted || !slices.Equal(res.Events, []Event{EventMuted}) {
		t.Fatalf("mute: muted=%v events=%v", res.Snapshot.Muted, res.Events)
	}

	g.Reset(core.DefaultConfig())
	if !g.State().Muted {
		t.Error("Reset() should keep the mute preference")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%18 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() Snapshot {
		g := newTestGame(12345)
		var snap Snapshot
		for _, in := range inputs {
			snap = g.Step(in).Snapshot
			if snap.Phase.Terminal() {
				break
			}
		}
		return snap
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Distance != b.Distance || a.Phase != b.Phase {
		t.Errorf("same seed and inputs diverged: %+v vs %+v", a, b)
	}
	if len(a.Obstacles) != len(b.Obstacles) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(a.Obstacles), len(b.Obstacles))
	}
	for i := range a.Obstacles {
		if a.Obstacles[i].H != b.Obstacles[i].H || a.Obstacles[i].X != b.Obstacles[i].X {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, a.Obstacles[i], b.Obstacles[i])
		}
	}
}
