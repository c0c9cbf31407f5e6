package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/galactix/internal/config"
	"github.com/vovakirdan/galactix/internal/core"
)

func renderSession(s *Session) *core.Screen {
	dst := core.NewScreen(80, 24)
	Render(dst, s.Snapshot())
	return dst
}

func TestRenderOverlays(t *testing.T) {
	s := newTestSession(t, config.Default())

	if out := renderSession(s).String(); !strings.Contains(out, "GALACTIX CAT") {
		t.Error("START should show the title")
	}

	s.Start()
	if out := renderSession(s).String(); strings.Contains(out, "GALACTIX CAT") || strings.Contains(out, "CRASHED!") {
		t.Error("PLAYING should not show an overlay")
	}

	s.score = 4
	s.crash(CauseBounds)
	out := renderSession(s).String()
	if !strings.Contains(out, "CRASHED!") || !strings.Contains(out, "Score: 4") {
		t.Errorf("GAME_OVER should show the crash box with the score:\n%s", out)
	}

	s.Restart()
	s.phase = PhaseVictory
	if out := renderSession(s).String(); !strings.Contains(out, "MISSION COMPLETE!") {
		t.Error("VICTORY should show the completion box")
	}
}

func TestRenderHUD(t *testing.T) {
	s := newTestSession(t, config.Default())
	s.Start()
	s.score = 12
	s.highScore = 30
	s.level = 3

	dst := renderSession(s)
	hud := dst.Row(0)
	for _, want := range []string{"SCORE 12", "LEVEL 3/12", "HI 30", "ON"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q should contain %q", hud, want)
		}
	}
	if c := dst.GetCell(1, 0); c.FG != core.ColorHUD || c.BG != core.ColorPanel {
		t.Errorf("HUD text colors = %q on %q", c.FG, c.BG)
	}

	s.ToggleMute()
	if hud := renderSession(s).Row(0); !strings.Contains(hud, "OFF") {
		t.Errorf("muted HUD %q should say OFF", hud)
	}
}

func TestRenderSkyGradient(t *testing.T) {
	s := newTestSession(t, config.Default())
	dst := renderSession(s)

	top := dst.GetCell(79, 1).BG
	bottom := dst.GetCell(79, 23).BG
	if top != skyTop || bottom != skyBottom {
		t.Errorf("sky runs %q -> %q, expected %q -> %q", top, bottom, skyTop, skyBottom)
	}
}

func TestRenderObstacle(t *testing.T) {
	s := newTestSession(t, config.Default())
	s.Start()
	s.field.PushPair(
		Obstacle{Pair: 0, X: 400, Y: 0, W: 60, H: 200, Motion: Static{}},
		Obstacle{Pair: 0, X: 400, Y: 420, W: 60, H: 180, Motion: Static{}},
	)

	dst := renderSession(s)
	color := core.Color(config.Default().Levels[0].Color)

	// 800x600 on 80x23 world cells: 10 units per column.
	if got := dst.GetCell(40, 1).BG; got != color {
		t.Errorf("pipe edge background = %q, expected %q", got, color)
	}
	inner := dst.GetCell(42, 3).BG
	if inner == color || inner == "" {
		t.Errorf("pipe interior should be a darker shade, got %q", inner)
	}
	if got := dst.GetCell(20, 1).BG; got == color {
		t.Error("pipe color leaked outside the pipe")
	}
}

func TestRenderPlayerVisible(t *testing.T) {
	s := newTestSession(t, config.Default())
	s.Start()

	for _, rows := range []int{24, 8} {
		dst := core.NewScreen(80, rows)
		Render(dst, s.Snapshot())

		found := false
		for y := 1; y < dst.Height(); y++ {
			for x := 0; x < dst.Width(); x++ {
				c := dst.GetCell(x, y)
				if c.Rune == '█' && (c.FG == core.ColorWhite || c.FG == core.ColorVisor) {
					found = true
				}
			}
		}
		if !found {
			t.Errorf("%d rows: player not drawn", rows)
		}
	}
}

func TestPlayerPartRotation(t *testing.T) {
	p := Player{W: 40, H: 30}

	if _, fg, ok := playerPart(p, 5, 0); !ok || fg != core.ColorVisor {
		t.Error("the visor sits right of center")
	}
	if _, fg, ok := playerPart(p, -10, 0); !ok || fg != core.ColorWhite {
		t.Error("the body surrounds the visor")
	}
	if _, fg, ok := playerPart(p, -28, 5); !ok || fg != core.ColorFlame {
		t.Error("the flame trails behind the body")
	}
	if r, _, ok := playerPart(p, -10, -18); !ok || r != '▲' {
		t.Error("the ear sits on top")
	}
	if _, _, ok := playerPart(p, 30, 30); ok {
		t.Error("points outside the sprite should be empty")
	}
}

func TestInTriangle(t *testing.T) {
	a, b, c := point{0, 0}, point{10, 0}, point{0, 10}

	tests := []struct {
		p    point
		want bool
	}{
		{point{1, 1}, true},
		{point{5, 0}, true},
		{point{6, 6}, false},
		{point{-1, 1}, false},
	}
	for _, tc := range tests {
		if got := inTriangle(tc.p, a, b, c); got != tc.want {
			t.Errorf("inTriangle(%v) = %v, expected %v", tc.p, got, tc.want)
		}
	}
}
