package game

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/galactix/internal/core"
)

// Background gradient, top to bottom.
const (
	skyTop    = "#0f172a"
	skyBottom = "#1e1b4b"
)

const (
	starCount    = 50
	starParallax = 0.5
)

var starRunes = [...]rune{'·', '•', '✦'}

// viewport maps world units onto screen cells. Row 0 is the HUD; the world
// occupies the remaining rows.
type viewport struct {
	cols, rows int     // Cells available to the world
	sx, sy     float64 // World units per cell
}

func newViewport(dst *core.Screen, width, height float64) viewport {
	cols := dst.Width()
	rows := dst.Height() - 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return viewport{
		cols: cols,
		rows: rows,
		sx:   width / float64(cols),
		sy:   height / float64(rows),
	}
}

// center returns the world position of the middle of cell (cx, cy).
func (v viewport) center(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * v.sx, (float64(cy-1) + 0.5) * v.sy
}

// cell returns the screen cell containing world point (x, y).
func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x / v.sx)), int(math.Floor(y/v.sy)) + 1
}

// Render draws a snapshot. It only reads the snapshot.
func Render(dst *core.Screen, snap Snapshot) {
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	vp := newViewport(dst, snap.Width, snap.Height)

	drawSky(dst, vp)
	drawStars(dst, vp, snap)
	for _, o := range snap.Obstacles {
		drawObstacle(dst, vp, o, snap.LevelColor)
	}
	drawPlayer(dst, vp, snap.Player)
	drawHUD(dst, snap)

	switch snap.Phase {
	case PhaseStart:
		drawCenteredMessage(dst, "GALACTIX CAT", core.ColorAccent,
			fmt.Sprintf("Fly through the gaps. Survive %d levels.", snap.MaxLevel),
			"SPACE to launch  M mute  Q quit")
	case PhaseGameOver:
		drawCenteredMessage(dst, "CRASHED!", core.ColorDanger,
			fmt.Sprintf("Score: %d   High score: %d", snap.Score, snap.HighScore),
			"SPACE or R to retry  TAB history")
	case PhaseVictory:
		drawCenteredMessage(dst, "MISSION COMPLETE!", core.ColorAccent,
			fmt.Sprintf("Final score: %d   High score: %d", snap.Score, snap.HighScore),
			"SPACE or R to fly again  TAB history")
	}
}

func drawSky(dst *core.Screen, vp viewport) {
	top, _ := colorful.Hex(skyTop)
	bottom, _ := colorful.Hex(skyBottom)

	for cy := 1; cy <= vp.rows; cy++ {
		t := 0.0
		if vp.rows > 1 {
			t = float64(cy-1) / float64(vp.rows-1)
		}
		bg := core.Color(top.BlendRgb(bottom, t).Clamped().Hex())
		dst.FillRect(0, cy, vp.cols, 1, core.Cell{Rune: ' ', BG: bg})
	}
}

// drawStars scatters a fixed pattern of stars that drifts left with distance.
func drawStars(dst *core.Screen, vp viewport, snap Snapshot) {
	shift := float64(snap.Distance) * starParallax
	for i := 0; i < starCount; i++ {
		size := i%3 + 1
		x := wrap(float64(i*137)-shift, snap.Width)
		y := wrap(float64(i*293), snap.Height)
		cx, cy := vp.cell(x, y)
		dst.SetColor(cx, cy, starRunes[size-1], core.ColorStar)
	}
}

func wrap(v, m float64) float64 {
	v = math.Mod(v, m)
	if v < 0 {
		v += m
	}
	return v
}

// drawObstacle fills the pipe with the level color and its interior with a
// darker shade.
func drawObstacle(dst *core.Screen, vp viewport, o Obstacle, color string) {
	x0, y0 := vp.cell(o.X, o.Y)
	x1 := int(math.Ceil(o.Right() / vp.sx))
	y1 := int(math.Ceil((o.Y+o.H)/vp.sy)) + 1
	y0 = core.Clamp(y0, 1, dst.Height())
	if x1 <= x0 || y1 <= y0 {
		return
	}

	cells := core.NewRect(float64(x0), float64(y0), float64(x1-x0), float64(y1-y0))
	fillCells(dst, cells, core.Cell{Rune: ' ', BG: core.Color(color)})
	if inner := cells.Inset(1); inner.W > 0 && inner.H > 0 {
		fillCells(dst, inner, core.Cell{Rune: ' ', BG: shade(color, 0.35)})
	}
}

// fillCells fills a rectangle given in whole cells.
func fillCells(dst *core.Screen, r core.Rect, c core.Cell) {
	dst.FillRect(int(r.X), int(r.Y), int(r.W), int(r.H), c)
}

// shade darkens a hex color toward black by amount in [0, 1].
func shade(hex string, amount float64) core.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.Color(hex)
	}
	return core.Color(c.BlendRgb(colorful.Color{}, amount).Clamped().Hex())
}

type point struct{ x, y float64 }

// inTriangle reports whether p lies inside triangle abc, edges included.
func inTriangle(p, a, b, c point) bool {
	cross := func(o, u, v point) float64 {
		return (u.x-o.x)*(v.y-o.y) - (u.y-o.y)*(v.x-o.x)
	}
	d1 := cross(a, b, p)
	d2 := cross(b, c, p)
	d3 := cross(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// playerPart returns the rune and color of the sprite at a point in the
// player's unrotated local frame, whose origin is the hitbox center.
func playerPart(p Player, lx, ly float64) (rune, core.Color, bool) {
	hw, hh := p.W/2, p.H/2
	local := point{lx, ly}

	if lx >= -hw && lx <= hw && ly >= -hh && ly <= hh {
		if lx >= 0 && lx <= 15 && ly >= -5 && ly <= 5 {
			return '█', core.ColorVisor, true
		}
		return '█', core.ColorWhite, true
	}
	if inTriangle(local, point{-hw, -hh}, point{-hw + 10, -hh - 10}, point{-hw + 20, -hh}) {
		return '▲', core.ColorWhite, true
	}
	if inTriangle(local, point{-hw, 0}, point{-hw - 15, 5}, point{-hw, 10}) {
		return '▓', core.ColorFlame, true
	}
	return 0, core.ColorDefault, false
}

// drawPlayer samples every cell near the player, rotating the cell center
// back into the sprite's local frame.
func drawPlayer(dst *core.Screen, vp viewport, p Player) {
	cx, cy := p.Rect().Center()
	theta := p.Rotation * math.Pi / 180
	sin, cos := math.Sincos(-theta)

	reach := math.Hypot(p.W/2+15, p.H/2+10)
	minX, minY := vp.cell(cx-reach, cy-reach)
	maxX, maxY := vp.cell(cx+reach, cy+reach)

	body := false
	for row := max(minY, 1); row <= maxY; row++ {
		for col := minX; col <= maxX; col++ {
			wx, wy := vp.center(col, row)
			dx, dy := wx-cx, wy-cy
			lx := dx*cos - dy*sin
			ly := dx*sin + dy*cos
			if r, fg, ok := playerPart(p, lx, ly); ok {
				dst.SetColor(col, row, r, fg)
				body = body || r == '█'
			}
		}
	}

	// The body is smaller than a cell on short terminals.
	if !body {
		col, row := vp.cell(cx, cy)
		dst.SetColor(col, max(row, 1), '█', core.ColorWhite)
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.FillRect(0, 0, dst.Width(), 1, core.Cell{Rune: ' ', FG: core.ColorHUD, BG: core.ColorPanel})

	// The row is already painted in HUD colors.
	dst.DrawText(0, 0, fmt.Sprintf(" SCORE %d   LEVEL %d/%d   HI %d", snap.Score, snap.Level, snap.MaxLevel, snap.HighScore))

	sound, fg := "♪ ON ", core.ColorHUD
	if snap.Muted {
		sound, fg = "♪ OFF ", core.ColorMuted
	}
	dst.DrawTextColor(dst.Width()-len([]rune(sound)), 0, sound, fg)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, titleColor core.Color, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, core.Cell{Rune: ' ', BG: core.ColorPanel})
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorHUD)

	dst.DrawTextCentered(boxY+1, title, titleColor)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorHUD)
	}
}
