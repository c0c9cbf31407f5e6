package game

import "github.com/vovakirdan/galactix/internal/core"

// Tick advances the run by one frame. It does nothing outside PLAYING.
//
// A crash or victory ends the tick immediately; the remaining steps do not
// run for that frame.
func (s *Session) Tick() {
	if s.phase != PhasePlaying {
		return
	}

	phys := s.cfg.Physics
	field := s.cfg.Playfield
	lvl := s.levels.Lookup(s.level)

	// Semi-implicit Euler: velocity first, then position.
	s.player.DY += phys.Gravity
	if phys.ClampFall && s.player.DY > phys.TerminalVelocity {
		s.player.DY = phys.TerminalVelocity
	}
	s.player.Y += s.player.DY
	s.player.Rotation = tilt(s.player.Rotation, s.player.DY)

	if s.player.Y <= 0 || s.player.Y+s.player.H >= field.Height {
		s.crash(CauseBounds)
		return
	}

	if s.field.NeedsSpawn(field.Width, lvl.ObstacleGap) {
		s.field.PushPair(s.spawner.Spawn(lvl.OpeningSize, lvl.Moving))
	}
	elapsed := s.now().Sub(s.runStart).Seconds()
	s.field.Advance(lvl.Speed, elapsed)

	if s.field.Collides(s.player.Rect()) {
		s.crash(CauseObstacle)
		return
	}

	s.field.MarkPassed(s.player.X)

	s.distance++
	if s.distance%s.cfg.Progression.TicksPerPoint == 0 {
		s.score++
	}

	if s.field.HeadOffscreen(s.cfg.Obstacles.CullMargin) && s.removeHeadPair() {
		s.clearPair()
	}
}

// tilt moves the rotation one step toward the nose-up angle while climbing
// and toward the nose-down angle otherwise.
func tilt(rotation, dy float64) float64 {
	if dy < 0 {
		return core.ClampF(rotation-tiltStep, -maxTilt, maxTilt)
	}
	return core.ClampF(rotation+tiltStep, -maxTilt, maxTilt)
}
