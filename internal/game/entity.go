package game

import (
	"math"

	"github.com/vovakirdan/galactix/internal/core"
)

// Phase is the session's position in its lifecycle.
type Phase int

const (
	PhaseStart    Phase = iota // Title screen, no run yet
	PhasePlaying               // Simulation ticking
	PhaseGameOver              // Crashed; waiting for restart
	PhaseVictory               // Cleared the last level; waiting for restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends a run.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseVictory
}

// Cause records why a run ended in a crash.
type Cause int

const (
	CauseNone     Cause = iota
	CauseBounds         // Touched the floor or the ceiling
	CauseObstacle       // Overlapped a pipe
)

// String returns the cause name.
func (c Cause) String() string {
	switch c {
	case CauseBounds:
		return "bounds"
	case CauseObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// Player is the cat. X never changes during a run.
type Player struct {
	X, Y     float64
	W, H     float64
	DY       float64 // Vertical velocity, positive is down
	Rotation float64 // Cosmetic tilt in degrees
}

// Rect returns the player's hitbox.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Kind distinguishes static from moving obstacles.
type Kind int

const (
	KindStatic Kind = iota
	KindMoving
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindMoving {
		return "moving"
	}
	return "static"
}

// Motion describes how an obstacle moves vertically.
// It is either Static or Oscillation and is fixed at spawn time.
type Motion interface {
	Kind() Kind
	isMotion()
}

// Static obstacles keep their spawn height.
type Static struct{}

// Kind implements Motion.
func (Static) Kind() Kind { return KindStatic }
func (Static) isMotion()  {}

// Oscillation swings an obstacle on a sine wave about its spawn height.
type Oscillation struct {
	InitialY  float64
	Amplitude float64
	Period    float64 // Seconds per radian
	Phase     float64 // Radians, shared by both pipes of a pair
}

// Kind implements Motion.
func (Oscillation) Kind() Kind { return KindMoving }
func (Oscillation) isMotion()  {}

// At returns the obstacle's y after elapsed seconds of wall-clock time.
func (o Oscillation) At(elapsed float64) float64 {
	return o.InitialY + o.Amplitude*math.Sin(elapsed/o.Period+o.Phase)
}

// Obstacle is one pipe. Pipes always exist in top/bottom pairs that share a
// Pair number.
type Obstacle struct {
	ID     int
	Pair   int
	X, Y   float64
	W, H   float64
	Passed bool // The player has cleared this pipe
	Motion Motion
}

// Rect returns the obstacle's hitbox.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Right returns the obstacle's trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.W
}

// Kind returns the obstacle's motion kind.
func (o Obstacle) Kind() Kind {
	if o.Motion == nil {
		return KindStatic
	}
	return o.Motion.Kind()
}

// Event is a notification for collaborators outside the simulation,
// such as the audio player and the run history.
type Event int

const (
	EventStarted Event = iota + 1 // A run began (start or restart)
	EventCrashed                  // The run ended in GAME_OVER
	EventLevelUp                  // The level increased
	EventVictory                  // The last level was cleared
	EventMuted                    // Music was muted
	EventUnmuted                  // Music was unmuted
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventCrashed:
		return "crashed"
	case EventLevelUp:
		return "level_up"
	case EventVictory:
		return "victory"
	case EventMuted:
		return "muted"
	case EventUnmuted:
		return "unmuted"
	default:
		return "unknown"
	}
}
