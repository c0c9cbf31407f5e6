// Package game implements the Galactix Cat simulation: a cat with a jetpack
// falls under gravity, jumps on input and must fly through gaps in pairs of
// pipes across a fixed table of levels.
//
// All mutable state lives in a Session. The host calls Tick once per frame
// while the session is PLAYING and reads a Snapshot to draw it.
package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/galactix/internal/config"
)

// Rotation limits of the player sprite, in degrees.
const (
	maxTilt  = 25.0
	tiltStep = 2.0
)

// Option configures a Session.
type Option func(*Session)

// WithClock sets the time source used for moving obstacles.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithStrictInvariants makes invariant violations panic instead of being
// logged and skipped.
func WithStrictInvariants(strict bool) Option {
	return func(s *Session) {
		s.strict = strict
	}
}

// WithSeed sets the RNG seed for obstacle placement.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// Session is one play session: the current run plus the session high score.
// It is not safe for concurrent use; the host drives it from a single loop.
type Session struct {
	cfg    config.Config
	levels config.LevelTable
	log    *log.Logger
	now    func() time.Time
	strict bool
	seed   int64

	spawner *Spawner
	field   ObstacleField
	player  Player

	phase     Phase
	cause     Cause
	score     int
	highScore int
	level     int
	distance  int // Ticks survived this run
	progress  int // Pairs cleared on the current level
	muted     bool
	runStart  time.Time
	corrupt   bool // Cleanup failure already logged this run

	events []Event
}

// NewSession creates a session in the START phase.
// cfg must have passed Validate.
func NewSession(cfg config.Config, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		levels: cfg.Table(),
		log:    log.New(io.Discard),
		now:    time.Now,
		phase:  PhaseStart,
		level:  1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.spawner = NewSpawner(s.seed, cfg.Playfield, cfg.Obstacles)
	s.resetPlayer()
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Levels returns the session's level table.
func (s *Session) Levels() config.LevelTable {
	return s.levels
}

// Start begins the first run. It is a no-op outside START.
func (s *Session) Start() bool {
	if s.phase != PhaseStart {
		return false
	}
	s.beginRun()
	return true
}

// Restart begins a fresh run after GAME_OVER or VICTORY.
// It is a no-op in any other phase.
func (s *Session) Restart() bool {
	if !s.phase.Terminal() {
		return false
	}
	s.beginRun()
	return true
}

// Jump applies the upward impulse while PLAYING. In any other phase it
// starts or restarts a run instead.
func (s *Session) Jump() {
	switch s.phase {
	case PhasePlaying:
		s.player.DY = s.cfg.Physics.JumpImpulse
		s.player.Rotation = -maxTilt
	case PhaseStart:
		s.Start()
	default:
		s.Restart()
	}
}

// ToggleMute flips the music flag. It is accepted in every phase.
func (s *Session) ToggleMute() {
	s.muted = !s.muted
	if s.muted {
		s.emit(EventMuted)
	} else {
		s.emit(EventUnmuted)
	}
}

// Muted reports whether music is muted.
func (s *Session) Muted() bool {
	return s.muted
}

// SetMuted sets the mute flag without emitting an event.
// It is used to apply the initial preference.
func (s *Session) SetMuted(muted bool) {
	s.muted = muted
}

// DrainEvents returns the events emitted since the last call.
func (s *Session) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// beginRun resets every per-run value. The RNG and the high score carry over.
func (s *Session) beginRun() {
	s.resetPlayer()
	s.field.Reset()
	s.score = 0
	s.level = 1
	s.distance = 0
	s.progress = 0
	s.cause = CauseNone
	s.corrupt = false
	s.runStart = s.now()
	s.phase = PhasePlaying
	s.emit(EventStarted)
	s.log.Debug("run started", "seed", s.seed, "high_score", s.highScore)
}

func (s *Session) resetPlayer() {
	s.player = Player{
		X: s.cfg.Player.X,
		Y: s.cfg.Playfield.Height / 2,
		W: s.cfg.Player.Width,
		H: s.cfg.Player.Height,
	}
}

// crash ends the run in GAME_OVER.
func (s *Session) crash(cause Cause) {
	s.phase = PhaseGameOver
	s.cause = cause
	s.recordHighScore()
	s.emit(EventCrashed)
	s.log.Debug("crashed",
		"cause", cause,
		"score", s.score,
		"level", s.level,
		"distance", s.distance,
		"y", s.player.Y,
	)
}

// clearPair counts one cleared pair and advances the level or ends the run.
func (s *Session) clearPair() {
	s.progress++
	if s.progress < s.cfg.Progression.PairsPerLevel {
		return
	}
	s.progress = 0

	if s.level >= s.levels.Max() {
		s.phase = PhaseVictory
		s.recordHighScore()
		s.emit(EventVictory)
		s.log.Info("victory", "score", s.score, "distance", s.distance)
		return
	}

	s.level++
	s.emit(EventLevelUp)
	s.log.Debug("level up", "level", s.level, "score", s.score)
}

func (s *Session) recordHighScore() {
	if s.score > s.highScore {
		s.highScore = s.score
	}
}

// removeHeadPair drops the oldest pair. A head that is not a complete pair
// means the field was corrupted: strict sessions panic, others log once per
// run and keep the field as is.
func (s *Session) removeHeadPair() bool {
	if err := s.field.PopPair(); err != nil {
		if s.strict {
			panic(err)
		}
		if !s.corrupt {
			s.corrupt = true
			s.log.Error("skipping cleanup", "error", err, "obstacles", s.field.Len())
		}
		return false
	}
	return true
}
