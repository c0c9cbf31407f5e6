package game

// Snapshot is a read-only copy of everything needed to draw a frame.
type Snapshot struct {
	Phase     Phase
	Cause     Cause
	Player    Player
	Obstacles []Obstacle

	Score     int
	HighScore int
	Level     int
	MaxLevel  int
	Distance  int
	Progress  int
	Muted     bool

	// World size and the current level's pipe color.
	Width, Height float64
	LevelColor    string
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]Obstacle, s.field.Len())
	copy(obstacles, s.field.Items())

	return Snapshot{
		Phase:      s.phase,
		Cause:      s.cause,
		Player:     s.player,
		Obstacles:  obstacles,
		Score:      s.score,
		HighScore:  s.highScore,
		Level:      s.level,
		MaxLevel:   s.levels.Max(),
		Distance:   s.distance,
		Progress:   s.progress,
		Muted:      s.muted,
		Width:      s.cfg.Playfield.Width,
		Height:     s.cfg.Playfield.Height,
		LevelColor: s.levels.Lookup(s.level).Color,
	}
}
