// Package config provides YAML-based game configuration loading and the
// per-level tuning table.
package config

// Config contains all tunable parameters of the game.
type Config struct {
	Physics     Physics     `yaml:"physics"`
	Playfield   Playfield   `yaml:"playfield"`
	Player      Player      `yaml:"player"`
	Obstacles   Obstacles   `yaml:"obstacles"`
	Progression Progression `yaml:"progression"`
	Levels      []Level     `yaml:"levels"`
}

// Physics defines the player's motion parameters, in world units per tick.
type Physics struct {
	Gravity          float64 `yaml:"gravity"`
	JumpImpulse      float64 `yaml:"jump_impulse"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	// ClampFall enforces TerminalVelocity. Off by default: the fall speed
	// grows without bound until the run ends.
	ClampFall bool `yaml:"clamp_fall"`
}

// Playfield defines the world size. All other lengths are in the same units.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Player defines the player's fixed column and hitbox.
// The player always starts vertically centered in the playfield.
type Player struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Obstacles defines pipe geometry and motion.
type Obstacles struct {
	Width     float64 `yaml:"width"`
	MinHeight float64 `yaml:"min_height"`
	// Amplitude is the vertical swing of moving pipes.
	Amplitude float64 `yaml:"amplitude"`
	// OscillationPeriod is seconds per radian of the swing.
	OscillationPeriod float64 `yaml:"oscillation_period"`
	// MaxPhase bounds the random phase offset shared by a pair.
	MaxPhase float64 `yaml:"max_phase"`
	// CullMargin is how far past the left edge a pipe's trailing edge must
	// travel before its pair is removed.
	CullMargin float64 `yaml:"cull_margin"`
}

// Progression defines scoring and level advancement.
type Progression struct {
	// PairsPerLevel is the number of pipe pairs to survive per level.
	PairsPerLevel int `yaml:"pairs_per_level"`
	// TicksPerPoint is the number of survived ticks worth one point.
	TicksPerPoint int `yaml:"ticks_per_point"`
}

// Level is the immutable tuning for one level.
type Level struct {
	Number      int     `yaml:"number"`
	Speed       float64 `yaml:"speed"`
	ObstacleGap float64 `yaml:"obstacle_gap"`
	OpeningSize float64 `yaml:"opening_size"`
	Moving      bool    `yaml:"moving"`
	Color       string  `yaml:"color"`
}

// Table returns the level table for this configuration.
func (c Config) Table() LevelTable {
	return NewLevelTable(c.Levels)
}
