package config

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Validate checks that the configuration describes a playable game.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		add("playfield: size must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	}
	if c.Physics.Gravity <= 0 {
		add("physics: gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		add("physics: jump_impulse must be negative (upward), got %v", c.Physics.JumpImpulse)
	}
	if c.Physics.ClampFall && c.Physics.TerminalVelocity <= 0 {
		add("physics: terminal_velocity must be positive when clamp_fall is set, got %v", c.Physics.TerminalVelocity)
	}

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		add("player: size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	}
	if c.Player.X < 0 || c.Player.X+c.Player.Width > c.Playfield.Width {
		add("player: x=%v does not fit in a playfield %v wide", c.Player.X, c.Playfield.Width)
	}
	if c.Player.Height >= c.Playfield.Height/2 {
		add("player: height %v leaves no room to fly", c.Player.Height)
	}

	if c.Obstacles.Width <= 0 {
		add("obstacles: width must be positive, got %v", c.Obstacles.Width)
	}
	if c.Obstacles.MinHeight < 0 {
		add("obstacles: min_height must not be negative, got %v", c.Obstacles.MinHeight)
	}
	if c.Obstacles.OscillationPeriod <= 0 {
		add("obstacles: oscillation_period must be positive, got %v", c.Obstacles.OscillationPeriod)
	}
	if c.Obstacles.MaxPhase < 0 {
		add("obstacles: max_phase must not be negative, got %v", c.Obstacles.MaxPhase)
	}
	if c.Obstacles.CullMargin < 0 {
		add("obstacles: cull_margin must not be negative, got %v", c.Obstacles.CullMargin)
	}

	if c.Progression.PairsPerLevel <= 0 {
		add("progression: pairs_per_level must be positive, got %d", c.Progression.PairsPerLevel)
	}
	if c.Progression.TicksPerPoint <= 0 {
		add("progression: ticks_per_point must be positive, got %d", c.Progression.TicksPerPoint)
	}

	if len(c.Levels) == 0 {
		add("levels: table is empty")
	}
	for i, l := range c.Levels {
		if err := c.validateLevel(i, l); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// validateLevel checks one table entry. Entries must be numbered 1..N in order.
func (c Config) validateLevel(i int, l Level) error {
	var errs []error
	if l.Number != i+1 {
		errs = append(errs, fmt.Errorf("levels[%d]: number is %d, expected %d", i, l.Number, i+1))
	}
	if l.Speed <= 0 {
		errs = append(errs, fmt.Errorf("level %d: speed must be positive, got %v", l.Number, l.Speed))
	}
	if l.ObstacleGap <= 0 {
		errs = append(errs, fmt.Errorf("level %d: obstacle_gap must be positive, got %v", l.Number, l.ObstacleGap))
	}
	if l.OpeningSize <= c.Player.Height {
		errs = append(errs, fmt.Errorf("level %d: opening_size %v is not larger than the player", l.Number, l.OpeningSize))
	}
	// The spawner draws the top pipe from [min, height-opening-min].
	if l.OpeningSize+2*c.Obstacles.MinHeight > c.Playfield.Height {
		errs = append(errs, fmt.Errorf("level %d: opening_size %v plus two pipes of min_height %v exceeds playfield height %v",
			l.Number, l.OpeningSize, c.Obstacles.MinHeight, c.Playfield.Height))
	}
	if _, err := colorful.Hex(l.Color); err != nil {
		errs = append(errs, fmt.Errorf("level %d: invalid color %q: %w", l.Number, l.Color, err))
	}
	return errors.Join(errs...)
}
