package config

import (
	_ "embed"
)

//go:embed defaults/galactix.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:          0.4,
			JumpImpulse:      -7.5,
			TerminalVelocity: 8,
			ClampFall:        false,
		},
		Playfield: Playfield{
			Width:  800,
			Height: 600,
		},
		Player: Player{
			X:      100,
			Width:  40,
			Height: 30,
		},
		Obstacles: Obstacles{
			Width:             60,
			MinHeight:         50,
			Amplitude:         50,
			OscillationPeriod: 0.3,
			MaxPhase:          100,
			CullMargin:        100,
		},
		Progression: Progression{
			PairsPerLevel: 10,
			TicksPerPoint: 50,
		},
		Levels: DefaultLevels(),
	}
}

// DefaultLevels returns the built-in twelve-level table.
func DefaultLevels() []Level {
	return []Level{
		// Static, slow, easy
		{Number: 1, Speed: 3, ObstacleGap: 300, OpeningSize: 220, Moving: false, Color: "#4ade80"},
		{Number: 2, Speed: 3.5, ObstacleGap: 280, OpeningSize: 210, Moving: false, Color: "#4ade80"},
		{Number: 3, Speed: 4, ObstacleGap: 260, OpeningSize: 200, Moving: false, Color: "#22c55e"},
		{Number: 4, Speed: 4.5, ObstacleGap: 250, OpeningSize: 190, Moving: false, Color: "#22c55e"},

		// Moving pipes, medium speed
		{Number: 5, Speed: 5, ObstacleGap: 240, OpeningSize: 180, Moving: true, Color: "#facc15"},
		{Number: 6, Speed: 5.5, ObstacleGap: 230, OpeningSize: 170, Moving: true, Color: "#eab308"},
		{Number: 7, Speed: 6, ObstacleGap: 220, OpeningSize: 160, Moving: true, Color: "#ca8a04"},
		{Number: 8, Speed: 6.5, ObstacleGap: 210, OpeningSize: 155, Moving: true, Color: "#d97706"},

		// Fast, tight, hard
		{Number: 9, Speed: 7, ObstacleGap: 200, OpeningSize: 150, Moving: true, Color: "#f87171"},
		{Number: 10, Speed: 7.5, ObstacleGap: 190, OpeningSize: 145, Moving: true, Color: "#ef4444"},
		{Number: 11, Speed: 8, ObstacleGap: 180, OpeningSize: 140, Moving: true, Color: "#dc2626"},
		{Number: 12, Speed: 9, ObstacleGap: 170, OpeningSize: 130, Moving: true, Color: "#991b1b"},
	}
}
