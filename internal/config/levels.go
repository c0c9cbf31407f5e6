package config

// LevelTable maps level numbers to their tuning.
// It is built once at startup and never mutated.
type LevelTable struct {
	levels []Level
}

// NewLevelTable builds a table from levels ordered by number, starting at 1.
// The slice is copied.
func NewLevelTable(levels []Level) LevelTable {
	cp := make([]Level, len(levels))
	copy(cp, levels)
	return LevelTable{levels: cp}
}

// Max returns the highest level number.
func (t LevelTable) Max() int {
	return len(t.levels)
}

// Lookup returns the tuning for level n. Levels past the end reuse the last
// entry and levels below 1 use the first.
func (t LevelTable) Lookup(n int) Level {
	if len(t.levels) == 0 {
		return Level{}
	}
	idx := n - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(t.levels) {
		idx = len(t.levels) - 1
	}
	return t.levels[idx]
}

// Levels returns a copy of all entries.
func (t LevelTable) Levels() []Level {
	cp := make([]Level, len(t.levels))
	copy(cp, t.levels)
	return cp
}
