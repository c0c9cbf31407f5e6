// Package storage keeps the run history of one play session in an in-memory
// SQLite database. Nothing is written to disk; the history ends with the
// process. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome values recorded for a run.
const (
	OutcomeCrashed = "game_over"
	OutcomeVictory = "victory"
)

// Store holds the session's run history.
type Store struct {
	db *sql.DB
}

// Run is one completed run.
type Run struct {
	ID        int64
	Score     int
	Level     int
	Distance  int    // Ticks survived
	Outcome   string // OutcomeCrashed or OutcomeVictory
	Cause     string // Crash cause, empty on victory
	CreatedAt time.Time
}

// Stats contains aggregated statistics for the session.
type Stats struct {
	Runs          int
	Victories     int
	HighScore     int
	AvgScore      float64
	BestLevel     int
	TotalDistance int64
}

// OpenMemory creates an empty in-memory store.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			distance INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			cause TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database and discards the history.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a completed run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Outcome != OutcomeCrashed && r.Outcome != OutcomeVictory {
		return 0, fmt.Errorf("storage: unknown outcome %q", r.Outcome)
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (score, level, distance, outcome, cause) VALUES (?, ?, ?, ?, ?)",
		r.Score, r.Level, r.Distance, r.Outcome, r.Cause,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns returns the best runs, highest score first. Ties go to the
// earlier run.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, score, level, distance, outcome, cause, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRuns returns the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, score, level, distance, outcome, cause, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.Level, &r.Distance, &r.Outcome, &r.Cause, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// HighScore returns the best score recorded. Returns 0 if there are no runs.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats returns aggregated statistics over every recorded run.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        COALESCE(MAX(level), 0),
		        COALESCE(SUM(distance), 0)
		 FROM runs`,
		OutcomeVictory,
	).Scan(&st.Runs, &st.Victories, &st.HighScore, &st.AvgScore, &st.BestLevel, &st.TotalDistance)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return st, nil
}

// parseTime handles both time.Time and string DATETIME values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
