// Package storage provides SQLite-based persistence for simulation sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// Session end reasons.
const (
	EndQuit   = "quit"   // Running flag cleared from the game
	EndSignal = "signal" // Termination signal trapped
	EndError  = "error"  // Loop returned an error
)

// SessionRecord is one completed run of the simulation.
type SessionRecord struct {
	ID          int64
	Rule        string // Registered rule ID or B/S notation
	Seed        int64
	StartedAt   time.Time
	EndedAt     time.Time
	Iterations  uint64 // Loop iterations (frames rendered)
	Ticks       uint64 // Update calls
	Events      uint64 // Input events dispatched
	Overruns    uint64 // Iterations that exceeded the tick budget
	Generations uint64
	Population  int // Live cells when the session ended
	EndReason   string
}

// Duration returns how long the session ran.
func (r SessionRecord) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// RuleStats aggregates sessions for one rule.
type RuleStats struct {
	Rule           string
	Sessions       int
	TotalTicks     uint64
	MaxGenerations uint64
	MaxPopulation  int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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

// migrate creates the database schema if it doesn't exist.
// Timestamps are stored as Unix milliseconds.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			rule TEXT NOT NULL,
			seed INTEGER NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL,
			iterations INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			events INTEGER NOT NULL DEFAULT 0,
			overruns INTEGER NOT NULL DEFAULT 0,
			generations INTEGER NOT NULL DEFAULT 0,
			population INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_rule ON sessions(rule);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(r SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (rule, seed, started_at, ended_at, iterations, ticks, events, overruns, generations, population, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Rule, r.Seed, r.StartedAt.UnixMilli(), r.EndedAt.UnixMilli(),
		int64(r.Iterations), int64(r.Ticks), int64(r.Events), int64(r.Overruns),
		int64(r.Generations), r.Population, r.EndReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const sessionColumns = `id, rule, seed, started_at, ended_at, iterations, ticks, events,
	overruns, generations, population, end_reason`

// RecentSessions retrieves the most recent sessions across all rules.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(
		`SELECT `+sessionColumns+` FROM sessions ORDER BY started_at DESC, id DESC LIMIT ?`,
		limit,
	)
}

// SessionsByRule retrieves the most recent sessions for one rule.
func (s *Store) SessionsByRule(rule string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(
		`SELECT `+sessionColumns+` FROM sessions WHERE rule = ? ORDER BY started_at DESC, id DESC LIMIT ?`,
		rule, limit,
	)
}

func (s *Store) querySessions(query string, args ...any) ([]SessionRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var (
			r                                                SessionRecord
			started, ended                                   int64
			iterations, ticks, events, overruns, generations int64
		)
		if err := rows.Scan(&r.ID, &r.Rule, &r.Seed, &started, &ended,
			&iterations, &ticks, &events, &overruns, &generations,
			&r.Population, &r.EndReason); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.StartedAt = time.UnixMilli(started)
		r.EndedAt = time.UnixMilli(ended)
		r.Iterations = uint64(iterations)
		r.Ticks = uint64(ticks)
		r.Events = uint64(events)
		r.Overruns = uint64(overruns)
		r.Generations = uint64(generations)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Rules returns the distinct rules that have recorded sessions, sorted.
func (s *Store) Rules() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT rule FROM sessions ORDER BY rule`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rules: %w", err)
	}
	defer rows.Close()

	var rules []string
	for rows.Next() {
		var r string
		if err := rows.Scan(&r); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

// StatsForRule aggregates all sessions recorded for a rule.
// A rule without sessions yields zero stats, not an error.
func (s *Store) StatsForRule(rule string) (*RuleStats, error) {
	var (
		count                 int
		ticks, maxGen, maxPop sql.NullInt64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), SUM(ticks), MAX(generations), MAX(population)
		 FROM sessions WHERE rule = ?`,
		rule,
	).Scan(&count, &ticks, &maxGen, &maxPop)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	return &RuleStats{
		Rule:           rule,
		Sessions:       count,
		TotalTicks:     uint64(ticks.Int64),
		MaxGenerations: uint64(maxGen.Int64),
		MaxPopulation:  int(maxPop.Int64),
	}, nil
}

// ClearSessions deletes all sessions for a rule, or every session when rule is empty.
func (s *Store) ClearSessions(rule string) error {
	var err error
	if rule == "" {
		_, err = s.db.Exec("DELETE FROM sessions")
	} else {
		_, err = s.db.Exec("DELETE FROM sessions WHERE rule = ?", rule)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}
