// Package storage provides SQLite-based persistence for pilot high scores
// and run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-asteroids/internal/session"
)

// ErrNoIdentity is returned when a score is recorded without a pilot.
var ErrNoIdentity = errors.New("storage: empty pilot identity")

var (
	_ session.ScoreStore  = (*Store)(nil)
	_ session.RunRecorder = (*Store)(nil)
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// PilotEntry is one row of the leaderboard.
type PilotEntry struct {
	Identity  string
	HighScore int
	Games     int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer at a time; SSH sessions share the store
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

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS pilots (
			identity TEXT PRIMARY KEY,
			high_score INTEGER NOT NULL DEFAULT 0,
			games INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_pilots_top ON pilots(high_score DESC);

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			pilot TEXT NOT NULL,
			map_id TEXT NOT NULL,
			ship_id TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			started_ms INTEGER NOT NULL,
			ended_ms INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pilot ON runs(pilot, ended_ms DESC);
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

// HighScore returns the pilot's best score, or 0 for an unknown pilot.
func (s *Store) HighScore(identity string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT high_score FROM pilots WHERE identity = ?",
		identity,
	).Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// RecordScore stores score as the pilot's best if it beats the stored
// one and counts the game either way.
func (s *Store) RecordScore(identity string, score int) error {
	if strings.TrimSpace(identity) == "" {
		return ErrNoIdentity
	}
	_, err := s.db.Exec(
		`INSERT INTO pilots (identity, high_score, games)
		 VALUES (?, ?, 1)
		 ON CONFLICT(identity) DO UPDATE SET
		   high_score = MAX(high_score, excluded.high_score),
		   games = games + 1,
		   updated_at = CURRENT_TIMESTAMP`,
		identity, max(score, 0),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record score: %w", err)
	}
	return nil
}

// TopPilots returns the best pilots, highest score first.
func (s *Store) TopPilots(limit int) ([]PilotEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT identity, high_score, games, updated_at
		 FROM pilots
		 ORDER BY high_score DESC, identity ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query pilots: %w", err)
	}
	defer rows.Close()

	var entries []PilotEntry
	for rows.Next() {
		var e PilotEntry
		var updatedAt any
		if err := rows.Scan(&e.Identity, &e.HighScore, &e.Games, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearPilot forgets a pilot's best score and run history.
func (s *Store) ClearPilot(identity string) error {
	if _, err := s.db.Exec("DELETE FROM pilots WHERE identity = ?", identity); err != nil {
		return fmt.Errorf("storage: cannot clear pilot: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs WHERE pilot = ?", identity); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SaveRun appends a finished game to the run history.
func (s *Store) SaveRun(r session.Run) error {
	if strings.TrimSpace(r.Pilot) == "" {
		return ErrNoIdentity
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, pilot, map_id, ship_id, score, ticks, started_ms, ended_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.Pilot,
		r.Map,
		r.Ship,
		r.Score,
		int64(r.Ticks), //#nosec G115 -- tick counts stay far below MaxInt64
		r.StartedAt.UnixMilli(),
		r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}
	return nil
}

// RecentRuns returns the latest runs, newest first. An empty pilot
// returns runs from everyone.
func (s *Store) RecentRuns(pilot string, limit int) ([]session.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, pilot, map_id, ship_id, score, ticks, started_ms, ended_ms FROM runs`
	args := []any{}
	if pilot != "" {
		query += ` WHERE pilot = ?`
		args = append(args, pilot)
	}
	query += ` ORDER BY ended_ms DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []session.Run
	for rows.Next() {
		var r session.Run
		var ticks, started, ended int64
		if err := rows.Scan(&r.ID, &r.Pilot, &r.Map, &r.Ship, &r.Score, &ticks, &started, &ended); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
		r.StartedAt = time.UnixMilli(started)
		r.EndedAt = time.UnixMilli(ended)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
