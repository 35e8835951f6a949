// Package storage provides SQLite-based persistence for match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pixelpong/internal/game"
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished match as stored on disk.
type MatchRecord struct {
	ID         int64
	LeftScore  int
	RightScore int
	Winner     int // 0 draw, 1 left, 2 right
	Duration   int // configured match length in seconds
	Difficulty string
	VsAI       bool
	CreatedAt  time.Time
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

	// Create parent directories
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
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			left_score INTEGER NOT NULL,
			right_score INTEGER NOT NULL,
			winner INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT '',
			vs_ai INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
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

// SaveResult records a finished match and returns the inserted row ID.
func (s *Store) SaveResult(res game.Result) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches (left_score, right_score, winner, duration_secs, difficulty, vs_ai)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		res.LeftScore, res.RightScore, res.Winner, res.Duration,
		res.Difficulty.String(), res.VsAI,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the last N matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, left_score, right_score, winner, duration_secs, difficulty, vs_ai, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var r MatchRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LeftScore, &r.RightScore, &r.Winner,
			&r.Duration, &r.Difficulty, &r.VsAI, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// WinCounts returns how many stored matches each side won and how many were
// draws.
func (s *Store) WinCounts() (left, right, draws int, err error) {
	rows, err := s.db.Query(`SELECT winner, COUNT(*) FROM matches GROUP BY winner`)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("storage: cannot query win counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var winner, count int
		if err := rows.Scan(&winner, &count); err != nil {
			return 0, 0, 0, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		switch winner {
		case 1:
			left = count
		case 2:
			right = count
		default:
			draws = count
		}
	}

	if err := rows.Err(); err != nil {
		return 0, 0, 0, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return left, right, draws, nil
}

// ClearMatches deletes all stored match results.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
