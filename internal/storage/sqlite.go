// Package storage provides SQLite-based persistence for leaderboard records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/scores"
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Stats contains aggregated leaderboard statistics.
type Stats struct {
	Count      int
	HighScore  int64
	AvgScore   float64
	LastPlayed int64 // Unix milliseconds, 0 when empty
}

var _ scores.Store = (*Store)(nil)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC, id ASC);
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

// Append records a new entry.
func (s *Store) Append(ctx context.Context, r scores.Record) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO scores (name, score, at) VALUES (?, ?, ?)",
		r.Name, r.Score, r.At,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// All returns every record in insertion order.
func (s *Store) All(ctx context.Context) ([]scores.Record, error) {
	return s.query(ctx, `SELECT name, score, at FROM scores ORDER BY id ASC`)
}

// TopScores returns the n best records, highest first. Equal scores keep
// insertion order. A non-positive n defaults to scores.DefaultLimit.
func (s *Store) TopScores(ctx context.Context, n int) ([]scores.Record, error) {
	if n <= 0 {
		n = scores.DefaultLimit
	}
	return s.query(ctx,
		`SELECT name, score, at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		n,
	)
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]scores.Record, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	entries := []scores.Record{}
	for rows.Next() {
		var r scores.Record
		if err := rows.Scan(&r.Name, &r.Score, &r.At); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats returns aggregated statistics over every record.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(MAX(at), 0)
		 FROM scores`,
	).Scan(&st.Count, &st.HighScore, &st.AvgScore, &st.LastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return st, nil
}

// Clear deletes every record.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
