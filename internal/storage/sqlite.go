package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// snapshotName is the single row the whole store blob lives under.
const snapshotName = "practice-log"

// SQLite persists the store blob in one row of a local SQLite database.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLite, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Load() ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(
		`SELECT payload FROM snapshots WHERE name = ?`, snapshotName,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return payload, nil
}

func (s *SQLite) Save(blob []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO snapshots (name, payload, updated_at)
		 VALUES (?, ?, datetime('now'))
		 ON CONFLICT(name) DO UPDATE SET
		   payload = excluded.payload,
		   updated_at = excluded.updated_at`,
		snapshotName, blob,
	)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
