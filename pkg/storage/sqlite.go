package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// sqliteKV is the default driver: a single kv table in a local SQLite file.
type sqliteKV struct {
	db *sql.DB
}

// OpenSQLite opens (and creates, if needed) the SQLite-backed store at path.
func OpenSQLite(path string) (KV, error) {
	// Expand tilde to home directory if present
	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = homeDir + path[1:]
	}

	// Create the directory structure if it doesn't exist
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	// SQLite will create the database file if it doesn't exist
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteKV{db: db}, nil
}

func (s *sqliteKV) Available() bool {
	if _, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, '') ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		sentinelKey,
	); err != nil {
		return false
	}

	var v string
	if err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, sentinelKey).Scan(&v); err != nil {
		return false
	}

	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, sentinelKey); err != nil {
		return false
	}

	return true
}

func (s *sqliteKV) Get(key string) (string, bool) {
	if !s.Available() {
		return "", false
	}

	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *sqliteKV) Set(key, value string) Status {
	if !s.Available() {
		return StatusUnavailable
	}

	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return classifySQLiteError(err)
	}
	return StatusOK
}

func (s *sqliteKV) Remove(key string) {
	if !s.Available() {
		return
	}
	s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
}

// Close releases the underlying database handle.
func (s *sqliteKV) Close() error {
	return s.db.Close()
}

func classifySQLiteError(err error) Status {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return StatusUnavailable
	}

	switch se.Code {
	case sqlite3.ErrFull, sqlite3.ErrTooBig:
		return StatusQuotaExceeded
	case sqlite3.ErrReadonly, sqlite3.ErrPerm, sqlite3.ErrAuth:
		return StatusDenied
	}
	return StatusUnavailable
}
