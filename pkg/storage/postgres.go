package storage

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// postgresKV stores the two records in a Postgres kv table. A remote medium
// can disappear mid-session, which is exactly what the per-call availability
// check is for.
type postgresKV struct {
	db *sql.DB
}

// OpenPostgres opens the Postgres-backed store using a lib/pq DSN.
func OpenPostgres(dsn string) (KV, error) {
	db, err := sql.Open("postgres", dsn)
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

	return &postgresKV{db: db}, nil
}

func (p *postgresKV) Available() bool {
	if _, err := p.db.Exec(
		`INSERT INTO kv (key, value) VALUES ($1, '') ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		sentinelKey,
	); err != nil {
		return false
	}

	var v string
	if err := p.db.QueryRow(`SELECT value FROM kv WHERE key = $1`, sentinelKey).Scan(&v); err != nil {
		return false
	}

	if _, err := p.db.Exec(`DELETE FROM kv WHERE key = $1`, sentinelKey); err != nil {
		return false
	}

	return true
}

func (p *postgresKV) Get(key string) (string, bool) {
	if !p.Available() {
		return "", false
	}

	var value string
	err := p.db.QueryRow(`SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (p *postgresKV) Set(key, value string) Status {
	if !p.Available() {
		return StatusUnavailable
	}

	_, err := p.db.Exec(
		`INSERT INTO kv (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return classifyPostgresError(err)
	}
	return StatusOK
}

func (p *postgresKV) Remove(key string) {
	if !p.Available() {
		return
	}
	p.db.Exec(`DELETE FROM kv WHERE key = $1`, key)
}

// Close releases the underlying database handle.
func (p *postgresKV) Close() error {
	return p.db.Close()
}

func classifyPostgresError(err error) Status {
	var pe *pq.Error
	if !errors.As(err, &pe) {
		return StatusUnavailable
	}

	switch pe.Code {
	case "53100", "53200", "54000": // disk_full, out_of_memory, program_limit_exceeded
		return StatusQuotaExceeded
	case "42501", "28000", "28P01": // insufficient_privilege, invalid_authorization
		return StatusDenied
	}
	return StatusUnavailable
}
