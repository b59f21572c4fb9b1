package storage

import "fmt"

// Open creates a KV store for the configured driver. dsn is a file path for
// sqlite and a lib/pq connection string for postgres.
func Open(driver, dsn string) (KV, error) {
	switch driver {
	case "", "sqlite":
		return OpenSQLite(dsn)
	case "postgres":
		return OpenPostgres(dsn)
	}
	return nil, fmt.Errorf("unknown storage driver: %s", driver)
}

// Close closes kv if the driver holds a closable handle.
func Close(kv KV) error {
	if c, ok := kv.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
