package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteStore opens (or creates) a single-file store at path. The returned
// close function releases the database handle.
func NewSQLiteStore(ctx context.Context, path string) (Store, func() error, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	// sqlite serializes writers; one connection avoids "database is locked".
	db.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to initialize sqlite schema: %w", err)
	}

	s := &sqlStore{
		db:    db,
		table: defaultTable,
		get:   `SELECT value FROM kv_store WHERE key = ?`,
		set: `
			INSERT INTO kv_store (key, value, updated_at) VALUES (?1, ?2, strftime('%s', 'now'))
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		del:  `DELETE FROM kv_store WHERE key = ?`,
		keys: `SELECT key FROM kv_store WHERE substr(key, 1, length(?1)) = ?1 ORDER BY key`,
	}
	return s, db.Close, nil
}
