package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const defaultTable = "kv_store"

type sqlStore struct {
	db    *sql.DB
	table string
	// Placeholder style differs between drivers: $1 for postgres, ? for sqlite.
	get, set, del, keys string
}

// NewPostgresStore keeps entries in a two-column table, created on first use.
func NewPostgresStore(ctx context.Context, db *sql.DB, table string) (Store, error) {
	if table == "" {
		table = defaultTable
	}
	t := pq.QuoteIdentifier(table)

	schema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			key        TEXT PRIMARY KEY,
			value      BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, t)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to create table %s: %w", table, err)
	}

	return &sqlStore{
		db:    db,
		table: table,
		get:   fmt.Sprintf(`SELECT value FROM %s WHERE key = $1`, t),
		set: fmt.Sprintf(`
			INSERT INTO %s (key, value, updated_at) VALUES ($1, $2, NOW())
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`, t),
		del:  fmt.Sprintf(`DELETE FROM %s WHERE key = $1`, t),
		keys: fmt.Sprintf(`SELECT key FROM %s WHERE LEFT(key, LENGTH($1)) = $1 ORDER BY key`, t),
	}, nil
}

func (s *sqlStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, s.get, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read key %q from %s: %w", key, s.table, err)
	}
	return value, nil
}

func (s *sqlStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, s.set, key, value); err != nil {
		return fmt.Errorf("failed to write key %q to %s: %w", key, s.table, err)
	}
	return nil
}

func (s *sqlStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.del, key); err != nil {
		return fmt.Errorf("failed to delete key %q from %s: %w", key, s.table, err)
	}
	return nil
}

func (s *sqlStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, s.keys, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys with prefix %q: %w", prefix, err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating keys: %w", err)
	}
	return keys, nil
}
