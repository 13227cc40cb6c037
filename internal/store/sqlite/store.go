// Package sqlite implements the key-value store on a single SQLite table,
// using the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"punchclock/internal/errors"
	"punchclock/internal/store"
	"punchclock/internal/store/sqlite/migrations"
)

// Fallback deadlines when no configuration is supplied.
const (
	DefaultQueryTimeout = 10 * time.Second
	DefaultWriteTimeout = 5 * time.Second
)

// KV implements store.Store on a kv(key, value) table. Each Put replaces
// the whole value under its key in one statement, which gives the per-key
// atomicity the rest of the system relies on.
type KV struct {
	db           *sql.DB
	queryTimeout time.Duration
	writeTimeout time.Duration
}

var _ store.Store = (*KV)(nil)

// New opens (or creates) the database at dbPath with default deadlines
// and runs migrations. Use ":memory:" for an ephemeral store in tests.
func New(dbPath string) (*KV, error) {
	return NewWithTimeouts(dbPath, DefaultQueryTimeout, DefaultWriteTimeout)
}

// NewWithTimeouts opens the database with explicit per-operation
// deadlines: queryTimeout bounds reads, writeTimeout bounds writes and
// deletes.
func NewWithTimeouts(dbPath string, queryTimeout, writeTimeout time.Duration) (*KV, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &KV{db: db, queryTimeout: queryTimeout, writeTimeout: writeTimeout}, nil
}

// Get returns the raw value stored under key.
func (s *KV) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var value []byte
	query := `SELECT value FROM kv WHERE key = ?`

	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, store.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.NewStorageError("read key", err).WithContext("key", key)
	}
	return value, nil
}

// Put stores value under key, replacing any previous value.
func (s *KV) Put(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	query := `
	INSERT INTO kv (key, value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return errors.NewStorageError("write key", err).WithContext("key", key)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *KV) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	query := `DELETE FROM kv WHERE key = ?`

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return errors.NewStorageError("delete key", err).WithContext("key", key)
	}
	return nil
}

// Close closes the database connection.
func (s *KV) Close() error {
	return s.db.Close()
}
