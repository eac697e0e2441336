// Package sqlite implements kv.Store on a local SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"net/url"

	"github.com/go-faster/errors"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/xenking/harshita-store/internal/storage/kv"
)

const (
	schemaSQL = `CREATE TABLE IF NOT EXISTS kv_entries (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at INTEGER NOT NULL DEFAULT (unixepoch())
	)`

	getSQL    = `SELECT value FROM kv_entries WHERE key = ?`
	setSQL    = `INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, unixepoch())
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deleteSQL = `DELETE FROM kv_entries WHERE key = ?`
)

var _ kv.Store = (*Store)(nil)

// Store is a kv.Store backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema exists.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	// A single connection serializes writers and keeps ":memory:" databases
	// alive for the lifetime of the Store.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create schema")
	}
	return &Store{db: db}, nil
}

func dsn(path string) string {
	if path == ":memory:" {
		return path
	}
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	return "file:" + path + "?" + q.Encode()
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, getSQL, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "get %q", key)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, setSQL, key, value); err != nil {
		return errors.Wrapf(err, "set %q", key)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, deleteSQL, key); err != nil {
		return errors.Wrapf(err, "delete %q", key)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
