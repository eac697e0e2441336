package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/harshita-store/internal/storage/kv"
)

const (
	getEntrySQL    = `SELECT value FROM kv_entries WHERE key = $1`
	setEntrySQL    = `INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	deleteEntrySQL = `DELETE FROM kv_entries WHERE key = $1`
)

var _ kv.Store = (*KV)(nil)

// KV implements kv.Store on the kv_entries table. Close does not close the
// shared pool.
type KV struct {
	pool *pgxpool.Pool
}

// NewKV returns a KV that uses the given pool.
func NewKV(pool *pgxpool.Pool) *KV {
	return &KV{pool: pool}
}

func (s *KV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx, getEntrySQL, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "get %q", key)
	}
	return value, true, nil
}

func (s *KV) Set(ctx context.Context, key, value string) error {
	if _, err := s.pool.Exec(ctx, setEntrySQL, key, value); err != nil {
		return errors.Wrapf(err, "set %q", key)
	}
	return nil
}

func (s *KV) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, deleteEntrySQL, key); err != nil {
		return errors.Wrapf(err, "delete %q", key)
	}
	return nil
}

func (s *KV) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *KV) Close() error { return nil }
