package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.db")
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	return s, path
}

func TestStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)
	t.Cleanup(func() { _ = s.Close() })

	_, ok, err := s.Get(ctx, "sid:cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "sid:cart", `[]`))
	require.NoError(t, s.Set(ctx, "sid:cart", `[{"quantity":1}]`))

	v, ok, err := s.Get(ctx, "sid:cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"quantity":1}]`, v)

	require.NoError(t, s.Delete(ctx, "sid:cart"))
	require.NoError(t, s.Delete(ctx, "sid:cart"))
	_, ok, err = s.Get(ctx, "sid:cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Ping(ctx))
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	s, path := openTemp(t)
	require.NoError(t, s.Set(ctx, "sid:language", "hi"))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	v, ok, err := reopened.Get(ctx, "sid:language")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hi", v)
}

func TestStore_InMemory(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Set(ctx, "k", "v"))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
