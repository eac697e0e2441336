//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	endpoint, err := c.PortEndpoint(ctx, "6379/tcp", "redis")
	require.NoError(t, err)
	return endpoint
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, startRedis(t), "storefront:", time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, ok, err := s.Get(ctx, "sid:cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "sid:cart", "[]"))
	v, ok, err := s.Get(ctx, "sid:cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	ttl, err := s.client.TTL(ctx, "storefront:sid:cart").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, s.Delete(ctx, "sid:cart"))
	_, ok, err = s.Get(ctx, "sid:cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Ping(ctx))
}

func TestOpen_BadURL(t *testing.T) {
	_, err := Open(context.Background(), "not a url", "", 0)
	require.Error(t, err)
}
