package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestTokenBlacklistRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewTokenBlacklistRepository(rdb)

	t.Run("Unknown token is not revoked", func(t *testing.T) {
		revoked, err := repo.IsRevoked(ctx, "unknown")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("Revoke then check", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

		revoked, err := repo.IsRevoked(ctx, "jti-1")
		assert.NoError(t, err)
		assert.True(t, revoked)

		ttl, err := rdb.TTL(ctx, tokenBlacklistPrefix+"jti-1").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 59*time.Minute)
	})

	t.Run("Expired token is not stored", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "jti-old", time.Now().Add(-time.Minute)))

		revoked, err := repo.IsRevoked(ctx, "jti-old")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("Entry expires with the token", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "jti-short", time.Now().Add(time.Second)))

		time.Sleep(2 * time.Second)

		revoked, err := repo.IsRevoked(ctx, "jti-short")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})
}
