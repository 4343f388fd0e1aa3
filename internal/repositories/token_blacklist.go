package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/psiarze/internal/logger"
)

const tokenBlacklistPrefix = "token_blacklist:"

// TokenBlacklistRepository stores revoked token ids in Redis until the token
// would have expired anyway.
type TokenBlacklistRepository struct {
	client *redis.Client
	now    func() time.Time
}

// NewTokenBlacklistRepository creates a new repository instance
func NewTokenBlacklistRepository(client *redis.Client) *TokenBlacklistRepository {
	return &TokenBlacklistRepository{client: client, now: time.Now}
}

// Revoke blacklists jti until expiresAt. Already expired tokens are skipped.
func (r *TokenBlacklistRepository) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	key := tokenBlacklistPrefix + jti
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Debugw("revoke token",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether jti is blacklisted.
func (r *TokenBlacklistRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	key := tokenBlacklistPrefix + jti
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Debugw("check revoked token",
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
