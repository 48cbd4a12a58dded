package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore tracks revoked token ids (jti) until they would have expired
// anyway. Backed by redis when configured; the middleware treats a nil store
// as "nothing revoked".
type TokenStore struct{ rdb *redis.Client }

func NewTokenStore(rdb *redis.Client) *TokenStore { return &TokenStore{rdb: rdb} }

const revokedPrefix = "revoked:"

func (s *TokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, revokedPrefix+jti, "1", ttl).Err()
}

func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
