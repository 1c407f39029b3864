package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRevoker is a Redis-backed denylist of JWT IDs. Revoked entries
// expire together with the token itself, so the set stays small.
type TokenRevoker struct {
	rdb *redis.Client
}

func NewTokenRevoker(rdb *redis.Client) *TokenRevoker {
	return &TokenRevoker{rdb: rdb}
}

func (r *TokenRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // token already expired
	}
	return r.rdb.Set(ctx, "revoked:"+jti, "1", ttl).Err()
}

// IsRevoked fails open: if Redis is unreachable the token is treated as
// valid so an infra blip does not log everyone out.
func (r *TokenRevoker) IsRevoked(ctx context.Context, jti string) bool {
	n, err := r.rdb.Exists(ctx, "revoked:"+jti).Result()
	if err != nil {
		return false
	}
	return n > 0
}
