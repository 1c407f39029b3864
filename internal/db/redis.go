package db

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects the client backing the rate limiter and the
// token revocation denylist. Both are best-effort consumers, but a dead
// redis at boot is a config error, so the ping is fatal here.
func NewRedisClient(ctx context.Context, url string, log *zap.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Info("redis connected",
		zap.String("addr", opts.Addr),
		zap.Int("db", opts.DB))
	return client, nil
}
