package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/temitayo1239/student-information-portal-main/internal/config"
)

// ErrRedisUnsupported is returned for servers that cannot update a session
// without resetting its expiry (SET ... KEEPTTL needs Redis 6.0+).
var ErrRedisUnsupported = errors.New("redis server does not support SET KEEPTTL")

// keepTTLProbe never exists, so the XX write below is a no-op.
var keepTTLProbe = config.CacheKey.SessionStateKey("keepttl-probe")

// NewRedisClient connects to the session store and checks that the server
// supports the commands the session store issues.
func NewRedisClient(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	err = rdb.SetArgs(ctx, keepTTLProbe, "", redis.SetArgs{Mode: "XX", KeepTTL: true}).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		_ = rdb.Close()
		return nil, fmt.Errorf("%w: %w", ErrRedisUnsupported, err)
	}

	log.Info().
		Str("addr", opt.Addr).
		Int("db", opt.DB).
		Str("key_pattern", config.CacheKey.SessionStatePattern()).
		Msg("Redis connected")

	return rdb, nil
}
