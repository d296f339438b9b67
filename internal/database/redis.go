package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/asts-console/internal/config"
)

// OpenRedis connects the client behind the query cache, the submission
// queue and timetable events. It returns nil and no error when
// cfg.RedisURL is empty.
func OpenRedis(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		log.Warn().Msg("REDIS_URL not set, timetable cache and events disabled")
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	rdb := redis.NewClient(opt)

	err = retry(ctx, log.With().Str("dependency", "redis").Logger(), func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info().
		Str("addr", opt.Addr).
		Int("db", opt.DB).
		Dur("cache_ttl", cfg.TimetableCacheTTL).
		Msg("Redis connected")
	return rdb, nil
}
