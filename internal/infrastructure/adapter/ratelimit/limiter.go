package ratelimit

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/go-redis/redis/v8"

	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/config"
)

//go:embed scripts/token_bucket.lua
var tokenBucketScript string

// RedisLimiter implements the RateLimiter port with a Redis-backed token
// bucket. The bucket update is a single Lua script, so concurrent callers
// on the same key never double-spend a token.
type RedisLimiter struct {
	client       *redis.Client
	script       *redis.Script
	ratePerSec   float64
	burst        int
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRedisLimiter creates a new RedisLimiter instance
func NewRedisLimiter(cfg config.RedisConfig, timeProvider coreport.TimeProvider, logger coreport.Logger) *RedisLimiter {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisLimiter{
		client:       client,
		script:       redis.NewScript(tokenBucketScript),
		ratePerSec:   float64(cfg.RateLimit) / 60.0,
		burst:        cfg.RateBurst,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Allow reports whether the action identified by key may proceed. Redis
// errors are returned to the caller, which fails open.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := l.timeProvider.Now()
	nowSec := float64(now.UnixNano()) / 1e9

	result, err := l.script.Run(ctx, l.client,
		[]string{"ratelimit:" + key},
		l.ratePerSec, l.burst, nowSec,
	).Int()
	if err != nil {
		return false, fmt.Errorf("rate limiter unavailable: %w", err)
	}
	return result == 1, nil
}

// Close releases the Redis connection
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
