package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter shares fixed-window counters between server instances
type RedisLimiter struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisLimiter creates a limiter storing counters under prefix
func NewRedisLimiter(client *redis.Client, prefix string) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

// windowKey names the counter of the window containing now
func (l *RedisLimiter) windowKey(key string, rule Rule, now time.Time) (string, time.Time) {
	start := now.Truncate(rule.Window)
	return fmt.Sprintf("%s:%s:%d", l.prefix, key, start.Unix()), start.Add(rule.Window)
}

// Allow increments the window counter. INCR and EXPIRE run in one MULTI block,
// so concurrent requests from several instances see a consistent count.
func (l *RedisLimiter) Allow(ctx context.Context, key string, rule Rule) (Result, error) {
	now := l.now()
	redisKey, resetAt := l.windowKey(key, rule, now)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, rule.Window)
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("rate limit counter %s: %w", redisKey, err)
	}

	count := int(incr.Val())
	retryAfter := resetAt.Sub(now)
	if count > rule.Limit {
		return Result{Allowed: false, Remaining: 0, RetryAfter: retryAfter}, nil
	}
	return Result{Allowed: true, Remaining: rule.Limit - count, RetryAfter: retryAfter}, nil
}
