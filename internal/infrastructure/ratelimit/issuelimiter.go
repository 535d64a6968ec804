// Package ratelimit implements redis-backed rate limiting.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisIssueLimiter enforces a sliding window on verification code issuance
// per email address, using a sorted set of issue timestamps. The window is
// checked before the new entry is added, so a rejected request consumes no
// slot.
type RedisIssueLimiter struct {
	client *redis.Client
	window time.Duration
	max    int
}

func NewRedisIssueLimiter(client *redis.Client, window time.Duration, max int) *RedisIssueLimiter {
	return &RedisIssueLimiter{
		client: client,
		window: window,
		max:    max,
	}
}

func (l *RedisIssueLimiter) AllowIssue(ctx context.Context, email string) (bool, error) {
	key := fmt.Sprintf("verification:issue:%s", email)
	now := time.Now()
	windowStart := now.Add(-l.window)

	if err := l.client.ZRemRangeByScore(ctx, key,
		"0",
		fmt.Sprintf("%d", windowStart.UnixNano()),
	).Err(); err != nil {
		return false, fmt.Errorf("failed to trim rate limit window: %w", err)
	}

	count, err := l.client.ZCard(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to count rate limit window: %w", err)
	}
	if count >= int64(l.max) {
		return false, nil
	}

	pipe := l.client.Pipeline()
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: fmt.Sprintf("%d", now.UnixNano()),
	})
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to record issue in rate limit window: %w", err)
	}

	return true, nil
}
