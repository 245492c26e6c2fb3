package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitConfig bounds how many events one key may produce. A zero limit
// disables that window.
type RateLimitConfig struct {
	PerMinute int
	PerHour   int
}

type window struct {
	duration time.Duration
	limit    int
}

// RateLimiter is a sliding-window limiter on sorted sets: one member per
// event, scored by its timestamp in nanoseconds.
type RateLimiter struct {
	client  *redis.Client
	windows []window
	now     func() time.Time
}

func NewRateLimiter(client *redis.Client, cfg RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		client: client,
		windows: []window{
			{time.Minute, cfg.PerMinute},
			{time.Hour, cfg.PerHour},
		},
		now: time.Now,
	}
}

// Allow records one event for key and reports whether every window still had
// room for it.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := l.now()
	for _, w := range l.windows {
		if w.limit <= 0 {
			continue
		}
		ok, err := l.checkWindow(ctx, key, w, now)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (l *RateLimiter) checkWindow(ctx context.Context, key string, w window, now time.Time) (bool, error) {
	redisKey := rateLimitKey(key, w.duration)
	windowStart := now.Add(-w.duration).UnixNano()
	nowNano := now.UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	card := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: nowNano})
	pipe.Expire(ctx, redisKey, w.duration+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit pipeline: %w", err)
	}
	return card.Val() < int64(w.limit), nil
}

func rateLimitKey(key string, d time.Duration) string {
	return fmt.Sprintf("%sratelimit:%s:%s", keyPrefix, key, d)
}
