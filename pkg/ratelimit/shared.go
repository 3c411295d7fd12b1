package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// redisKeyRequests is the sorted set holding request timestamps, scored by
// Unix nanoseconds. All processes sharing one API key point at the same key.
const redisKeyRequests = "krystal:rate_limit:requests"

// Prometheus metrics for the shared window.
var (
	sharedWindowInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "krystal_shared_window_requests",
		Help: "Requests currently inside the shared rate limit window",
	})

	sharedWindowWaitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "krystal_shared_window_waits_total",
		Help: "Total number of times a dispatch waited on the shared window",
	})
)

// SharedWindow is a sliding-window limiter whose state lives in Redis, so
// every process using the same API key draws from one quota. It implements
// Gate.
type SharedWindow struct {
	redis  *redis.Client
	max    int
	window time.Duration
	logger zerolog.Logger
}

// NewSharedWindow creates a Redis-backed limiter admitting max requests per
// window duration across all participating processes.
func NewSharedWindow(redisClient *redis.Client, max int, window time.Duration, logger zerolog.Logger) *SharedWindow {
	return &SharedWindow{
		redis:  redisClient,
		max:    max,
		window: window,
		logger: logger,
	}
}

// Acquire implements Gate. Each round trims expired timestamps, counts the
// survivors, and either claims a slot or sleeps until the oldest entry
// leaves the window.
func (s *SharedWindow) Acquire(ctx context.Context) error {
	waited := false
	for {
		admitted, wait, err := s.tryAcquire(ctx)
		if err != nil {
			return fmt.Errorf("shared rate limit: %w", err)
		}
		if admitted {
			return nil
		}

		if !waited {
			waited = true
			sharedWindowWaitsTotal.Inc()
			s.logger.Debug().
				Dur("wait", wait).
				Msg("Shared rate limit window full, waiting")
		}

		if wait <= 0 {
			wait = 10 * time.Millisecond
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// acquireScript trims expired entries, checks capacity, and claims a slot in
// one atomic step. Trim, count, and claim must not be separate round trips:
// concurrent processes racing between them could overshoot the shared quota.
// Returns {1, count} on admission, {0, oldestScore} when the window is full.
var acquireScript = redis.NewScript(`
redis.call("ZREMRANGEBYSCORE", KEYS[1], 0, ARGV[1])
local count = redis.call("ZCARD", KEYS[1])
if count < tonumber(ARGV[2]) then
	redis.call("ZADD", KEYS[1], ARGV[3], ARGV[4])
	redis.call("PEXPIRE", KEYS[1], ARGV[5])
	return {1, count + 1}
end
local oldest = redis.call("ZRANGE", KEYS[1], 0, 0, "WITHSCORES")
return {0, oldest[2]}
`)

// tryAcquire attempts to claim a slot. When the window is full it returns
// how long until the oldest retained timestamp expires.
func (s *SharedWindow) tryAcquire(ctx context.Context) (bool, time.Duration, error) {
	now := time.Now()
	cutoff := now.Add(-s.window).UnixNano()

	// Member must be unique per request; two dispatches in the same
	// nanosecond would otherwise collapse into one sorted set entry.
	res, err := acquireScript.Run(ctx, s.redis, []string{redisKeyRequests},
		cutoff, s.max, now.UnixNano(), uuid.NewString(),
		(s.window + time.Minute).Milliseconds()).Result()
	if err != nil {
		return false, 0, err
	}

	reply, ok := res.([]interface{})
	if !ok || len(reply) == 0 {
		return false, 0, fmt.Errorf("unexpected rate limit reply: %v", res)
	}

	if admitted, _ := reply[0].(int64); admitted == 1 {
		if len(reply) > 1 {
			if count, ok := reply[1].(int64); ok {
				sharedWindowInFlight.Set(float64(count))
			}
		}
		return true, 0, nil
	}

	sharedWindowInFlight.Set(float64(s.max))
	wait := s.window
	if len(reply) > 1 {
		if scoreStr, ok := reply[1].(string); ok {
			if score, perr := strconv.ParseFloat(scoreStr, 64); perr == nil {
				expiresAt := time.Unix(0, int64(score)).Add(s.window)
				wait = time.Until(expiresAt)
			}
		}
	}
	return false, wait, nil
}
