package client

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
)

// RetryConfig holds the policy for one retry loop. It is a plain value and
// never mutated while the loop runs.
type RetryConfig struct {
	// MaxAttempts is the total number of invocations, including the first.
	MaxAttempts int

	// InitialBackoff is the delay before the second attempt.
	InitialBackoff time.Duration

	// MaxBackoff caps the delay between attempts.
	MaxBackoff time.Duration

	// BackoffMultiplier grows the delay after each failed attempt.
	BackoffMultiplier float64

	// Jitter randomizes each delay by ±20%. Off by default so backoff is
	// deterministic for a single caller; turn it on when several callers
	// share one policy to avoid synchronized retry storms.
	Jitter bool
}

// DefaultRetryConfig returns the default retry policy.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:       3,
		InitialBackoff:    500 * time.Millisecond,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

// Retry invokes op until it succeeds, fails terminally, or exhausts the
// policy. A terminal failure is any error that IsRetryable rejects: auth,
// payment, invalid parameters, parse failures, and non-5xx statuses all
// propagate on first occurrence. On exhaustion the error of the final
// attempt is returned as-is; op is never invoked more than MaxAttempts
// times. Cancelling ctx aborts the backoff sleep between attempts.
func Retry[T any](ctx context.Context, cfg RetryConfig, op func(context.Context) (T, error)) (T, error) {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	var zero T
	var lastErr error
	backoff := cfg.InitialBackoff

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			if attempt > 1 {
				log.Info().
					Int("attempt", attempt).
					Msg("Request succeeded after retry")
			}
			return result, nil
		}

		lastErr = err
		if !IsRetryable(err) {
			return zero, err
		}

		if attempt >= cfg.MaxAttempts {
			break
		}

		retriesTotal.WithLabelValues(errorKind(err)).Inc()

		delay := backoff
		if cfg.Jitter {
			delay = time.Duration(float64(backoff) * (0.8 + rand.Float64()*0.4))
		}
		if delay > cfg.MaxBackoff {
			delay = cfg.MaxBackoff
		}
		retryBackoffSeconds.WithLabelValues(errorKind(err)).Observe(delay.Seconds())

		log.Debug().
			Err(err).
			Int("attempt", attempt).
			Dur("backoff", delay).
			Msg("Retrying request after backoff")

		select {
		case <-ctx.Done():
			log.Warn().
				Int("attempt", attempt).
				Msg("Context cancelled during retry backoff")
			return zero, lastErr
		case <-time.After(delay):
		}

		backoff = time.Duration(float64(backoff) * cfg.BackoffMultiplier)
		if backoff > cfg.MaxBackoff {
			backoff = cfg.MaxBackoff
		}
	}

	retryExhaustedTotal.WithLabelValues(errorKind(lastErr)).Inc()
	log.Warn().
		Err(lastErr).
		Int("max_attempts", cfg.MaxAttempts).
		Msg("Retry attempts exhausted")

	return zero, lastErr
}
