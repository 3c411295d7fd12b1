package client

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fastRetry keeps test backoffs in the microsecond range.
func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:       attempts,
		InitialBackoff:    time.Microsecond,
		MaxBackoff:        time.Millisecond,
		BackoffMultiplier: 2.0,
	}
}

func TestRetry_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), fastRetry(3), func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Retry() error = %v", err)
	}
	if got != 42 {
		t.Errorf("Retry() = %d, want 42", got)
	}
	if calls != 1 {
		t.Errorf("op invoked %d times, want 1", calls)
	}
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), fastRetry(3), func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", serverError(503, "unavailable")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Retry() error = %v", err)
	}
	if got != "ok" {
		t.Errorf("Retry() = %q, want %q", got, "ok")
	}
	if calls != 3 {
		t.Errorf("op invoked %d times, want 3", calls)
	}
}

func TestRetry_ExhaustionReturnsFinalError(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), fastRetry(3), func(ctx context.Context) (int, error) {
		calls++
		return 0, serverError(500+calls, "boom")
	})
	if calls != 3 {
		t.Errorf("op invoked %d times, want exactly 3", calls)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("Retry() error = %v, want classified error", err)
	}
	// The error of the final attempt comes back, not the first.
	if e.Status != 503 {
		t.Errorf("Status = %d, want 503 (third attempt)", e.Status)
	}
}

func TestRetry_NonRetryableIsTerminal(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
	}{
		{"auth", authError()},
		{"payment", paymentError()},
		{"invalid params", invalidParams("bad limit")},
		{"parse", parseError("decode", nil)},
		{"server 404", serverError(404, "not found")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			_, err := Retry(context.Background(), fastRetry(5), func(ctx context.Context) (int, error) {
				calls++
				return 0, tt.err
			})
			if calls != 1 {
				t.Errorf("op invoked %d times, want 1", calls)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("Retry() error = %v, want the original error", err)
			}
		})
	}
}

func TestRetry_ContextCancelDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := RetryConfig{
		MaxAttempts:       5,
		InitialBackoff:    time.Hour,
		MaxBackoff:        time.Hour,
		BackoffMultiplier: 2.0,
	}

	calls := 0
	done := make(chan struct{})
	var err error
	go func() {
		defer close(done)
		_, err = Retry(ctx, cfg, func(ctx context.Context) (int, error) {
			calls++
			return 0, transportError(errors.New("refused"))
		})
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Retry did not return after cancellation")
	}

	if calls != 1 {
		t.Errorf("op invoked %d times, want 1 (cancelled during first backoff)", calls)
	}
	if !IsRetryable(err) {
		t.Errorf("Retry() error = %v, want the last transport failure", err)
	}
}

func TestRetry_ZeroAttemptsClampedToOne(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), RetryConfig{}, func(ctx context.Context) (int, error) {
		calls++
		return 0, serverError(500, "boom")
	})
	if calls != 1 {
		t.Errorf("op invoked %d times, want 1", calls)
	}
	if err == nil {
		t.Error("Retry() error = nil, want failure")
	}
}

func TestRetry_BackoffGrowth(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:       4,
		InitialBackoff:    5 * time.Millisecond,
		MaxBackoff:        time.Second,
		BackoffMultiplier: 2.0,
	}

	start := time.Now()
	calls := 0
	_, _ = Retry(context.Background(), cfg, func(ctx context.Context) (int, error) {
		calls++
		return 0, serverError(500, "boom")
	})
	elapsed := time.Since(start)

	if calls != 4 {
		t.Fatalf("op invoked %d times, want 4", calls)
	}
	// Without jitter the sleeps are exactly 5 + 10 + 20 = 35ms.
	if elapsed < 35*time.Millisecond {
		t.Errorf("elapsed = %v, want at least 35ms of deterministic backoff", elapsed)
	}
}
