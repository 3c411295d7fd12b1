package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for request gating.
var (
	gateWaitSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "krystal_rate_limit_wait_seconds",
		Help:    "Time spent waiting for a rate limit slot before dispatch",
		Buckets: []float64{0.01, 0.1, 0.5, 1, 2, 5, 10, 30},
	})

	gateAcquiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "krystal_rate_limit_acquired_total",
		Help: "Total number of rate limit slots acquired",
	})
)

// Gate admits requests, blocking until a slot is free. The client consults
// its Gate before every dispatch, so a correctly sized gate removes the
// class of accidental quota violations that advisory-only limiting allows.
type Gate interface {
	// Acquire blocks until a request may proceed and records it, or
	// returns ctx.Err() if the context ends first.
	Acquire(ctx context.Context) error
}

// WindowGate serializes a Window behind a mutex and turns its advisory
// answers into a blocking Acquire. Safe for concurrent use.
type WindowGate struct {
	mu     sync.Mutex
	window *Window
}

// NewWindowGate wraps a Window in a blocking gate. The gate takes ownership
// of the window; the caller must not keep using it directly.
func NewWindowGate(w *Window) *WindowGate {
	return &WindowGate{window: w}
}

// Acquire implements Gate. It waits out the window in full sleeps rather
// than polling, re-checking after each sleep because concurrent acquirers
// may have taken the freed slot.
func (g *WindowGate) Acquire(ctx context.Context) error {
	start := time.Now()
	for {
		g.mu.Lock()
		if g.window.CanRequest() {
			g.window.RecordRequest()
			g.mu.Unlock()
			gateWaitSeconds.Observe(time.Since(start).Seconds())
			gateAcquiredTotal.Inc()
			return nil
		}
		wait := g.window.TimeUntilNext()
		g.mu.Unlock()

		if wait <= 0 {
			wait = time.Millisecond
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
