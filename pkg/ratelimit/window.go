// Package ratelimit provides sliding-window request admission for the
// Krystal Cloud API: an in-memory Window for a single caller, a blocking
// Gate adapter the client consults before every dispatch, and a Redis-backed
// SharedWindow for processes sharing one API-key quota.
package ratelimit

import "time"

// Window is a sliding-window rate limiter. It keeps the timestamps of recent
// requests and admits a new one while fewer than max remain inside the
// window.
//
// A Window is not safe for concurrent use; each instance must be owned by a
// single caller or wrapped in a Gate.
type Window struct {
	max    int
	window time.Duration
	stamps []time.Time

	// now is swappable for tests.
	now func() time.Time
}

// NewWindow creates a limiter admitting max requests per window duration.
func NewWindow(max int, window time.Duration) *Window {
	return &Window{
		max:    max,
		window: window,
		now:    time.Now,
	}
}

// CanRequest reports whether a request may be made right now.
func (w *Window) CanRequest() bool {
	w.purge()
	return len(w.stamps) < w.max
}

// RecordRequest registers that a request was just made. Call it after every
// dispatch the limiter admitted.
func (w *Window) RecordRequest() {
	w.purge()
	w.stamps = append(w.stamps, w.now())
}

// TimeUntilNext returns how long to wait before the next request is
// admitted; zero when under capacity.
func (w *Window) TimeUntilNext() time.Duration {
	w.purge()
	if len(w.stamps) < w.max {
		return 0
	}
	remaining := w.window - w.now().Sub(w.stamps[0])
	if remaining < 0 {
		return 0
	}
	return remaining
}

// purge drops timestamps that have left the window. Every observation call
// runs it first, so no stale timestamp survives any public method.
func (w *Window) purge() {
	cutoff := w.now().Add(-w.window)
	i := 0
	for i < len(w.stamps) && !w.stamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		w.stamps = append(w.stamps[:0], w.stamps[i:]...)
	}
}
