// Package metrics provides the centralized Prometheus registry reference for
// the Krystal Cloud client. All metrics are defined in their respective
// packages (client, ratelimit) to maintain modularity and avoid circular
// dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - krystal_requests_total{endpoint, status} (Counter): Total requests by endpoint and HTTP status
//   - krystal_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - krystal_errors_total{kind} (Counter): Errors by kind (transport, auth, payment,
//     invalid_params, server, parse, config)
//
// Retry Metrics (pkg/client):
//   - krystal_retries_total{kind} (Counter): Retry attempts by error kind
//   - krystal_retry_backoff_seconds{kind} (Histogram): Backoff duration by error kind
//   - krystal_retry_exhausted_total{kind} (Counter): Requests that exhausted max retries
//
// Rate Limit Metrics (pkg/ratelimit):
//   - krystal_rate_limit_wait_seconds (Histogram): Time spent waiting for a slot before dispatch
//   - krystal_rate_limit_acquired_total (Counter): Rate limit slots acquired
//   - krystal_shared_window_requests (Gauge): Requests inside the shared Redis window
//   - krystal_shared_window_waits_total (Counter): Dispatches that had to wait on the shared window
//
// Example Prometheus Queries:
//
//   # Request Error Rate
//   rate(krystal_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(krystal_request_duration_seconds_bucket[5m]))
//
//   # Share of dispatches delayed by rate limiting
//   rate(krystal_shared_window_waits_total[5m]) / rate(krystal_requests_total[5m])
