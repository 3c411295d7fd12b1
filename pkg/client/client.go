// Package client provides the core Krystal Cloud API HTTP client with
// request gating, retry support, and typed error classification.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/defitools/krystal-cloud-client/pkg/logging"
	"github.com/defitools/krystal-cloud-client/pkg/ratelimit"
)

const (
	// DefaultBaseURL is the production Krystal Cloud API endpoint.
	DefaultBaseURL = "https://cloud-api.krystal.app"

	// EnvAPIKey is the environment variable NewFromEnv reads the
	// credential from.
	EnvAPIKey = "KRYSTAL_API_KEY"

	apiKeyHeader = "KC-APIKey"
)

// Config holds the client configuration. It is copied at construction and
// never mutated afterwards.
type Config struct {
	// BaseURL of the API (default: DefaultBaseURL).
	BaseURL string

	// Timeout for each request round trip.
	Timeout time.Duration

	// UserAgent identifies this client to the API.
	UserAgent string

	// MaxConcurrency bounds in-flight requests from this client. Fan-out
	// callers sharing one credential otherwise have no cap at all.
	MaxConcurrency int

	// Gate, when set, is consulted before every dispatch and blocks until
	// the rate limit admits the request. Leave nil to manage limiting at
	// the call site with a ratelimit.Window.
	Gate ratelimit.Gate
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		Timeout:        30 * time.Second,
		UserAgent:      "krystal-cloud-client/0.1.0",
		MaxConcurrency: 5,
	}
}

// Client is the Krystal Cloud API client. It holds immutable configuration
// and the credential; concurrent use is safe because no call mutates client
// state and the connection pool is shared by construction.
type Client struct {
	httpClient *http.Client
	config     Config
	apiKey     string
	sem        chan struct{}
	logger     zerolog.Logger
}

// New creates a client with the default configuration.
func New(apiKey string) (*Client, error) {
	return NewWithConfig(apiKey, DefaultConfig())
}

// NewWithConfig creates a client with a custom configuration. A missing
// credential is a configuration failure; nothing else can supply it later.
func NewWithConfig(apiKey string, cfg Config) (*Client, error) {
	if apiKey == "" {
		return nil, configError("API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 5
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
		apiKey: apiKey,
		sem:    make(chan struct{}, cfg.MaxConcurrency),
		logger: logging.NewLogger("krystal-client"),
	}, nil
}

// NewFromEnv creates a client using the KRYSTAL_API_KEY environment
// variable.
func NewFromEnv() (*Client, error) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, configError(fmt.Sprintf("environment variable %s is not set", EnvAPIKey))
	}
	return New(apiKey)
}

// get performs one authenticated GET and classifies the outcome. Every
// endpoint operation funnels through here: concurrency slot, rate limit
// gate, wire rendering, dispatch, classification.
func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	select {
	case c.sem <- struct{}{}:
		defer func() { <-c.sem }()
	case <-ctx.Done():
		return nil, transportError(ctx.Err())
	}

	if c.config.Gate != nil {
		if err := c.config.Gate.Acquire(ctx); err != nil {
			return nil, transportError(err)
		}
	}

	reqURL := strings.TrimSuffix(c.config.BaseURL, "/") + path
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, transportError(err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	c.logger.Debug().
		Str("endpoint", path).
		Int("params", len(params)).
		Msg("Executing API request")

	start := time.Now()
	resp, reqErr := c.httpClient.Do(req)
	requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())

	if reqErr != nil {
		terr := transportError(reqErr)
		errorsTotal.WithLabelValues(string(KindTransport)).Inc()
		requestsTotal.WithLabelValues(path, "network_error").Inc()
		c.logger.Error().Err(reqErr).Str("endpoint", path).Msg("HTTP request failed")
		return nil, terr
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		terr := transportError(readErr)
		errorsTotal.WithLabelValues(string(KindTransport)).Inc()
		requestsTotal.WithLabelValues(path, "network_error").Inc()
		c.logger.Error().Err(readErr).Str("endpoint", path).Msg("Reading response body failed")
		return nil, terr
	}

	requestsTotal.WithLabelValues(path, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	payload, cerr := classify(resp.StatusCode, body)
	if cerr != nil {
		errorsTotal.WithLabelValues(string(cerr.Kind)).Inc()
		c.logger.Warn().
			Str("endpoint", path).
			Int("status", resp.StatusCode).
			Str("kind", string(cerr.Kind)).
			Msg("API request error")
		return nil, cerr
	}

	return payload, nil
}

// validate rejects a query before dispatch, surfacing the rejection as an
// invalid-parameters error without any network round trip.
func (c *Client) validate(v interface{ Validate() error }) error {
	if v == nil {
		return nil
	}
	if err := v.Validate(); err != nil {
		errorsTotal.WithLabelValues(string(KindInvalidParams)).Inc()
		c.logger.Warn().Err(err).Msg("Query rejected before dispatch")
		return invalidParams(err.Error())
	}
	return nil
}
