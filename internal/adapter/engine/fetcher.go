// Package engine reaches the external flight engine over HTTP.
//
// Each Fetcher serves one fetch mode: the common fetcher talks to the
// engine's direct endpoint, the local fetcher to its browser-automation
// worker. Fetchers pace their own outbound calls and never retry.
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/flights-api/flights-api/internal/domain"
)

// SearchPath is the engine endpoint receiving flight queries.
const SearchPath = "/v1/flights/search"

// maxResponseBytes bounds how much of an engine response is read.
const maxResponseBytes = 8 << 20

// Config holds the settings of one fetcher.
type Config struct {
	// Mode is the fetch mode served
	Mode domain.FetchMode

	// BaseURL is the engine's base URL (e.g., "http://localhost:9000")
	BaseURL string

	// Timeout bounds a whole engine round trip
	Timeout time.Duration

	// RequestsPerSecond paces outbound calls; zero or negative disables pacing
	RequestsPerSecond float64

	// Burst is the number of calls allowed at once when pacing
	Burst int

	// UserAgent is sent with every request when set
	UserAgent string
}

// Fetcher implements domain.FlightFetcher against the engine's HTTP API.
type Fetcher struct {
	mode      domain.FetchMode
	endpoint  string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
	log       zerolog.Logger
}

// Option customizes a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the HTTP client. Its timeout is kept as given.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithLogger sets the logger used for engine calls.
func WithLogger(log zerolog.Logger) Option {
	return func(f *Fetcher) {
		f.log = log
	}
}

// NewFetcher creates a Fetcher for the given configuration.
func NewFetcher(cfg Config, opts ...Option) (*Fetcher, error) {
	if cfg.Mode == "" {
		return nil, errors.New("engine: fetch mode is required")
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("engine: base URL is required for %s fetcher", cfg.Mode)
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	f := &Fetcher{
		mode:      cfg.Mode,
		endpoint:  base + SearchPath,
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: cfg.Timeout},
		limiter:   limiter,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Mode implements domain.FlightFetcher.
func (f *Fetcher) Mode() domain.FetchMode {
	return f.mode
}

// Endpoint returns the URL queries are posted to.
func (f *Fetcher) Endpoint() string {
	return f.endpoint
}

// Fetch implements domain.FlightFetcher. Every failure is an *domain.EngineError.
func (f *Fetcher) Fetch(ctx context.Context, query domain.FlightQuery) (*domain.SearchResult, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, f.fail(0, fmt.Errorf("wait for rate limiter: %w", err))
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, f.fail(0, fmt.Errorf("encode query: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, f.fail(0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, f.fail(0, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, f.fail(resp.StatusCode, fmt.Errorf("read response: %w", err))
	}

	f.log.Debug().
		Str("fetch_mode", string(f.mode)).
		Int("status", resp.StatusCode).
		Int("bytes", len(payload)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("Engine responded")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, f.fail(resp.StatusCode, errors.New(errorMessage(payload, resp.Status)))
	}

	result, err := parseResult(payload)
	if err != nil {
		return nil, f.fail(resp.StatusCode, err)
	}
	return result, nil
}

func (f *Fetcher) fail(status int, err error) error {
	return domain.NewEngineError(f.mode, status, err)
}

// Ensure Fetcher implements domain.FlightFetcher at compile time.
var _ domain.FlightFetcher = (*Fetcher)(nil)
