// Package mock provides test doubles for the flights API.
// They carry configurable behavior (delays, errors, canned results) for
// integration tests that exercise several components together.
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flights-api/flights-api/internal/domain"
)

// Fetcher is a configurable implementation of domain.FlightFetcher.
type Fetcher struct {
	mode    domain.FetchMode
	result  *domain.SearchResult
	err     error
	delay   time.Duration
	queries []domain.FlightQuery
	mu      sync.Mutex
}

// NewFetcher creates a fetcher serving the given mode. Without further
// configuration it returns an empty result.
func NewFetcher(mode domain.FetchMode) *Fetcher {
	return &Fetcher{mode: mode}
}

// WithResult configures the result returned on success.
func (f *Fetcher) WithResult(result *domain.SearchResult) *Fetcher {
	f.result = result
	return f
}

// WithError configures the error returned by every call.
func (f *Fetcher) WithError(err error) *Fetcher {
	f.err = err
	return f
}

// WithDelay makes every call wait before answering.
func (f *Fetcher) WithDelay(d time.Duration) *Fetcher {
	f.delay = d
	return f
}

// Mode implements domain.FlightFetcher.Mode.
func (f *Fetcher) Mode() domain.FetchMode {
	return f.mode
}

// Fetch implements domain.FlightFetcher.Fetch. It honors cancellation
// during the configured delay.
func (f *Fetcher) Fetch(ctx context.Context, query domain.FlightQuery) (*domain.SearchResult, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, domain.NewEngineError(f.mode, 0, ctx.Err())
		case <-time.After(f.delay):
		}
	}

	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return &domain.SearchResult{Flights: []domain.FlightOffer{}}, nil
	}
	return f.result, nil
}

// CallCount returns the number of Fetch calls.
func (f *Fetcher) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

// LastQuery returns the most recent query, or false if none was received.
func (f *Fetcher) LastQuery() (domain.FlightQuery, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queries) == 0 {
		return domain.FlightQuery{}, false
	}
	return f.queries[len(f.queries)-1], true
}

// Reset forgets recorded calls.
func (f *Fetcher) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = nil
}

// Ensure Fetcher implements domain.FlightFetcher at compile time.
var _ domain.FlightFetcher = (*Fetcher)(nil)

// SampleResult returns a result with count offers; the first one is the
// engine's best pick and every odd offer carries a delay notice.
func SampleResult(count int) *domain.SearchResult {
	carriers := []string{"China Airlines", "EVA Air", "Starlux", "Japan Airlines"}
	delay := "Often delayed by 30+ min"

	flights := make([]domain.FlightOffer, count)
	for i := range flights {
		offer := domain.FlightOffer{
			IsBest:    i == 0,
			Name:      carriers[i%len(carriers)],
			Departure: fmt.Sprintf("%d:40 AM on Fri, Feb 6", 6+i%5),
			Arrival:   fmt.Sprintf("%d:15 AM on Fri, Feb 6", 9+i%3),
			Duration:  "2 hr 35 min",
			Stops:     i % 2,
			Price:     fmt.Sprintf("$%d", 412+i*17),
		}
		if i%2 == 1 {
			offer.Delay = &delay
		}
		flights[i] = offer
	}

	return &domain.SearchResult{CurrentPrice: domain.PriceLow, Flights: flights}
}
