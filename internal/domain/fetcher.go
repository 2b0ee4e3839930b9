package domain

import (
	"context"
	"sort"
	"sync"
)

//go:generate mockgen -source=fetcher.go -destination=mock_fetcher.go -package=domain

// FlightFetcher is one retrieval strategy of the flight engine.
// Implementations must be safe for concurrent use.
type FlightFetcher interface {
	// Mode returns the fetch mode this fetcher serves.
	Mode() FetchMode

	// Fetch runs the query against the engine and returns its offers.
	// Failures are returned as errors matching ErrDownstreamFailure.
	Fetch(ctx context.Context, query FlightQuery) (*SearchResult, error)
}

// AirportDirectory looks airports up in a static dataset.
type AirportDirectory interface {
	// Search returns the airports whose code or name matches the query.
	// An empty query or no match yields an empty slice, not an error.
	Search(ctx context.Context, query string) ([]Airport, error)
}

// FetcherRegistry maps fetch modes to the fetcher serving them.
type FetcherRegistry struct {
	mu       sync.RWMutex
	fetchers map[FetchMode]FlightFetcher
}

// NewFetcherRegistry creates an empty registry.
func NewFetcherRegistry(fetchers ...FlightFetcher) *FetcherRegistry {
	r := &FetcherRegistry{
		fetchers: make(map[FetchMode]FlightFetcher),
	}
	for _, f := range fetchers {
		r.Register(f)
	}
	return r
}

// Register adds a fetcher, replacing any fetcher already serving its mode.
func (r *FetcherRegistry) Register(f FlightFetcher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetchers[f.Mode()] = f
}

// Get returns the fetcher serving the mode.
func (r *FetcherRegistry) Get(mode FetchMode) (FlightFetcher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fetchers[mode]
	return f, ok
}

// Modes returns the registered modes in lexical order.
func (r *FetcherRegistry) Modes() []FetchMode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	modes := make([]FetchMode, 0, len(r.fetchers))
	for m := range r.fetchers {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

// Count returns the number of registered fetchers.
func (r *FetcherRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fetchers)
}
