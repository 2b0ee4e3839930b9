// Package usecase contains the flight search workflow: validate the request,
// map it onto the engine's vocabulary, route it by fetch mode and shape the
// result. It never retries: a failed fetch is terminal for its request.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/flights-api/flights-api/internal/domain"
)

// DefaultAirportLimit caps airport search results.
const DefaultAirportLimit = 10

// FlightSearchUseCase defines the flight and airport search operations.
type FlightSearchUseCase interface {
	// Search validates the request and dispatches it to the fetcher serving
	// its fetch mode. Validation failures match domain.ErrInvalidRequest and
	// never reach a fetcher.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error)

	// SearchAirports returns airports matching the free-text query.
	SearchAirports(ctx context.Context, query string) ([]domain.Airport, error)
}

// Config contains configuration options for the use case.
type Config struct {
	// Validation tunes request validation strictness
	Validation domain.ValidatorOptions

	// AirportLimit caps airport results; zero or negative means DefaultAirportLimit
	AirportLimit int

	// Logger receives search events; nil disables logging
	Logger *zerolog.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Validation:   domain.DefaultValidatorOptions(),
		AirportLimit: DefaultAirportLimit,
	}
}

// flightSearchUseCase implements FlightSearchUseCase.
type flightSearchUseCase struct {
	validator    *domain.Validator
	fetchers     *domain.FetcherRegistry
	airports     domain.AirportDirectory
	airportLimit int
	log          zerolog.Logger
}

// NewFlightSearchUseCase creates a FlightSearchUseCase.
// If config is nil, DefaultConfig is used.
func NewFlightSearchUseCase(fetchers *domain.FetcherRegistry, airports domain.AirportDirectory, config *Config) FlightSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		cfg.Validation = config.Validation
		if config.AirportLimit > 0 {
			cfg.AirportLimit = config.AirportLimit
		}
		cfg.Logger = config.Logger
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	if fetchers == nil {
		fetchers = domain.NewFetcherRegistry()
	}

	return &flightSearchUseCase{
		validator:    domain.NewValidator(cfg.Validation),
		fetchers:     fetchers,
		airports:     airports,
		airportLimit: cfg.AirportLimit,
		log:          log,
	}
}

// Search implements FlightSearchUseCase.Search.
func (uc *flightSearchUseCase) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
	q, err := uc.validator.Validate(req)
	if err != nil {
		uc.log.Debug().Err(err).Msg("Search request rejected")
		return nil, err
	}

	if len(q.Airlines) > 0 {
		uc.log.Debug().Strs("airlines", q.Airlines).Msg("Airline filter ignored: not supported by the flight engine")
	}

	fetcher, ok := uc.fetchers.Get(q.FetchMode)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrFetchModeUnavailable, q.FetchMode)
	}

	query := BuildFlightQuery(*q)

	uc.log.Info().
		Str("from", q.Origin).
		Str("to", q.Destination).
		Str("trip", string(q.Trip)).
		Str("seat", string(q.Seat)).
		Str("fetch_mode", string(q.FetchMode)).
		Int("legs", len(query.Legs)).
		Int("passengers", q.Passengers.Total()).
		Msg("Dispatching flight search")

	result, err := uc.fetch(ctx, fetcher, query)
	if err != nil {
		uc.log.Error().Err(err).Str("fetch_mode", string(q.FetchMode)).Msg("Flight search failed")
		return nil, err
	}

	mapped := MapResult(result)
	uc.log.Info().
		Int("flights", len(mapped.Flights)).
		Str("current_price", string(mapped.CurrentPrice)).
		Msg("Flight search completed")

	return mapped, nil
}

// fetch calls the fetcher once. Panics and foreign errors are reported as
// engine failures so the caller sees a single terminal error.
func (uc *flightSearchUseCase) fetch(ctx context.Context, fetcher domain.FlightFetcher, query domain.FlightQuery) (result *domain.SearchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = domain.NewEngineError(query.FetchMode, 0, fmt.Errorf("fetcher panic: %v", r))
		}
	}()

	result, err = fetcher.Fetch(ctx, query)
	if err != nil && !errors.Is(err, domain.ErrDownstreamFailure) {
		err = domain.NewEngineError(query.FetchMode, 0, err)
	}
	return result, err
}

// SearchAirports implements FlightSearchUseCase.SearchAirports.
func (uc *flightSearchUseCase) SearchAirports(ctx context.Context, query string) ([]domain.Airport, error) {
	query = strings.TrimSpace(query)
	if query == "" || uc.airports == nil {
		return []domain.Airport{}, nil
	}

	airports, err := uc.airports.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("airport directory: %w", err)
	}
	if len(airports) > uc.airportLimit {
		airports = airports[:uc.airportLimit]
	}
	if airports == nil {
		airports = []domain.Airport{}
	}
	return airports, nil
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
