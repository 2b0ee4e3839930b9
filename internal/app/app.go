// Package app assembles the service from configuration: the airport
// directory, one engine fetcher per available fetch mode, the optional
// result cache and the use case on top of them. The HTTP server and the
// CLI share this wiring.
package app

import (
	"context"
	"fmt"

	"github.com/flights-api/flights-api/internal/adapter/airports"
	"github.com/flights-api/flights-api/internal/adapter/engine"
	"github.com/flights-api/flights-api/internal/config"
	"github.com/flights-api/flights-api/internal/domain"
	"github.com/flights-api/flights-api/internal/infrastructure/logger"
	"github.com/flights-api/flights-api/internal/usecase"
)

// Components holds the assembled service.
type Components struct {
	UseCase  usecase.FlightSearchUseCase
	Fetchers *domain.FetcherRegistry
	Airports *airports.Directory

	cache engine.Cache
}

// Build assembles the service. A cache that cannot be reached at startup
// is logged and replaced by no caching.
func Build(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Components, error) {
	directory, err := airports.NewDirectory()
	if err != nil {
		return nil, fmt.Errorf("load airports: %w", err)
	}

	cache := buildCache(ctx, cfg, log)

	fetchers := domain.NewFetcherRegistry()
	for _, fc := range fetcherConfigs(cfg) {
		f, err := engine.NewFetcher(fc, engine.WithLogger(log.WithFetchMode(string(fc.Mode)).Logger))
		if err != nil {
			_ = cache.Close()
			return nil, fmt.Errorf("create %s fetcher: %w", fc.Mode, err)
		}

		var fetcher domain.FlightFetcher = f
		if cfg.Cache.Enabled {
			fetcher = engine.NewCachingFetcher(f, cache, log.WithComponent("cache").Logger)
		}
		fetchers.Register(fetcher)

		log.Info().
			Str("fetch_mode", string(fc.Mode)).
			Str("endpoint", f.Endpoint()).
			Dur("timeout", fc.Timeout).
			Msg("Fetcher registered")
	}

	ucLog := log.WithComponent("usecase").Logger
	uc := usecase.NewFlightSearchUseCase(fetchers, directory, &usecase.Config{
		Validation: domain.ValidatorOptions{
			StrictReturnDate: cfg.Validation.StrictReturnDate,
		},
		AirportLimit: cfg.Airports.SearchLimit,
		Logger:       &ucLog,
	})

	return &Components{
		UseCase:  uc,
		Fetchers: fetchers,
		Airports: directory,
		cache:    cache,
	}, nil
}

// Close releases the cache connection.
func (c *Components) Close() error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Close()
}

// fetcherConfigs returns one fetcher configuration per available fetch mode.
// The local mode is only available when a browser worker URL is configured.
func fetcherConfigs(cfg *config.Config) []engine.Config {
	configs := []engine.Config{{
		Mode:              domain.FetchCommon,
		BaseURL:           cfg.Engine.BaseURL,
		Timeout:           cfg.Engine.Timeout,
		RequestsPerSecond: cfg.Engine.RateLimit,
		Burst:             cfg.Engine.RateBurst,
		UserAgent:         cfg.Engine.UserAgent,
	}}
	if cfg.LocalModeEnabled() {
		configs = append(configs, engine.Config{
			Mode:              domain.FetchLocal,
			BaseURL:           cfg.Engine.BrowserURL,
			Timeout:           cfg.Engine.BrowserTimeout,
			RequestsPerSecond: cfg.Engine.RateLimit,
			Burst:             cfg.Engine.RateBurst,
			UserAgent:         cfg.Engine.UserAgent,
		})
	}
	return configs
}

func buildCache(ctx context.Context, cfg *config.Config, log *logger.Logger) engine.Cache {
	if !cfg.Cache.Enabled {
		return engine.NewNoOpCache()
	}

	cache, err := engine.NewRedisCache(ctx, engine.RedisConfig{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
		TTL:      cfg.Cache.TTL,
	})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Cache.RedisAddr).Msg("Result cache unavailable, continuing without it")
		return engine.NewNoOpCache()
	}

	log.Info().Str("addr", cfg.Cache.RedisAddr).Dur("ttl", cfg.Cache.TTL).Msg("Result cache enabled")
	return cache
}

// LoggerConfig maps the logging configuration onto the logger options.
func LoggerConfig(cfg *config.Config) logger.Config {
	return logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.Caller,
		ServiceName:  cfg.App.Name,
		File: logger.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		},
	}
}
