// Package config loads the application configuration from environment
// variables, optionally seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Engine     EngineConfig
	Airports   AirportsConfig
	Validation ValidationConfig
	Cache      CacheConfig
	Logging    LoggingConfig
	App        AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	BodyLimit       string        `env:"SERVER_BODY_LIMIT" envDefault:"1M"`
}

// EngineConfig holds the flight engine endpoints and outbound pacing.
type EngineConfig struct {
	// BaseURL serves the common fetch mode
	BaseURL string `env:"ENGINE_BASE_URL" envDefault:"http://localhost:9000"`

	// BrowserURL serves the local fetch mode; empty leaves local unavailable
	BrowserURL string `env:"ENGINE_BROWSER_URL"`

	Timeout        time.Duration `env:"ENGINE_TIMEOUT" envDefault:"30s"`
	BrowserTimeout time.Duration `env:"ENGINE_BROWSER_TIMEOUT" envDefault:"90s"`

	// RateLimit is outbound requests per second per fetcher; 0 disables pacing
	RateLimit float64 `env:"ENGINE_RATE_LIMIT" envDefault:"2"`
	RateBurst int     `env:"ENGINE_RATE_BURST" envDefault:"4"`

	UserAgent string `env:"ENGINE_USER_AGENT" envDefault:"flights-api/1.0"`
}

// AirportsConfig holds airport lookup settings.
type AirportsConfig struct {
	SearchLimit int `env:"AIRPORTS_SEARCH_LIMIT" envDefault:"10"`
}

// ValidationConfig holds request validation switches.
type ValidationConfig struct {
	// StrictReturnDate rejects a return date before the outbound date
	StrictReturnDate bool `env:"VALIDATION_STRICT_RETURN_DATE" envDefault:"true"`
}

// CacheConfig holds the optional engine result cache settings.
type CacheConfig struct {
	Enabled       bool          `env:"CACHE_ENABLED" envDefault:"false"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL           time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`

	// File additionally writes logs to a rotated file when set
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
	Compress   bool   `env:"LOG_COMPRESS" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name string `env:"APP_NAME" envDefault:"flights-api"`
	Env  string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables. Variables already
// set win over the given .env files; with no files, ./.env is tried.
// A missing file is not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return errors.New("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return errors.New("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return errors.New("SERVER_SHUTDOWN_TIMEOUT must be positive")
	}

	if err := validateURL("ENGINE_BASE_URL", cfg.Engine.BaseURL); err != nil {
		return err
	}
	if cfg.Engine.BrowserURL != "" {
		if err := validateURL("ENGINE_BROWSER_URL", cfg.Engine.BrowserURL); err != nil {
			return err
		}
	}
	if cfg.Engine.Timeout <= 0 {
		return errors.New("ENGINE_TIMEOUT must be positive")
	}
	if cfg.Engine.BrowserTimeout <= 0 {
		return errors.New("ENGINE_BROWSER_TIMEOUT must be positive")
	}
	// A response must be writable after the slowest engine call returns.
	if cfg.Engine.Timeout >= cfg.Server.WriteTimeout {
		return fmt.Errorf("ENGINE_TIMEOUT (%s) must be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Engine.Timeout, cfg.Server.WriteTimeout)
	}
	if cfg.Engine.BrowserURL != "" && cfg.Engine.BrowserTimeout >= cfg.Server.WriteTimeout {
		return fmt.Errorf("ENGINE_BROWSER_TIMEOUT (%s) must be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Engine.BrowserTimeout, cfg.Server.WriteTimeout)
	}
	if cfg.Engine.RateLimit < 0 {
		return fmt.Errorf("ENGINE_RATE_LIMIT must not be negative, got %v", cfg.Engine.RateLimit)
	}
	if cfg.Engine.RateLimit > 0 && cfg.Engine.RateBurst < 1 {
		return fmt.Errorf("ENGINE_RATE_BURST must be at least 1, got %d", cfg.Engine.RateBurst)
	}

	if cfg.Airports.SearchLimit < 1 {
		return fmt.Errorf("AIRPORTS_SEARCH_LIMIT must be at least 1, got %d", cfg.Airports.SearchLimit)
	}

	if cfg.Cache.Enabled {
		if cfg.Cache.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required when CACHE_ENABLED is true")
		}
		if cfg.Cache.TTL <= 0 {
			return errors.New("CACHE_TTL must be positive")
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}
	if cfg.Logging.File != "" && cfg.Logging.MaxSizeMB < 1 {
		return fmt.Errorf("LOG_MAX_SIZE_MB must be at least 1, got %d", cfg.Logging.MaxSizeMB)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// LocalModeEnabled reports whether a browser worker URL is configured.
func (c *Config) LocalModeEnabled() bool {
	return c.Engine.BrowserURL != ""
}
