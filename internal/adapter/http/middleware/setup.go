package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Config configures the middleware chain installed by SetupWithConfig.
type Config struct {
	// BodyLimit caps request bodies (e.g., "1M"); empty disables the cap
	BodyLimit string

	// Logger configures request logging
	Logger LoggerConfig

	// Recovery configures panic recovery
	Recovery RecoveryConfig
}

// DefaultConfig returns the chain configuration used by the server.
func DefaultConfig() Config {
	return Config{
		BodyLimit: "1M",
		Logger:    LoggerConfig{SkipPaths: []string{"/api/health"}},
		Recovery:  DefaultRecoveryConfig(),
	}
}

// Setup installs the error handler and the default middleware chain.
// It must be called before routes are registered.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, DefaultConfig())
}

// SetupWithConfig installs the error handler and the middleware chain:
//  1. RequestID, so every later log line and response carries the ID
//  2. RequestLogger, which sees the final status of every request
//  3. Recover, innermost, so a panic still produces a logged 500
//  4. BodyLimit, when configured
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, config Config) {
	e.HTTPErrorHandler = ErrorHandler(log)
	for _, mw := range Chain(log, config) {
		e.Use(mw)
	}
}

// Chain returns the middleware chain as a slice for use with route groups.
func Chain(log zerolog.Logger, config Config) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{
		RequestID(),
		RequestLoggerWithConfig(log, config.Logger),
		RecoverWithConfig(log, config.Recovery),
	}
	if config.BodyLimit != "" {
		chain = append(chain, echomw.BodyLimit(config.BodyLimit))
	}
	return chain
}
