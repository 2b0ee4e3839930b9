package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoggerConfig configures RequestLoggerWithConfig.
type LoggerConfig struct {
	// SkipPaths are request paths that are never logged (e.g., "/api/health")
	SkipPaths []string
}

// RequestLogger returns middleware that logs every completed request.
// 5xx responses log at error level, 4xx at warn, everything else at info.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return RequestLoggerWithConfig(log, LoggerConfig{})
}

// RequestLoggerWithConfig returns request logging middleware with custom configuration.
func RequestLoggerWithConfig(log zerolog.Logger, config LoggerConfig) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(config.SkipPaths))
	for _, p := range config.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				// Render the error now so the logged status is the final one.
				c.Error(err)
			}

			req := c.Request()
			if _, ok := skip[req.URL.Path]; ok {
				return nil
			}
			res := c.Response()

			var event *zerolog.Event
			switch status := res.Status; {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", res.Status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
