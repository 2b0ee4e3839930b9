package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flights-api/flights-api/internal/adapter/http/response"
)

// ErrorHandler returns an echo.HTTPErrorHandler that renders errors escaping
// the handlers (unknown routes, oversized bodies, unmapped failures) in the
// same {"detail": ...} shape as every other error.
func ErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		detail := response.MsgInternalError

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if he.Message != nil {
				detail = fmt.Sprint(he.Message)
			} else {
				detail = http.StatusText(status)
			}
		}

		if status >= 500 {
			log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("Unhandled error")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = response.Detail(c, status, detail)
		}
		if writeErr != nil {
			log.Error().Err(writeErr).Msg("Failed to write error response")
		}
	}
}
