// Package response provides the HTTP response builders of the flights API.
// Every error body has the single shape {"detail": "..."}.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	// Detail is a human-readable reason
	Detail string `json:"detail" example:"total number of passengers cannot exceed 9, got 10"`
}

// Prefixes of downstream failure details.
const (
	PrefixFlightSearch  = "Error searching flights: "
	PrefixAirportSearch = "Error searching airports: "
)

// Messages used when no better reason is available.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgInternalError      = "Internal server error"
)

// JSON writes a JSON response with the given status code and data.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Detail writes an error response with the given status and reason.
func Detail(c echo.Context, statusCode int, detail string) error {
	return c.JSON(statusCode, &ErrorDetail{Detail: detail})
}
