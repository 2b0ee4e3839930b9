package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UnprocessableEntity writes a 422 response for a request that failed validation.
func UnprocessableEntity(c echo.Context, detail string) error {
	return Detail(c, http.StatusUnprocessableEntity, detail)
}

// InvalidRequestBody writes a 422 response for a body that could not be decoded.
// The decoder's reason is appended when present.
func InvalidRequestBody(c echo.Context, reason string) error {
	if reason == "" {
		return UnprocessableEntity(c, MsgInvalidRequestBody)
	}
	return UnprocessableEntity(c, MsgInvalidRequestBody+": "+reason)
}

// FlightSearchFailed writes a 500 response for a failed flight search.
func FlightSearchFailed(c echo.Context, reason string) error {
	return Detail(c, http.StatusInternalServerError, PrefixFlightSearch+reason)
}

// AirportSearchFailed writes a 500 response for a failed airport lookup.
func AirportSearchFailed(c echo.Context, reason string) error {
	return Detail(c, http.StatusInternalServerError, PrefixAirportSearch+reason)
}

// InternalServerError writes a generic 500 response.
func InternalServerError(c echo.Context) error {
	return Detail(c, http.StatusInternalServerError, MsgInternalError)
}
