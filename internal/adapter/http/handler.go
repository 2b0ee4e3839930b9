package http

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flights-api/flights-api/internal/adapter/http/middleware"
	"github.com/flights-api/flights-api/internal/adapter/http/response"
	"github.com/flights-api/flights-api/internal/domain"
	"github.com/flights-api/flights-api/internal/usecase"
)

// FlightHandler handles the flight and airport endpoints.
type FlightHandler struct {
	useCase usecase.FlightSearchUseCase
	log     zerolog.Logger
}

// NewFlightHandler creates a new FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightSearchUseCase, log zerolog.Logger) *FlightHandler {
	return &FlightHandler{
		useCase: uc,
		log:     log,
	}
}

// SearchFlights handles POST /api/flights/search
//
// @Summary Search for flights
// @Description Validate a flight search and run it on the flight engine
// @Tags Flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} SearchFlightsResponse
// @Failure 422 {object} response.ErrorDetail "Invalid request"
// @Failure 500 {object} response.ErrorDetail "Flight engine failure"
// @Router /api/flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	req, err := DecodeSearchFlightsRequest(c.Request().Body)
	if err != nil {
		return response.InvalidRequestBody(c, err.Error())
	}

	result, err := h.useCase.Search(c.Request().Context(), ToDomainRequest(req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToSearchFlightsResponse(result))
}

// SearchAirports handles GET /api/airports/search
//
// @Summary Search airports
// @Description Find airports whose code or name matches the query (at most 10)
// @Tags Airports
// @Produce json
// @Param q query string true "Airport name, city or code"
// @Success 200 {object} AirportSearchResponse
// @Failure 500 {object} response.ErrorDetail "Lookup failure"
// @Router /api/airports/search [get]
func (h *FlightHandler) SearchAirports(c echo.Context) error {
	airports, err := h.useCase.SearchAirports(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		h.log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("Airport search failed")
		return response.AirportSearchFailed(c, err.Error())
	}
	return response.OK(c, ToAirportSearchResponse(airports))
}

// Health handles GET /api/health
//
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /api/health [get]
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleError maps use case errors onto the error contract. Validation
// failures are 422; engine failures and unavailable fetch modes are 500.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.UnprocessableEntity(c, err.Error())
	}

	event := h.log.Error().Err(err).Str("request_id", middleware.GetRequestID(c))
	var engineErr *domain.EngineError
	if errors.As(err, &engineErr) {
		event = event.Str("fetch_mode", string(engineErr.Mode)).Int("engine_status", engineErr.StatusCode)
	}
	event.Msg("Flight search failed")

	return response.FlightSearchFailed(c, err.Error())
}
