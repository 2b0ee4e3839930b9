package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers the API routes under /api.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	api := e.Group("/api")

	api.GET("/health", h.Health)
	api.GET("/airports/search", h.SearchAirports)
	api.POST("/flights/search", h.SearchFlights)
}

// RegisterSwagger serves the OpenAPI UI under /swagger.
func RegisterSwagger(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
