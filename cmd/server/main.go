// Package main is the entry point of the flights API server.
//
//	@title			Flights API
//	@version		1.0.0
//	@description	REST facade over the Google Flights search engine: validates searches, routes them by fetch mode and returns the engine's results unchanged.
//
//	@contact.name	API Support
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	_ "github.com/flights-api/flights-api/docs"

	flighthttp "github.com/flights-api/flights-api/internal/adapter/http"
	"github.com/flights-api/flights-api/internal/adapter/http/middleware"
	"github.com/flights-api/flights-api/internal/app"
	"github.com/flights-api/flights-api/internal/config"
	"github.com/flights-api/flights-api/internal/infrastructure/logger"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(app.LoggerConfig(cfg))
	defer log.Close()

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("local_mode", cfg.LocalModeEnabled()).
		Bool("cache", cfg.Cache.Enabled).
		Msg("Configuration loaded")

	components, err := app.Build(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to assemble service")
	}
	defer components.Close()

	e := newServer(cfg, log, components)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, cfg, log)
}

// newServer builds the echo instance with middleware and routes.
func newServer(cfg *config.Config, log *logger.Logger, components *app.Components) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	mwConfig := middleware.DefaultConfig()
	mwConfig.BodyLimit = cfg.Server.BodyLimit
	middleware.SetupWithConfig(e, log.WithComponent("http").Logger, mwConfig)

	handler := flighthttp.NewFlightHandler(components.UseCase, log.WithComponent("handler").Logger)
	flighthttp.RegisterRoutes(e, handler)
	flighthttp.RegisterSwagger(e)

	return e
}

// gracefulShutdown blocks until SIGINT or SIGTERM, then drains in-flight requests.
func gracefulShutdown(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
