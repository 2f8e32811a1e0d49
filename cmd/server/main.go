// Package main is the entry point for the flight search service.
//
//	@title						Flight Search API
//	@version					1.0.0
//	@description				Web front end and JSON API for one-way and round-trip flight offer search with airport autocomplete.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/flightsai/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-search/flightsai/docs"

	// Application layers
	"github.com/flight-search/flightsai/internal/adapter/amadeus"
	flighthttp "github.com/flight-search/flightsai/internal/adapter/http"
	"github.com/flight-search/flightsai/internal/adapter/http/middleware"
	"github.com/flight-search/flightsai/internal/config"
	"github.com/flight-search/flightsai/internal/infrastructure/logger"
	"github.com/flight-search/flightsai/internal/infrastructure/metrics"
	"github.com/flight-search/flightsai/internal/usecase"
	"github.com/flight-search/flightsai/web"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	appLog := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("amadeus_hostname", cfg.Amadeus.Hostname).
		Bool("metrics", cfg.Metrics.Enabled).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.SetupWithConfig(e, appLog.Logger, middleware.Config{
		Recovery:      middleware.DefaultRecoveryConfig(),
		EnableMetrics: cfg.Metrics.Enabled,
	})

	// Setup routes
	if err := setupRoutes(e, cfg, appLog); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up routes")
	}

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupLogger builds the application logger from config and installs it as
// both the logger package global and the zerolog global.
func setupLogger(cfg *config.Config) *logger.Logger {
	l := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: logger.DefaultConfig().ServiceName,
	})

	logger.SetGlobal(l)
	log.Logger = l.Logger
	zerolog.SetGlobalLevel(l.GetLevel())

	return l
}

// setupRoutes wires the upstream client, use case and handler, then registers
// the application, metrics and documentation routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, appLog *logger.Logger) error {
	clientLog := appLog.WithComponent("amadeus").Logger
	client, err := amadeus.NewClient(amadeus.Config{
		ClientID:     cfg.Amadeus.APIKey,
		ClientSecret: cfg.Amadeus.APISecret,
		Hostname:     cfg.Amadeus.Hostname,
		BaseURL:      cfg.Amadeus.BaseURL,
		Logger:       &clientLog,
	})
	if err != nil {
		return fmt.Errorf("create amadeus client: %w", err)
	}

	log.Info().Str("base_url", client.BaseURL()).Msg("Flight data client ready")

	flightUseCase := usecase.NewFlightSearchUseCase(amadeus.NewAdapter(client))
	flightHandler := flighthttp.NewFlightHandler(flightUseCase, web.Assets())

	if err := flighthttp.RegisterRoutes(e, flightHandler); err != nil {
		return fmt.Errorf("register routes: %w", err)
	}

	if cfg.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}

	// Swagger documentation endpoint
	if !cfg.IsProduction() {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
