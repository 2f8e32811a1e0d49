package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Config selects the optional parts of the middleware chain.
type Config struct {
	// Recovery tunes the panic recovery middleware
	Recovery RecoveryConfig

	// EnableMetrics adds the Prometheus request metrics middleware
	EnableMetrics bool
}

// DefaultConfig returns the default middleware configuration.
func DefaultConfig() Config {
	return Config{
		Recovery:      DefaultRecoveryConfig(),
		EnableMetrics: true,
	}
}

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. Metrics - Second, so it observes the final status after errors are rendered
//  3. RequestLogger - Third, logs all requests with request ID and renders handler errors
//  4. Recover - Last, catches panics and returns 500 (wraps handlers)
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, DefaultConfig())
}

// SetupWithConfig registers middleware with a custom configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, config Config) {
	e.Use(Chain(log, config)...)
}

// Chain returns the middleware as a slice for use with route groups.
func Chain(log zerolog.Logger, config Config) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{RequestID()}
	if config.EnableMetrics {
		chain = append(chain, Metrics())
	}
	return append(chain,
		RequestLogger(log),
		RecoverWithConfig(log, config.Recovery),
	)
}
