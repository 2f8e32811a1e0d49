// Package http provides the HTTP handler layer for the flight search API.
package http

import (
	"io/fs"

	"github.com/labstack/echo/v4"
)

// staticDir is the directory of the assets filesystem served under /static.
const staticDir = "static"

// RegisterRoutes registers the page, asset and API routes.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) error {
	static, err := fs.Sub(h.assets, staticDir)
	if err != nil {
		return err
	}

	e.GET("/health", h.Health)

	e.GET("/", h.Index)
	e.StaticFS("/static", static)

	e.POST("/search_flights", h.SearchFlights)
	e.GET("/autocomplete", h.Autocomplete)

	return nil
}
