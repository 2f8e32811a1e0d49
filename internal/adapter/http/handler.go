// Package http provides the HTTP handler layer for the flight search API.
// It handles request parsing, response formatting, and error mapping.
package http

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flightsai/internal/adapter/http/response"
	"github.com/flight-search/flightsai/internal/domain"
	"github.com/flight-search/flightsai/internal/infrastructure/logger"
	"github.com/flight-search/flightsai/internal/usecase"
)

// indexFile is the landing page inside the assets filesystem.
const indexFile = "index.html"

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	useCase usecase.FlightSearchUseCase
	assets  fs.FS
}

// NewFlightHandler creates a new FlightHandler with the given use case.
// assets holds the landing page (index.html) and the static/ directory.
func NewFlightHandler(uc usecase.FlightSearchUseCase, assets fs.FS) *FlightHandler {
	return &FlightHandler{
		useCase: uc,
		assets:  assets,
	}
}

// Index handles GET /
//
// @Summary Landing page
// @Description Serves the search form
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *FlightHandler) Index(c echo.Context) error {
	page, err := fs.ReadFile(h.assets, indexFile)
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, page)
}

// SearchFlights handles POST /search_flights
//
// @Summary Search for flights
// @Description Searches flight offers for the departure leg and, when returnDate is set, the return leg
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} SwaggerSearchResponse
// @Failure 400 {object} response.ErrorResponse "Validation or upstream error"
// @Failure 500 {object} response.ErrorResponse "Unexpected error"
// @Router /search_flights [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := bindSearchRequest(c, &req); err != nil {
		return h.handleError(c, err)
	}

	searchReq, err := ToDomainRequest(&req)
	if err != nil {
		return h.handleError(c, err)
	}

	result, err := h.useCase.SearchFlights(c.Request().Context(), searchReq)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// Autocomplete handles GET /autocomplete
//
// @Summary Airport autocomplete
// @Description Looks up airports matching the keyword
// @Tags locations
// @Produce json
// @Param query query string false "Keyword typed by the user"
// @Success 200 {array} SwaggerLocation
// @Failure 400 {object} response.ErrorResponse "Upstream error"
// @Router /autocomplete [get]
func (h *FlightHandler) Autocomplete(c echo.Context) error {
	query := ToAutocompleteQuery(c.QueryParam("query"))

	result, err := h.useCase.Autocomplete(c.Request().Context(), query)
	if err != nil {
		var upstreamErr *domain.UpstreamError
		if errors.As(err, &upstreamErr) {
			return response.UpstreamError(c, upstreamErr.Message)
		}
		// Left to the framework error handler.
		return err
	}

	return response.RawJSON(c, result)
}

// handleError maps domain errors to HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return response.ValidationError(c, validationErr.Message)
	}

	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		return response.UpstreamError(c, upstreamErr.Message)
	}

	logger.FromContext(c.Request().Context()).Error().
		Err(err).
		Str("path", c.Path()).
		Msg("Unexpected error")

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}
