// Package http provides the HTTP handler layer for the flight search API.
// It handles request parsing, response formatting, and error mapping.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/flight-search/flightsai/internal/domain"
)

var (
	// errNullPassengers is returned when passengers is explicitly null.
	errNullPassengers = errors.New("passengers must not be null")

	// errUnsupportedMediaType is returned for search bodies that are not JSON.
	errUnsupportedMediaType = errors.New("unsupported media type")
)

// bindSearchRequest decodes a JSON search body into req. Form, XML and
// untyped bodies are rejected rather than decoded into an empty request.
func bindSearchRequest(c echo.Context, req *SearchFlightsRequest) error {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return fmt.Errorf("%w: %q", errUnsupportedMediaType, ctype)
	}
	return (&echo.DefaultBinder{}).BindBody(c, req)
}

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin" example:"JFK"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination" example:"LHR"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate" example:"2026-12-01"`

	// ReturnDate is the inbound date in YYYY-MM-DD format (optional)
	ReturnDate string `json:"returnDate,omitempty" example:"2026-12-10"`

	// Passengers is the number of adult passengers (optional, defaults to 1).
	// Numbers and integer strings are accepted.
	Passengers json.RawMessage `json:"passengers,omitempty" swaggertype:"integer" example:"1"`
}

// PassengerCount coerces the raw passengers value to an integer.
// An absent value yields the default count. Strings must hold a base-10
// integer, fractional numbers are truncated and booleans count as 0 or 1;
// null, out-of-range numbers, arrays and objects are rejected.
func (r *SearchFlightsRequest) PassengerCount() (int, error) {
	if len(r.Passengers) == 0 {
		return domain.DefaultPassengers, nil
	}

	var value any
	if err := json.Unmarshal(r.Passengers, &value); err != nil {
		return 0, fmt.Errorf("decode passengers: %w", err)
	}

	switch v := value.(type) {
	case nil:
		return 0, errNullPassengers
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("convert passengers: %w", err)
		}
		return n, nil
	case float64:
		if math.IsNaN(v) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, fmt.Errorf("passengers out of range: %s", string(r.Passengers))
		}
	case []any, map[string]any:
		return 0, fmt.Errorf("passengers must be a number, got %s", string(r.Passengers))
	}

	n, err := cast.ToIntE(value)
	if err != nil {
		return 0, fmt.Errorf("convert passengers: %w", err)
	}
	return n, nil
}
