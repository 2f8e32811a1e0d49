// Package response provides standardized HTTP response builders for the flight search API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every handled error: a single message.
type ErrorResponse struct {
	// Error is the client-facing error message
	Error string `json:"error" example:"Missing required fields"`
}

// Error messages used in API responses.
const (
	MsgInternalError = "An unexpected error occurred"
)

// JSON writes a JSON response with the given status code and data.
func JSON(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// RawJSON writes a 200 OK response with an already encoded JSON payload.
// A nil payload is written as JSON null.
func RawJSON(c echo.Context, payload json.RawMessage) error {
	if payload == nil {
		payload = json.RawMessage("null")
	}
	return c.JSONBlob(http.StatusOK, payload)
}
