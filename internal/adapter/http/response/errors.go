package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ValidationError writes a 400 Bad Request response for rejected input.
func ValidationError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorResponse{Error: message})
}

// UpstreamError writes a 400 Bad Request response carrying the message
// reported by the flight-data API.
func UpstreamError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorResponse{Error: message})
}

// InternalServerError writes a 500 Internal Server Error response.
// Details stay in the server logs.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorResponse{Error: MsgInternalError})
}
