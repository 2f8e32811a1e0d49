package domain

import "errors"

// Sentinel errors for the two handled failure classes.
var (
	// ErrValidation marks client input that failed a field check.
	ErrValidation = errors.New("validation failed")

	// ErrUpstream marks an error reported by the flight-data API itself.
	ErrUpstream = errors.New("upstream request failed")
)

// Client-facing validation messages.
const (
	MsgMissingRequiredFields = "Missing required fields"
	MsgInvalidAirportCode    = "Origin and destination must be 3-letter IATA codes"
)

// ValidationError is returned when request input fails validation.
// Message is shown to the client as-is.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// UpstreamError is an error the flight-data API reported for a request.
// Message is the upstream description and is passed through to the client verbatim.
type UpstreamError struct {
	// StatusCode is the upstream HTTP status (0 if unknown)
	StatusCode int

	// Message is the formatted upstream error description
	Message string

	// Err is the underlying client error
	Err error
}

// NewUpstreamError wraps a client error reported by the upstream API.
func NewUpstreamError(statusCode int, err error) *UpstreamError {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &UpstreamError{
		StatusCode: statusCode,
		Message:    msg,
		Err:        err,
	}
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// Unwrap exposes both the sentinel and the underlying client error.
func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstream}
	}
	return []error{ErrUpstream, e.Err}
}

// IsValidationError reports whether err is (or wraps) a validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUpstreamError reports whether err is (or wraps) an upstream-reported failure.
func IsUpstreamError(err error) bool {
	return errors.Is(err, ErrUpstream)
}
