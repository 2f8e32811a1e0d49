package amadeus

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// Error classes, following the status code of the reply.
const (
	CodeClientError         = "ClientError"
	CodeAuthenticationError = "AuthenticationError"
	CodeNotFoundError       = "NotFoundError"
	CodeServerError         = "ServerError"
)

// ErrorSource points at the request element an APIError refers to.
type ErrorSource struct {
	Parameter string `json:"parameter,omitempty"`
	Pointer   string `json:"pointer,omitempty"`
	Example   string `json:"example,omitempty"`
}

// APIError is one entry of the "errors" (or "warnings") array of a reply.
type APIError struct {
	Status int          `json:"status,omitempty"`
	Code   int          `json:"code,omitempty"`
	Title  string       `json:"title,omitempty"`
	Detail string       `json:"detail,omitempty"`
	Source *ErrorSource `json:"source,omitempty"`
}

// ResponseError is an error reported by the API: any reply with status >= 400,
// or a rejected token request.
type ResponseError struct {
	// StatusCode is the HTTP status of the failed reply
	StatusCode int

	// Code is the error class (ClientError, AuthenticationError, ...)
	Code string

	// Errors lists the structured errors from the body, if any
	Errors []APIError

	// Description holds the OAuth error code and description, one per line,
	// or the raw body when it could not be parsed
	Description string
}

// Error renders the status followed by one line per reported problem.
// A problem line is the "[parameter] " prefix and the detail, either of
// which may be absent; titles are not rendered.
func (e *ResponseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d]", e.StatusCode)

	if e.Description != "" {
		b.WriteString("\n")
		b.WriteString(e.Description)
	}

	for _, apiErr := range e.Errors {
		b.WriteString("\n")
		if apiErr.Source != nil && apiErr.Source.Parameter != "" {
			fmt.Fprintf(&b, "[%s] ", apiErr.Source.Parameter)
		}
		b.WriteString(apiErr.Detail)
	}

	return b.String()
}

// errorBody covers both the API error shape and the OAuth error shape.
type errorBody struct {
	Errors           []APIError `json:"errors"`
	Error            string     `json:"error"`
	ErrorDescription string     `json:"error_description"`
}

func newResponseError(statusCode int, body []byte) *ResponseError {
	respErr := &ResponseError{
		StatusCode: statusCode,
		Code:       classify(statusCode),
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		respErr.Description = strings.TrimSpace(string(body))
		return respErr
	}

	respErr.Errors = parsed.Errors
	respErr.Description = oauthDescription(parsed.Error, parsed.ErrorDescription)
	return respErr
}

// newAuthenticationError converts a failed token request.
func newAuthenticationError(retrieveErr *oauth2.RetrieveError) *ResponseError {
	statusCode := http.StatusUnauthorized
	if retrieveErr.Response != nil {
		statusCode = retrieveErr.Response.StatusCode
	}

	respErr := newResponseError(statusCode, retrieveErr.Body)
	respErr.Code = CodeAuthenticationError
	if respErr.Description == "" && len(respErr.Errors) == 0 {
		respErr.Description = oauthDescription(retrieveErr.ErrorCode, retrieveErr.ErrorDescription)
	}
	return respErr
}

func oauthDescription(code, description string) string {
	switch {
	case code == "":
		return description
	case description == "":
		return code
	default:
		return code + "\n" + description
	}
}

func classify(statusCode int) string {
	switch {
	case statusCode == http.StatusUnauthorized:
		return CodeAuthenticationError
	case statusCode == http.StatusNotFound:
		return CodeNotFoundError
	case statusCode >= http.StatusInternalServerError:
		return CodeServerError
	default:
		return CodeClientError
	}
}
