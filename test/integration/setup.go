// Package integration provides helpers and integration tests for the flight search service.
// Integration tests wire the HTTP handlers, middleware, use case and a flight-data
// client together, either the Amadeus adapter talking to a stub API or an in-memory fake.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flightsai/internal/adapter/amadeus"
	httpAdapter "github.com/flight-search/flightsai/internal/adapter/http"
	"github.com/flight-search/flightsai/internal/adapter/http/middleware"
	"github.com/flight-search/flightsai/internal/adapter/http/response"
	"github.com/flight-search/flightsai/internal/domain"
	"github.com/flight-search/flightsai/internal/usecase"
	"github.com/flight-search/flightsai/test/mock"
	"github.com/flight-search/flightsai/test/testutil"
	"github.com/flight-search/flightsai/web"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.FlightHandler
}

// NewTestServer creates a test server with the full middleware chain in front of
// a use case backed by the given flight-data client.
func NewTestServer(t *testing.T, client domain.FlightDataClient) *TestServer {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.SetupWithConfig(e, zerolog.Nop(), middleware.Config{
		Recovery: middleware.DefaultRecoveryConfig(),
	})

	handler := httpAdapter.NewFlightHandler(usecase.NewFlightSearchUseCase(client), web.Assets())
	require.NoError(t, httpAdapter.RegisterRoutes(e, handler))

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// NewAmadeusTestServer creates a test server whose use case talks to stub
// through the real Amadeus client and adapter.
func NewAmadeusTestServer(t *testing.T, stub *testutil.AmadeusStub) *TestServer {
	t.Helper()
	return NewTestServer(t, newAmadeusAdapter(t, stub, testutil.StubClientSecret))
}

func newAmadeusAdapter(t *testing.T, stub *testutil.AmadeusStub, secret string) *amadeus.Adapter {
	t.Helper()

	client, err := amadeus.NewClient(amadeus.Config{
		ClientID:     testutil.StubClientID,
		ClientSecret: secret,
		BaseURL:      stub.URL(),
		HTTPClient:   stub.Server.Client(),
	})
	require.NoError(t, err)
	return amadeus.NewAdapter(client)
}

// newFakeClient returns an in-memory client serving sample offers for JFK to LHR and back.
func newFakeClient() *mock.FlightDataClient {
	return mock.NewFlightDataClient().
		WithOffers("JFK", "LHR", mock.SampleOffers("JFK", "LHR", 3)).
		WithOffers("LHR", "JFK", mock.SampleOffers("LHR", "JFK", 2)).
		WithAirports(mock.SampleAirports("JFK", "LGA", "EWR"))
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(method, path, contentType string, body []byte) Response {
	httpReq := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, contentType)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts body, marshaled as JSON, to the search endpoint.
func (ts *TestServer) SearchRequest(t *testing.T, body any) Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)
	return ts.Do(http.MethodPost, "/search_flights", echo.MIMEApplicationJSON, data)
}

// AutocompleteRequest queries the airport autocomplete endpoint.
func (ts *TestServer) AutocompleteRequest(query string) Response {
	return ts.Do(http.MethodGet, "/autocomplete?query="+url.QueryEscape(query), "", nil)
}

// ParseSearchResponse parses the response body as a search response.
func (r *Response) ParseSearchResponse() (*domain.FlightSearchResponse, error) {
	var resp domain.FlightSearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError extracts the error message from the response body.
func (r *Response) ParseError() (string, error) {
	var errResp response.ErrorResponse
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return "", err
	}
	return errResp.Error, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin        string `json:"origin,omitempty"`
	Destination   string `json:"destination,omitempty"`
	DepartureDate string `json:"departureDate,omitempty"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Passengers    any    `json:"passengers,omitempty"`
}

// DefaultSearchRequest returns a valid one-way request body from JFK to LHR.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: testutil.FutureDate(30),
		Passengers:    1,
	}
}

// RoundTripSearchRequest returns a valid round-trip request body from JFK to LHR.
func RoundTripSearchRequest() SearchRequestBody {
	req := DefaultSearchRequest()
	req.ReturnDate = testutil.FutureDate(40)
	return req
}

// offerIDs extracts the "id" of each offer in a leg payload.
func offerIDs(t *testing.T, data json.RawMessage) []string {
	t.Helper()

	var offers []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &offers))

	ids := make([]string, len(offers))
	for i, o := range offers {
		ids[i] = o.ID
	}
	return ids
}
