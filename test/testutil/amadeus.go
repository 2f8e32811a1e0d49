package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// Credentials accepted by AmadeusStub.
const (
	StubClientID     = "stub-client-id"
	StubClientSecret = "stub-client-secret"
	stubAccessToken  = "stub-access-token"
)

const (
	stubTokenPath        = "/v1/security/oauth2/token"
	stubFlightOffersPath = "/v2/shopping/flight-offers"
	stubLocationsPath    = "/v1/reference-data/locations"
)

type stubReply struct {
	status int
	body   []byte
}

var emptyReply = stubReply{status: http.StatusOK, body: []byte(`{"data":[]}`)}

// AmadeusStub is an httptest server that speaks enough of the Amadeus API
// for end-to-end tests: the client-credentials token endpoint, the
// flight-offer search and the location search.
type AmadeusStub struct {
	Server *httptest.Server

	mu        sync.Mutex
	offers    map[string]stubReply
	locations stubReply
	tokens    int
	queries   []url.Values
}

// NewAmadeusStub starts a stub that answers every search with an empty data array
// until configured. The server is closed when the test ends.
func NewAmadeusStub(t *testing.T) *AmadeusStub {
	t.Helper()

	s := &AmadeusStub{
		offers:    make(map[string]stubReply),
		locations: emptyReply,
	}

	mux := http.NewServeMux()
	mux.HandleFunc(stubTokenPath, s.handleToken)
	mux.HandleFunc(stubFlightOffersPath, s.authorized(s.handleFlightOffers))
	mux.HandleFunc(stubLocationsPath, s.authorized(s.handleLocations))

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Server.Close)
	return s
}

// URL returns the base URL to configure the client with.
func (s *AmadeusStub) URL() string {
	return s.Server.URL
}

// WithOffers serves body with the given status for the origin to destination leg.
func (s *AmadeusStub) WithOffers(origin, destination string, status int, body []byte) *AmadeusStub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers[origin+"-"+destination] = stubReply{status: status, body: body}
	return s
}

// WithLocations serves body with the given status for every location search.
func (s *AmadeusStub) WithLocations(status int, body []byte) *AmadeusStub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations = stubReply{status: status, body: body}
	return s
}

// TokenRequests returns how many access tokens were issued.
func (s *AmadeusStub) TokenRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens
}

// Queries returns the query strings of the API calls received so far, in order.
func (s *AmadeusStub) Queries() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.queries...)
}

func (s *AmadeusStub) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.FormValue("client_id") != StubClientID || r.FormValue("client_secret") != StubClientSecret {
		write(w, http.StatusUnauthorized, []byte(`{"error":"invalid_client","error_description":"Client credentials are invalid","code":38187,"title":"Invalid parameters"}`))
		return
	}

	s.mu.Lock()
	s.tokens++
	s.mu.Unlock()

	write(w, http.StatusOK, []byte(`{"type":"amadeusOAuth2Token","token_type":"Bearer","access_token":"`+stubAccessToken+`","expires_in":1799,"state":"approved"}`))
}

func (s *AmadeusStub) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+stubAccessToken {
			write(w, http.StatusUnauthorized, []byte(`{"errors":[{"status":401,"code":38190,"title":"Invalid access token"}]}`))
			return
		}

		s.mu.Lock()
		s.queries = append(s.queries, r.URL.Query())
		s.mu.Unlock()

		next(w, r)
	}
}

func (s *AmadeusStub) handleFlightOffers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := q.Get("originLocationCode") + "-" + q.Get("destinationLocationCode")

	s.mu.Lock()
	reply, ok := s.offers[key]
	s.mu.Unlock()

	if !ok {
		reply = emptyReply
	}
	write(w, reply.status, reply.body)
}

func (s *AmadeusStub) handleLocations(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	reply := s.locations
	s.mu.Unlock()

	write(w, reply.status, reply.body)
}

func write(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/vnd.amadeus+json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
