// Package mock provides test doubles for the flight search service.
// These fakes are meant for integration tests that need configurable
// behavior (delays, errors, canned payloads) rather than strict expectations.
package mock

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/flight-search/flightsai/internal/domain"
)

// FlightDataClient is a configurable fake implementation of domain.FlightDataClient.
// Flight offers are keyed by origin-destination pair so that the forward and
// return legs of a round trip can be told apart.
type FlightDataClient struct {
	mu       sync.Mutex
	offers   map[string]json.RawMessage
	airports json.RawMessage
	err      error
	delay    time.Duration

	offerQueries   []domain.FlightOfferQuery
	airportQueries []string
}

// NewFlightDataClient creates a fake that returns empty arrays until configured.
func NewFlightDataClient() *FlightDataClient {
	return &FlightDataClient{
		offers:   make(map[string]json.RawMessage),
		airports: json.RawMessage(`[]`),
	}
}

// WithOffers configures the payload returned for the origin to destination leg.
func (c *FlightDataClient) WithOffers(origin, destination string, data json.RawMessage) *FlightDataClient {
	c.offers[legKey(origin, destination)] = data
	return c
}

// WithAirports configures the payload returned by SearchAirports.
func (c *FlightDataClient) WithAirports(data json.RawMessage) *FlightDataClient {
	c.airports = data
	return c
}

// WithError configures every call to fail with err.
func (c *FlightDataClient) WithError(err error) *FlightDataClient {
	c.err = err
	return c
}

// WithDelay makes every call wait d before answering.
func (c *FlightDataClient) WithDelay(d time.Duration) *FlightDataClient {
	c.delay = d
	return c
}

// SearchFlightOffers implements domain.FlightDataClient.
func (c *FlightDataClient) SearchFlightOffers(ctx context.Context, query domain.FlightOfferQuery) (json.RawMessage, error) {
	c.mu.Lock()
	c.offerQueries = append(c.offerQueries, query)
	c.mu.Unlock()

	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	if c.err != nil {
		return nil, c.err
	}

	if data, ok := c.offers[legKey(query.Origin, query.Destination)]; ok {
		return data, nil
	}
	return json.RawMessage(`[]`), nil
}

// SearchAirports implements domain.FlightDataClient.
func (c *FlightDataClient) SearchAirports(ctx context.Context, keyword string) (json.RawMessage, error) {
	c.mu.Lock()
	c.airportQueries = append(c.airportQueries, keyword)
	c.mu.Unlock()

	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	if c.err != nil {
		return nil, c.err
	}
	return c.airports, nil
}

// OfferQueries returns the flight-offer queries received so far, in order.
func (c *FlightDataClient) OfferQueries() []domain.FlightOfferQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.FlightOfferQuery(nil), c.offerQueries...)
}

// AirportQueries returns the airport keywords received so far, in order.
func (c *FlightDataClient) AirportQueries() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.airportQueries...)
}

// CallCount returns the total number of upstream calls made.
func (c *FlightDataClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.offerQueries) + len(c.airportQueries)
}

// Reset clears recorded calls.
func (c *FlightDataClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offerQueries = nil
	c.airportQueries = nil
}

func (c *FlightDataClient) wait(ctx context.Context) error {
	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.delay):
		}
	}
	return ctx.Err()
}

func legKey(origin, destination string) string {
	return origin + "-" + destination
}

// Ensure FlightDataClient implements domain.FlightDataClient at compile time.
var _ domain.FlightDataClient = (*FlightDataClient)(nil)

// SampleOffers returns a flight-offers payload with count offers for the given leg,
// shaped like the upstream flight-offer search data array.
func SampleOffers(origin, destination string, count int) json.RawMessage {
	offers := make([]map[string]any, count)
	for i := range offers {
		offers[i] = map[string]any{
			"type":                   "flight-offer",
			"id":                     strconv.Itoa(i + 1),
			"validatingAirlineCodes": []string{"BA"},
			"numberOfBookableSeats":  9,
			"price":                  map[string]any{"currency": domain.DefaultCurrency, "total": strconv.Itoa(400+i*25) + ".00"},
			"itineraries": []map[string]any{{
				"duration": "PT7H5M",
				"segments": []map[string]any{{
					"carrierCode": "BA",
					"number":      strconv.Itoa(100 + i),
					"departure":   map[string]any{"iataCode": origin, "at": "2026-12-01T18:30:00"},
					"arrival":     map[string]any{"iataCode": destination, "at": "2026-12-02T06:35:00"},
				}},
			}},
		}
	}

	data, err := json.Marshal(offers)
	if err != nil {
		panic(err)
	}
	return data
}

// SampleAirports returns a locations payload listing the given IATA codes.
func SampleAirports(codes ...string) json.RawMessage {
	locations := make([]map[string]any, len(codes))
	for i, code := range codes {
		locations[i] = map[string]any{
			"type":     "location",
			"subType":  "AIRPORT",
			"name":     code + " INTERNATIONAL",
			"iataCode": code,
		}
	}

	data, err := json.Marshal(locations)
	if err != nil {
		panic(err)
	}
	return data
}
