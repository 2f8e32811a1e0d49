package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/flight-search/flightsai/internal/domain"
	"github.com/flight-search/flightsai/internal/infrastructure/metrics"
)

// Operation names used for metrics.
const (
	OperationFlightOffers = "flight_offers"
	OperationLocations    = "locations"
)

// Adapter exposes a Client as a domain.FlightDataClient.
type Adapter struct {
	client *Client
}

// NewAdapter wraps the given client.
func NewAdapter(client *Client) *Adapter {
	return &Adapter{client: client}
}

// SearchFlightOffers implements domain.FlightDataClient.
func (a *Adapter) SearchFlightOffers(ctx context.Context, query domain.FlightOfferQuery) (json.RawMessage, error) {
	start := time.Now()
	resp, err := a.client.FlightOffersSearch(ctx, FlightOffersParams{
		OriginLocationCode:      query.Origin,
		DestinationLocationCode: query.Destination,
		DepartureDate:           query.DepartureDate,
		Adults:                  query.Adults,
		CurrencyCode:            query.CurrencyCode,
		Max:                     query.Max,
	})
	metrics.ObserveUpstreamCall(OperationFlightOffers, outcome(err), time.Since(start))
	if err != nil {
		return nil, toDomainError(err)
	}
	return resp.Data, nil
}

// SearchAirports implements domain.FlightDataClient.
func (a *Adapter) SearchAirports(ctx context.Context, keyword string) (json.RawMessage, error) {
	start := time.Now()
	resp, err := a.client.Locations(ctx, LocationsParams{
		Keyword: keyword,
		SubType: SubTypeAirport,
	})
	metrics.ObserveUpstreamCall(OperationLocations, outcome(err), time.Since(start))
	if err != nil {
		return nil, toDomainError(err)
	}
	return resp.Data, nil
}

// toDomainError turns API-reported failures into *domain.UpstreamError
// and leaves every other error untouched.
func toDomainError(err error) error {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return domain.NewUpstreamError(respErr.StatusCode, respErr)
	}
	return err
}

func outcome(err error) string {
	var respErr *ResponseError
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &respErr):
		return metrics.OutcomeUpstreamError
	default:
		return metrics.OutcomeFailure
	}
}

// Ensure Adapter implements domain.FlightDataClient at compile time.
var _ domain.FlightDataClient = (*Adapter)(nil)
