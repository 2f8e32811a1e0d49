package domain

//go:generate mockgen -source=client.go -destination=mock_client.go -package=domain

import (
	"context"
	"encoding/json"
)

// FlightDataClient is the port to the third-party flight-data API.
// Implementations must be safe for concurrent use.
//
// Both methods return the upstream "data" payload untouched. Errors the API
// itself reports are returned as *UpstreamError; anything else (transport,
// decoding) is returned as a plain error.
type FlightDataClient interface {
	// SearchFlightOffers runs a flight-offer search for a single leg.
	SearchFlightOffers(ctx context.Context, query FlightOfferQuery) (json.RawMessage, error)

	// SearchAirports runs a location search restricted to airports.
	SearchAirports(ctx context.Context, keyword string) (json.RawMessage, error)
}
