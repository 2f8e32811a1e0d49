package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/flight-search/flightsai/internal/domain"
)

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// SearchFlights validates the request and searches the forward leg, then the
	// return leg when a return date is given.
	SearchFlights(ctx context.Context, req domain.FlightSearchRequest) (*domain.FlightSearchResponse, error)

	// Autocomplete looks up airports matching the typed keyword.
	Autocomplete(ctx context.Context, query domain.AutocompleteQuery) (domain.AutocompleteResponse, error)
}

// flightSearchUseCase implements FlightSearchUseCase on top of a FlightDataClient.
type flightSearchUseCase struct {
	client domain.FlightDataClient
}

// NewFlightSearchUseCase creates a new FlightSearchUseCase backed by the given client.
func NewFlightSearchUseCase(client domain.FlightDataClient) FlightSearchUseCase {
	return &flightSearchUseCase{client: client}
}

// SearchFlights implements FlightSearchUseCase.SearchFlights.
// No upstream call is made for an invalid request, and the return leg is only
// issued once the forward leg has succeeded.
func (uc *flightSearchUseCase) SearchFlights(ctx context.Context, req domain.FlightSearchRequest) (*domain.FlightSearchResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	departure, err := uc.client.SearchFlightOffers(ctx, req.OutboundQuery())
	if err != nil {
		return nil, fmt.Errorf("search departure flights: %w", err)
	}

	var ret json.RawMessage
	if req.HasReturn() {
		ret, err = uc.client.SearchFlightOffers(ctx, req.InboundQuery())
		if err != nil {
			return nil, fmt.Errorf("search return flights: %w", err)
		}
	}

	return domain.NewFlightSearchResponse(departure, ret), nil
}

// Autocomplete implements FlightSearchUseCase.Autocomplete.
// The keyword is forwarded as typed, including the empty string.
func (uc *flightSearchUseCase) Autocomplete(ctx context.Context, query domain.AutocompleteQuery) (domain.AutocompleteResponse, error) {
	data, err := uc.client.SearchAirports(ctx, string(query))
	if err != nil {
		return nil, fmt.Errorf("search airports: %w", err)
	}
	return data, nil
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
