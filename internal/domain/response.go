package domain

import "encoding/json"

// emptyOffers is the payload used for a leg that was not searched.
var emptyOffers = json.RawMessage(`[]`)

// FlightSearchResponse is the merged result of the forward and return leg searches.
// Both fields hold the upstream data arrays unmodified.
type FlightSearchResponse struct {
	// DepartureFlights holds the offers for the forward leg
	DepartureFlights json.RawMessage `json:"departure_flights" swaggertype:"array,object"`

	// ReturnFlights holds the offers for the return leg, or [] for one-way searches
	ReturnFlights json.RawMessage `json:"return_flights" swaggertype:"array,object"`
}

// NewFlightSearchResponse builds a response, substituting an empty array for a missing return leg.
func NewFlightSearchResponse(departure, ret json.RawMessage) *FlightSearchResponse {
	if ret == nil {
		ret = emptyOffers
	}
	return &FlightSearchResponse{
		DepartureFlights: departure,
		ReturnFlights:    ret,
	}
}

// AutocompleteResponse is the upstream location array, passed through as-is.
type AutocompleteResponse = json.RawMessage
