// Package http provides swagger type definitions for API documentation.
// The search and autocomplete endpoints pass upstream payloads through
// untouched; these types describe the fields the web client relies on so
// that swag can document them.
package http

// SwaggerSearchResponse represents the search API response for swagger documentation.
// @Description Flight offers for the departure leg and, for round trips, the return leg
type SwaggerSearchResponse struct {
	// DepartureFlights holds the offers for the forward leg
	DepartureFlights []SwaggerFlightOffer `json:"departure_flights"`

	// ReturnFlights holds the offers for the return leg (empty for one-way searches)
	ReturnFlights []SwaggerFlightOffer `json:"return_flights"`
}

// SwaggerFlightOffer represents a single flight offer.
// @Description Flight offer as returned by the flight-offer search
type SwaggerFlightOffer struct {
	// ID identifies the offer within one search response
	ID string `json:"id" example:"1"`

	// NumberOfBookableSeats is the number of seats left at this price
	NumberOfBookableSeats int `json:"numberOfBookableSeats" example:"9"`

	// ValidatingAirlineCodes lists the ticketing carriers
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes" example:"BA"`

	// Itineraries holds one itinerary per requested leg
	Itineraries []SwaggerItinerary `json:"itineraries"`

	// Price is the total price for all passengers
	Price SwaggerPrice `json:"price"`
}

// SwaggerItinerary represents the flights making up one leg.
// @Description One leg of a flight offer
type SwaggerItinerary struct {
	// Duration is the total leg duration in ISO 8601 format
	Duration string `json:"duration" example:"PT7H5M"`

	// Segments lists the individual flights of the leg
	Segments []SwaggerSegment `json:"segments"`
}

// SwaggerSegment represents a single flight within an itinerary.
// @Description Single flight segment
type SwaggerSegment struct {
	// CarrierCode is the marketing carrier IATA code
	CarrierCode string `json:"carrierCode" example:"BA"`

	// Number is the flight number
	Number string `json:"number" example:"178"`

	// Departure is the departure point of the segment
	Departure SwaggerFlightEndpoint `json:"departure"`

	// Arrival is the arrival point of the segment
	Arrival SwaggerFlightEndpoint `json:"arrival"`

	// Duration is the segment duration in ISO 8601 format
	Duration string `json:"duration" example:"PT7H5M"`
}

// SwaggerFlightEndpoint represents a departure or arrival point.
// @Description Departure or arrival point of a segment
type SwaggerFlightEndpoint struct {
	// IataCode is the airport IATA code
	IataCode string `json:"iataCode" example:"JFK"`

	// Terminal is the terminal identifier
	Terminal string `json:"terminal,omitempty" example:"7"`

	// At is the local date and time
	At string `json:"at" example:"2026-12-01T18:30:00"`
}

// SwaggerPrice represents the price of an offer.
// @Description Offer price
type SwaggerPrice struct {
	// Currency is the ISO 4217 currency code
	Currency string `json:"currency" example:"USD"`

	// Total is the total amount, as a decimal string
	Total string `json:"total" example:"420.35"`
}

// SwaggerLocation represents an airport returned by autocomplete.
// @Description Airport matching the autocomplete keyword
type SwaggerLocation struct {
	// Type is always "location"
	Type string `json:"type" example:"location"`

	// SubType is the location kind
	SubType string `json:"subType" example:"AIRPORT"`

	// Name is the airport name
	Name string `json:"name" example:"HEATHROW"`

	// IataCode is the airport IATA code
	IataCode string `json:"iataCode" example:"LHR"`
}
