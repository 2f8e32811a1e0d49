package http

import (
	"github.com/flight-search/flightsai/internal/domain"
)

// ToDomainRequest converts the request DTO into a domain search request.
// Passenger coercion happens here, ahead of field validation in the use case.
func ToDomainRequest(req *SearchFlightsRequest) (domain.FlightSearchRequest, error) {
	passengers, err := req.PassengerCount()
	if err != nil {
		return domain.FlightSearchRequest{}, err
	}

	return domain.FlightSearchRequest{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers:    passengers,
	}, nil
}

// ToAutocompleteQuery converts the raw query parameter into a domain query.
func ToAutocompleteQuery(query string) domain.AutocompleteQuery {
	return domain.AutocompleteQuery(query)
}
