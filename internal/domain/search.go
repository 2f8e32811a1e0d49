package domain

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Fixed parameters sent with every flight-offer search.
const (
	// DefaultCurrency is the currency all offers are priced in.
	DefaultCurrency = "USD"
	// MaxOffersPerLeg caps the number of offers requested for a single leg.
	MaxOffersPerLeg = 20
	// DefaultPassengers is used when the request does not name a passenger count.
	DefaultPassengers = 1
)

// FlightSearchRequest defines the parameters of a one-way or round-trip search.
type FlightSearchRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `validate:"required,len=3"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `validate:"required,len=3"`

	// DepartureDate is the outbound date as accepted by the upstream API (YYYY-MM-DD)
	DepartureDate string `validate:"required"`

	// ReturnDate is the inbound date; empty means one-way
	ReturnDate string

	// Passengers is the number of adult travellers
	Passengers int
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks required fields first, then the airport code lengths.
// The returned error is a *ValidationError carrying the client-facing message.
func (r *FlightSearchRequest) Validate() error {
	err := structValidator().Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return NewValidationError(MsgMissingRequiredFields)
		}
	}
	return NewValidationError(MsgInvalidAirportCode)
}

// HasReturn reports whether a return leg must be searched.
func (r *FlightSearchRequest) HasReturn() bool {
	return r.ReturnDate != ""
}

// OutboundQuery builds the forward-leg query (origin to destination).
func (r *FlightSearchRequest) OutboundQuery() FlightOfferQuery {
	return newFlightOfferQuery(r.Origin, r.Destination, r.DepartureDate, r.Passengers)
}

// InboundQuery builds the return-leg query (destination back to origin).
func (r *FlightSearchRequest) InboundQuery() FlightOfferQuery {
	return newFlightOfferQuery(r.Destination, r.Origin, r.ReturnDate, r.Passengers)
}

// FlightOfferQuery is a single leg as sent to the upstream flight-offer search.
type FlightOfferQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	Adults        int
	CurrencyCode  string
	Max           int
}

func newFlightOfferQuery(origin, destination, date string, adults int) FlightOfferQuery {
	return FlightOfferQuery{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: date,
		Adults:        adults,
		CurrencyCode:  DefaultCurrency,
		Max:           MaxOffersPerLeg,
	}
}

// AutocompleteQuery is the free-text keyword typed into an airport field.
type AutocompleteQuery string
