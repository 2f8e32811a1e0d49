package amadeus

import (
	"context"
	"net/url"
	"strconv"
)

const flightOffersPath = "/v2/shopping/flight-offers"

// FlightOffersParams are the query parameters of a flight-offer search.
type FlightOffersParams struct {
	OriginLocationCode      string
	DestinationLocationCode string
	DepartureDate           string
	Adults                  int
	CurrencyCode            string
	Max                     int
}

func (p FlightOffersParams) values() url.Values {
	v := url.Values{}
	v.Set("originLocationCode", p.OriginLocationCode)
	v.Set("destinationLocationCode", p.DestinationLocationCode)
	v.Set("departureDate", p.DepartureDate)
	v.Set("adults", strconv.Itoa(p.Adults))
	if p.CurrencyCode != "" {
		v.Set("currencyCode", p.CurrencyCode)
	}
	if p.Max > 0 {
		v.Set("max", strconv.Itoa(p.Max))
	}
	return v
}

// FlightOffersSearch calls GET /v2/shopping/flight-offers.
func (c *Client) FlightOffersSearch(ctx context.Context, params FlightOffersParams) (*Response, error) {
	return c.get(ctx, flightOffersPath, params.values())
}
