package amadeus

import (
	"context"
	"net/url"
)

const locationsPath = "/v1/reference-data/locations"

// Location sub-types accepted by the locations endpoint.
const (
	SubTypeAirport = "AIRPORT"
	SubTypeCity    = "CITY"
)

// LocationsParams are the query parameters of a location search.
type LocationsParams struct {
	Keyword string
	SubType string
}

// Locations calls GET /v1/reference-data/locations.
func (c *Client) Locations(ctx context.Context, params LocationsParams) (*Response, error) {
	v := url.Values{}
	v.Set("keyword", params.Keyword)
	v.Set("subType", params.SubType)
	return c.get(ctx, locationsPath, v)
}
