package catalog

import (
	"context"
	"encoding/json"
	"net/url"

	"ordering-server/api"
	"ordering-server/models/venue"
	"ordering-server/util"

	"github.com/rotisserie/eris"
)

const (
	CATALOG_ENDPOINT = "/restaurants"
	VENUE_ENDPOINT   = "/restaurant/"
)

// CatalogApiClient embeds the common HTTPClient
type CatalogApiClient struct {
	*api.HTTPClient
}

// NewCatalogApiClient creates a new instance of CatalogApiClient
func NewCatalogApiClient(httpClient *api.HTTPClient) *CatalogApiClient {
	return &CatalogApiClient{
		HTTPClient: httpClient,
	}
}

// GetCatalog retrieves every restaurant keyed by ID.
func (c *CatalogApiClient) GetCatalog(ctx context.Context) (map[string]*venue.Venue, error) {
	var raw json.RawMessage
	if err := c.Request(ctx, "GET", CATALOG_ENDPOINT, nil, nil, &raw); err != nil {
		return nil, eris.Wrap(err, "catalog: fetch restaurants")
	}
	return util.DecodeCatalog(raw)
}

// GetVenue retrieves a restaurant given its ID
func (c *CatalogApiClient) GetVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	var response venue.Venue
	if err := c.Request(ctx, "GET", VENUE_ENDPOINT+url.PathEscape(venueID), nil, nil, &response); err != nil {
		if eris.Is(err, api.ErrNotFound) {
			return nil, eris.Wrapf(ErrUnknownVenue, "restaurant %s", venueID)
		}
		return nil, eris.Wrapf(err, "catalog: fetch restaurant %s", venueID)
	}
	if response.VenueID == "" {
		response.VenueID = venueID
	}
	return &response, nil
}
