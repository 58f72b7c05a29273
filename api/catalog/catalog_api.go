package catalog

import (
	"context"

	"ordering-server/models/venue"

	"github.com/rotisserie/eris"
)

// ErrUnknownVenue is returned by GetVenue when the catalog has no such venue.
var ErrUnknownVenue = eris.New("catalog: unknown restaurant")

// CatalogAPI defines the interface for fetching the restaurant catalog.
type CatalogAPI interface {
	GetCatalog(ctx context.Context) (map[string]*venue.Venue, error)
	GetVenue(ctx context.Context, venueID string) (*venue.Venue, error)
}
