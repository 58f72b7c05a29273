package catalog

import (
	"context"

	"ordering-server/models/venue"
	"ordering-server/util"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// CatalogApiClientMock serves the catalog from a JSON fixture on disk.
type CatalogApiClientMock struct {
	path string
}

// NewCatalogApiClientMock creates a new instance of CatalogApiClientMock
func NewCatalogApiClientMock(path string) *CatalogApiClientMock {
	return &CatalogApiClientMock{path: path}
}

func (c *CatalogApiClientMock) GetCatalog(ctx context.Context) (map[string]*venue.Venue, error) {
	catalog, err := util.ReadCatalogFromJSON(c.path)
	if err != nil {
		zap.L().Error("Could not read catalog fixture", zap.String("path", c.path), zap.Error(err))
		return nil, err
	}
	return catalog, nil
}

func (c *CatalogApiClientMock) GetVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	catalog, err := c.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	v, ok := catalog[venueID]
	if !ok {
		return nil, eris.Wrapf(ErrUnknownVenue, "restaurant %s not in fixture", venueID)
	}
	return v, nil
}
