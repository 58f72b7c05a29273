package services

import (
	"context"

	"ordering-server/api/catalog"
	"ordering-server/dao/redis"
	"ordering-server/geo"
	"ordering-server/models/venue"
	"ordering-server/ranking"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

type VenueService struct {
	venueDao   *redis.RedisVenueDAO
	catalogAPI catalog.CatalogAPI
}

// NewVenueService constructs a new VenueService. catalogAPI may be nil, in
// which case venues missing from the store are reported as not found.
func NewVenueService(venueDao *redis.RedisVenueDAO, catalogAPI catalog.CatalogAPI) *VenueService {
	return &VenueService{
		venueDao:   venueDao,
		catalogAPI: catalogAPI,
	}
}

// ListVenues loads the stored catalog, measures it against the supplier's
// coordinate when one is available, and returns the venues matching query
// in the order given by mode.
func (vs *VenueService) ListVenues(ctx context.Context, query string, mode ranking.SortMode, loc geo.LocationSupplier) ([]*venue.Venue, error) {
	stored, err := vs.venueDao.GetCatalog(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "failed to load catalog")
	}
	geo.AnnotateDistances(stored, userCoordinate(ctx, loc))
	return ranking.Rank(stored, query, mode), nil
}

// GetVenue returns one venue, measured against the supplier's coordinate.
// Venues missing from the store are fetched from the catalog and cached.
func (vs *VenueService) GetVenue(ctx context.Context, venueID string, loc geo.LocationSupplier) (*venue.Venue, error) {
	v, err := vs.venueDao.GetVenue(ctx, venueID)
	if err != nil {
		if !eris.Is(err, redis.ErrVenueNotCached) {
			return nil, err
		}
		if v, err = vs.fetchVenue(ctx, venueID); err != nil {
			return nil, err
		}
	}
	if user := userCoordinate(ctx, loc); user != nil {
		v.SetDistance(geo.DistanceMiles(*user, geo.VenueCoordinate(v)))
	}
	return v, nil
}

// Nearby returns venues within radius miles of center in Convenience order.
func (vs *VenueService) Nearby(ctx context.Context, center geo.Coordinate, radius float64) ([]*venue.Venue, error) {
	venues, err := vs.venueDao.GetNearbyVenues(ctx, center.Latitude, center.Longitude, radius)
	if err != nil {
		return nil, eris.Wrap(err, "failed to load nearby venues")
	}

	byID := make(map[string]*venue.Venue, len(venues))
	for i := range venues {
		byID[venues[i].VenueID] = &venues[i]
	}
	geo.AnnotateDistances(byID, &center)
	return ranking.Rank(byID, "", ranking.Convenience), nil
}

func (vs *VenueService) fetchVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	if vs.catalogAPI == nil {
		return nil, eris.Wrapf(ErrVenueNotFound, "venue %s", venueID)
	}

	v, err := vs.catalogAPI.GetVenue(ctx, venueID)
	if err != nil {
		if eris.Is(err, catalog.ErrUnknownVenue) {
			return nil, eris.Wrapf(ErrVenueNotFound, "venue %s", venueID)
		}
		return nil, eris.Wrapf(err, "failed to fetch venue %s", venueID)
	}

	if err := vs.venueDao.UpsertVenue(ctx, *v); err != nil {
		zap.L().Warn("[VenueService] Could not cache fetched venue", zap.String("venue_id", venueID), zap.Error(err))
	}
	return v, nil
}

func userCoordinate(ctx context.Context, loc geo.LocationSupplier) *geo.Coordinate {
	if loc == nil {
		return nil
	}
	c, ok := loc.Location(ctx)
	if !ok {
		return nil
	}
	return c
}
