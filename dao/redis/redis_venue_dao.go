package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ordering-server/db"
	"ordering-server/models/venue"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const VENUES_GEO_KEY_V1 = "venues_geo_v1"
const VENUES_GEO_PLACE_MEMBER_FORMAT_V1 = "venues_geo_place_v1:%s"

// ErrVenueNotCached is returned when a venue is not in the store.
var ErrVenueNotCached = eris.New("venue not cached")

// RedisVenueDAO handles venue operations using Redis.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

func venueKey(venueID string) string {
	return fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, venueID)
}

// UpsertVenue stores the venue as a geolocation with the venue's JSON data.
// Any measured distance is dropped since it belongs to a single request.
func (dao *RedisVenueDAO) UpsertVenue(ctx context.Context, v venue.Venue) error {
	v.ClearDistance()
	return dao.client.AddLocationWithJSON(ctx, VENUES_GEO_KEY_V1, venueKey(v.VenueID), v.VenueLat, v.VenueLon, v)
}

// ReplaceCatalog swaps the stored catalog for the given one in a single
// write. On error the previous catalog is left as it was.
func (dao *RedisVenueDAO) ReplaceCatalog(ctx context.Context, catalog map[string]*venue.Venue) error {
	ids, err := dao.ListAllVenueIDs(ctx)
	if err != nil {
		return err
	}

	var stale []string
	for _, id := range ids {
		if _, keep := catalog[id]; !keep {
			stale = append(stale, venueKey(id))
		}
	}

	members := make([]db.GeoMember, 0, len(catalog))
	for _, v := range catalog {
		if v == nil {
			continue
		}
		stored := *v
		stored.ClearDistance()
		members = append(members, db.GeoMember{
			Key:       venueKey(stored.VenueID),
			Latitude:  stored.VenueLat,
			Longitude: stored.VenueLon,
			Data:      stored,
		})
	}

	if err := dao.client.ReplaceLocationsWithJSON(ctx, VENUES_GEO_KEY_V1, stale, members); err != nil {
		return eris.Wrap(err, "[RedisVenueDAO] failed to replace catalog")
	}
	zap.L().Info("[RedisVenueDAO] Replaced catalog",
		zap.Int("venues", len(members)),
		zap.Int("removed", len(stale)))
	return nil
}

// GetVenue loads one venue by ID.
func (dao *RedisVenueDAO) GetVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	str, err := dao.client.Get(ctx, venueKey(venueID))
	if err != nil {
		if eris.Is(err, db.ErrKeyNotFound) {
			return nil, eris.Wrapf(ErrVenueNotCached, "venue %s", venueID)
		}
		return nil, eris.Wrapf(err, "[RedisVenueDAO] failed to get venue %s", venueID)
	}

	var v venue.Venue
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, eris.Wrapf(err, "failed to unmarshal venue %s", venueID)
	}
	return &v, nil
}

// GetCatalog loads every stored venue keyed by ID.
func (dao *RedisVenueDAO) GetCatalog(ctx context.Context) (map[string]*venue.Venue, error) {
	ids, err := dao.ListAllVenueIDs(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make(map[string]*venue.Venue, len(ids))
	for _, id := range ids {
		v, err := dao.GetVenue(ctx, id)
		if err != nil {
			if eris.Is(err, ErrVenueNotCached) {
				continue
			}
			return nil, err
		}
		catalog[v.VenueID] = v
	}
	return catalog, nil
}

// GetNearbyVenues retrieves venues within radius miles, nearest first.
func (dao *RedisVenueDAO) GetNearbyVenues(ctx context.Context, lat, lon float64, radius float64) ([]venue.Venue, error) {
	venuesJSON, err := dao.client.GetLocationsWithinRadius(ctx, VENUES_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, eris.Wrap(err, "[RedisVenueDAO] failed to get venues")
	}

	venues := make([]venue.Venue, len(venuesJSON))
	for i, venueJSON := range venuesJSON {
		if err := json.Unmarshal([]byte(venueJSON), &venues[i]); err != nil {
			return nil, eris.Wrap(err, "failed to unmarshal venue JSON")
		}
	}
	zap.L().Debug("[RedisVenueDAO] Nearby venues", zap.Int("count", len(venues)), zap.Float64("radius_mi", radius))
	return venues, nil
}

// ListAllVenueIDs returns all venue IDs present in the store.
func (dao *RedisVenueDAO) ListAllVenueIDs(ctx context.Context) ([]string, error) {
	keys, err := dao.client.Keys(ctx, venueKey("*"))
	if err != nil {
		return nil, eris.Wrap(err, "failed to list venue geo keys")
	}
	prefix := venueKey("")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}
