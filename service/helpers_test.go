package services

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"ordering-server/dao/redis"
	"ordering-server/db"
	"ordering-server/geo"
	"ordering-server/util"

	"github.com/stretchr/testify/require"
)

// Default user position next to the sample venues.
var campus = geo.Coordinate{Latitude: 32.879765, Longitude: -117.236202}

func fixturePath(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "resources", "catalog.json")
}

// seededDAO returns a DAO holding the sample catalog.
func seededDAO(t *testing.T) *redis.RedisVenueDAO {
	t.Helper()
	catalog, err := util.ReadCatalogFromJSON(fixturePath(t))
	require.NoError(t, err)

	dao := redis.NewRedisVenueDAO(db.NewMockRedisClient())
	require.NoError(t, dao.ReplaceCatalog(context.Background(), catalog))
	return dao
}
