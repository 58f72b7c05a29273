package db

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// ErrKeyNotFound is returned by Get when the key does not exist.
var ErrKeyNotFound = redis.Nil

// GeoMember is one entry of a geo set together with the JSON payload stored
// under its member key.
type GeoMember struct {
	Key       string
	Latitude  float64
	Longitude float64
	Data      interface{}
}

// RedisClient defines the methods the DAOs need from Redis.
// Radii are in miles.
type RedisClient interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error
	// ReplaceLocationsWithJSON atomically drops geoKey and staleKeys, then
	// stores members. Either every write lands or none does.
	ReplaceLocationsWithJSON(ctx context.Context, geoKey string, staleKeys []string, members []GeoMember) error
	GetLocationsWithinRadius(ctx context.Context, key string, lat, lon, radius float64) ([]string, error)
	Keys(ctx context.Context, pattern string) ([]string, error)
	Del(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}
