package db

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// GeoRedisClient wraps a go-redis client with geo helpers.
type GeoRedisClient struct {
	client *redis.Client
}

// NewRedis builds a go-redis client from connection settings.
func NewRedis(address, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
}

// NewGeoRedisClient checks the connection and returns the wrapped client.
func NewGeoRedisClient(ctx context.Context, client *redis.Client) (*GeoRedisClient, error) {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, eris.Wrap(err, "could not connect to redis")
	}
	zap.L().Info("Connected to Redis", zap.String("addr", client.Options().Addr))

	return &GeoRedisClient{client: client}, nil
}

// Set sets a key-value pair in Redis
func (r *GeoRedisClient) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *GeoRedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

// AddLocationWithJSON stores geolocation along with associated JSON data.
func (r *GeoRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return eris.Wrap(err, "failed to marshal JSON")
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.GeoAdd(ctx, geoKey, &redis.GeoLocation{
			Name:      memberKey,
			Latitude:  lat,
			Longitude: lon,
		})
		pipe.Set(ctx, memberKey, jsonData, 0)
		return nil
	})
	if err != nil {
		return eris.Wrapf(err, "failed to add geolocation for %s", memberKey)
	}

	zap.L().Debug("Added geolocation and JSON", zap.String("member", memberKey))
	return nil
}

// ReplaceLocationsWithJSON swaps the whole geo set in one MULTI/EXEC.
func (r *GeoRedisClient) ReplaceLocationsWithJSON(ctx context.Context, geoKey string, staleKeys []string, members []GeoMember) error {
	payloads, err := marshalMembers(members)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, append([]string{geoKey}, staleKeys...)...)
		if len(members) == 0 {
			return nil
		}
		locations := make([]*redis.GeoLocation, len(members))
		for i, m := range members {
			locations[i] = &redis.GeoLocation{Name: m.Key, Latitude: m.Latitude, Longitude: m.Longitude}
			pipe.Set(ctx, m.Key, payloads[i], 0)
		}
		pipe.GeoAdd(ctx, geoKey, locations...)
		return nil
	})
	if err != nil {
		return eris.Wrapf(err, "failed to replace geo set %s", geoKey)
	}

	zap.L().Debug("Replaced geo set",
		zap.String("key", geoKey),
		zap.Int("members", len(members)),
		zap.Int("stale", len(staleKeys)))
	return nil
}

func marshalMembers(members []GeoMember) ([][]byte, error) {
	payloads := make([][]byte, len(members))
	for i, m := range members {
		data, err := json.Marshal(m.Data)
		if err != nil {
			return nil, eris.Wrapf(err, "failed to marshal JSON for %s", m.Key)
		}
		payloads[i] = data
	}
	return payloads, nil
}

// GetLocationsWithinRadius finds all members within radius miles and returns their JSON data.
func (r *GeoRedisClient) GetLocationsWithinRadius(ctx context.Context, key string, lat, lon, radius float64) ([]string, error) {
	results, err := r.client.GeoRadius(ctx, key, lon, lat, &redis.GeoRadiusQuery{
		Radius: radius,
		Unit:   "mi",
		Sort:   "ASC",
	}).Result()
	if err != nil {
		return nil, eris.Wrap(err, "failed to get nearby locations")
	}

	objects := make([]string, 0, len(results))
	for _, loc := range results {
		data, err := r.client.Get(ctx, loc.Name).Result()
		if err != nil {
			zap.L().Warn("Skipping member", zap.String("member", loc.Name), zap.Error(err))
			continue
		}
		objects = append(objects, data)
	}

	return objects, nil
}

// Keys lists keys matching a glob pattern using SCAN.
func (r *GeoRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, eris.Wrapf(err, "failed to scan keys %q", pattern)
	}
	return keys, nil
}

// Del removes the given keys. Missing keys are ignored.
func (r *GeoRedisClient) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *GeoRedisClient) Ping(ctx context.Context) error {
	_, err := r.client.Ping(ctx).Result()
	return err
}
