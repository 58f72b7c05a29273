package db

import (
	"context"
	"encoding/json"
	"path"
	"sort"
	"sync"

	"ordering-server/geo"

	"github.com/rotisserie/eris"
)

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data    map[string]string            // Key-value store
	geoData map[string]map[string]GeoLoc // Geolocation data
	mu      sync.RWMutex
}

// GeoLoc represents a geolocation with latitude and longitude.
type GeoLoc struct {
	Latitude  float64
	Longitude float64
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		geoData: make(map[string]map[string]GeoLoc),
	}
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// AddLocationWithJSON adds geolocation with JSON data in the mock Redis.
func (m *MockRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return eris.Wrap(err, "failed to marshal JSON")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoLoc)
	}
	m.geoData[geoKey][memberKey] = GeoLoc{Latitude: lat, Longitude: lon}
	m.data[memberKey] = string(jsonData)
	return nil
}

// ReplaceLocationsWithJSON applies the whole swap under one lock.
func (m *MockRedisClient) ReplaceLocationsWithJSON(ctx context.Context, geoKey string, staleKeys []string, members []GeoMember) error {
	payloads, err := marshalMembers(members)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.geoData, geoKey)
	for _, k := range staleKeys {
		delete(m.data, k)
		delete(m.geoData, k)
	}
	if len(members) == 0 {
		return nil
	}
	locs := make(map[string]GeoLoc, len(members))
	for i, mem := range members {
		locs[mem.Key] = GeoLoc{Latitude: mem.Latitude, Longitude: mem.Longitude}
		m.data[mem.Key] = string(payloads[i])
	}
	m.geoData[geoKey] = locs
	return nil
}

// GetLocationsWithinRadius returns JSON data for members within radius miles,
// nearest first.
func (m *MockRedisClient) GetLocationsWithinRadius(ctx context.Context, key string, lat, lon, radius float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type hit struct {
		member string
		miles  float64
	}
	center := geo.Coordinate{Latitude: lat, Longitude: lon}
	var hits []hit
	for member, loc := range m.geoData[key] {
		d := geo.DistanceMiles(center, geo.Coordinate{Latitude: loc.Latitude, Longitude: loc.Longitude})
		if d <= radius {
			hits = append(hits, hit{member: member, miles: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].miles < hits[j].miles })

	results := make([]string, 0, len(hits))
	for _, h := range hits {
		if data, exists := m.data[h.member]; exists {
			results = append(results, data)
		}
	}
	return results, nil
}

// Keys returns every plain or geo key matching the glob pattern.
func (m *MockRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	seen := make(map[string]bool)
	add := func(k string) error {
		ok, err := path.Match(pattern, k)
		if err != nil {
			return eris.Wrapf(err, "bad pattern %q", pattern)
		}
		if ok && !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
		return nil
	}
	for k := range m.data {
		if err := add(k); err != nil {
			return nil, err
		}
	}
	for k := range m.geoData {
		if err := add(k); err != nil {
			return nil, err
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Del removes plain and geo keys.
func (m *MockRedisClient) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
		delete(m.geoData, k)
	}
	return nil
}

// Ping always succeeds.
func (m *MockRedisClient) Ping(ctx context.Context) error {
	return nil
}
