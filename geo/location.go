package geo

import (
	"context"
	"net/url"
	"strconv"
)

// LocationSupplier yields the user's coordinate, or false when it is unavailable.
type LocationSupplier interface {
	Location(ctx context.Context) (*Coordinate, bool)
}

// StaticLocation always returns the same coordinate. A disabled StaticLocation
// behaves as if location access was denied.
type StaticLocation struct {
	Coordinate Coordinate
	Enabled    bool
}

// NewStaticLocation creates a supplier for a fixed coordinate.
func NewStaticLocation(lat, lon float64, enabled bool) *StaticLocation {
	return &StaticLocation{
		Coordinate: Coordinate{Latitude: lat, Longitude: lon},
		Enabled:    enabled,
	}
}

func (s *StaticLocation) Location(ctx context.Context) (*Coordinate, bool) {
	if s == nil || !s.Enabled {
		return nil, false
	}
	c := s.Coordinate
	return &c, true
}

// QueryLocation reads the coordinate from lat/lon query arguments.
type QueryLocation struct {
	coord *Coordinate
}

// NewQueryLocation parses latArg and lonArg from vals. Missing or malformed
// values leave the location unavailable.
func NewQueryLocation(vals url.Values, latArg, lonArg string) *QueryLocation {
	lat, errLat := strconv.ParseFloat(vals.Get(latArg), 64)
	lon, errLon := strconv.ParseFloat(vals.Get(lonArg), 64)
	if errLat != nil || errLon != nil {
		return &QueryLocation{}
	}
	return &QueryLocation{coord: &Coordinate{Latitude: lat, Longitude: lon}}
}

func (q *QueryLocation) Location(ctx context.Context) (*Coordinate, bool) {
	if q.coord == nil {
		return nil, false
	}
	c := *q.coord
	return &c, true
}

// FirstAvailable tries each supplier in turn.
type FirstAvailable []LocationSupplier

func (f FirstAvailable) Location(ctx context.Context) (*Coordinate, bool) {
	for _, s := range f {
		if s == nil {
			continue
		}
		if c, ok := s.Location(ctx); ok {
			return c, true
		}
	}
	return nil, false
}
