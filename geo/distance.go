// Package geo measures how far venues are from the user.
package geo

import (
	"math"

	"ordering-server/models/venue"
)

const (
	earthRadiusKm = 6371.0088
	milesPerKm    = 0.621371
)

// Coordinate is a WGS-84 latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceKm returns the great-circle distance between two coordinates.
func DistanceKm(a, b Coordinate) float64 {
	lat1, lat2 := toRadians(a.Latitude), toRadians(b.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// DistanceMiles returns the great-circle distance in miles.
func DistanceMiles(a, b Coordinate) float64 {
	return DistanceKm(a, b) * milesPerKm
}

// VenueCoordinate returns where the venue is.
func VenueCoordinate(v *venue.Venue) Coordinate {
	return Coordinate{Latitude: v.VenueLat, Longitude: v.VenueLon}
}

// AnnotateDistances sets each venue's distance from user. With no user
// coordinate the venues are left unmeasured.
func AnnotateDistances(catalog map[string]*venue.Venue, user *Coordinate) {
	if user == nil {
		return
	}
	for _, v := range catalog {
		v.SetDistance(DistanceMiles(*user, VenueCoordinate(v)))
	}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
