package models

import "ordering-server/models/venue"

// BoundingBox is the smallest latitude/longitude rectangle holding a set of venues.
type BoundingBox struct {
	Lat    float64 `json:"lat"`
	LatMax float64 `json:"lat_max"`
	LatMin float64 `json:"lat_min"`
	Lng    float64 `json:"lng"`
	LngMax float64 `json:"lng_max"`
	LngMin float64 `json:"lng_min"`
}

// BoundingBoxOf returns the box around venues, or false when there are none.
// Lat and Lng hold the centre.
func BoundingBoxOf(venues []*venue.Venue) (BoundingBox, bool) {
	if len(venues) == 0 {
		return BoundingBox{}, false
	}

	b := BoundingBox{
		LatMin: venues[0].VenueLat, LatMax: venues[0].VenueLat,
		LngMin: venues[0].VenueLon, LngMax: venues[0].VenueLon,
	}
	for _, v := range venues[1:] {
		b.LatMin = min(b.LatMin, v.VenueLat)
		b.LatMax = max(b.LatMax, v.VenueLat)
		b.LngMin = min(b.LngMin, v.VenueLon)
		b.LngMax = max(b.LngMax, v.VenueLon)
	}
	b.Lat = (b.LatMin + b.LatMax) / 2
	b.Lng = (b.LngMin + b.LngMax) / 2
	return b, true
}

// Corners lists the box as a closed lng/lat polygon: SW, NW, NE, SE, SW.
func (b BoundingBox) Corners() [][]float64 {
	return [][]float64{
		{b.LngMin, b.LatMin},
		{b.LngMin, b.LatMax},
		{b.LngMax, b.LatMax},
		{b.LngMax, b.LatMin},
		{b.LngMin, b.LatMin},
	}
}
