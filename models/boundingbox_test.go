package models

import (
	"testing"

	"ordering-server/models/venue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBoxOf(t *testing.T) {
	venues := []*venue.Venue{
		{VenueID: "001", VenueLat: 32.8814, VenueLon: -117.2352},
		{VenueID: "004", VenueLat: 32.8808, VenueLon: -117.2430},
		{VenueID: "002", VenueLat: 32.8846, VenueLon: -117.2391},
	}

	b, ok := BoundingBoxOf(venues)

	require.True(t, ok)
	assert.Equal(t, 32.8808, b.LatMin)
	assert.Equal(t, 32.8846, b.LatMax)
	assert.Equal(t, -117.2430, b.LngMin)
	assert.Equal(t, -117.2352, b.LngMax)
	assert.InDelta(t, 32.8827, b.Lat, 1e-9)
	assert.InDelta(t, -117.2391, b.Lng, 1e-9)

	corners := b.Corners()
	require.Len(t, corners, 5)
	assert.Equal(t, corners[0], corners[4])
	assert.Equal(t, []float64{-117.2430, 32.8846}, corners[1])
}

func TestBoundingBoxOf_Empty(t *testing.T) {
	_, ok := BoundingBoxOf(nil)
	assert.False(t, ok)
}
