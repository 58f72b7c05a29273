package venue

import (
	"math"
	"strings"
)

const (
	// NearTieMiles is the distance at or below which venues count as at hand.
	NearTieMiles = 0.1
	// bucketsPerMile gives 0.25 mile wide distance buckets.
	bucketsPerMile = 4
)

// Bucket returns the quarter-mile band the distance falls into.
func Bucket(miles float64) int {
	return int(math.Floor(miles * bucketsPerMile))
}

// ConvenienceLess orders venues for the Convenience sort. Unmeasured venues
// count as distance 0.
//
// When both venues are within NearTieMiles the shorter wait wins. When only one
// is, the nearer wins. Otherwise the nearer quarter-mile bucket wins and equal
// buckets fall back to the shorter wait.
func ConvenienceLess(a, b *Venue) bool {
	da, db := a.Distance(), b.Distance()

	aNear, bNear := da <= NearTieMiles, db <= NearTieMiles
	switch {
	case aNear && bNear:
		return a.WaitTimeMinutes < b.WaitTimeMinutes
	case aNear || bNear:
		return da < db
	}

	ba, bb := Bucket(da), Bucket(db)
	if ba != bb {
		return ba < bb
	}
	return a.WaitTimeMinutes < b.WaitTimeMinutes
}

// CompareConvenience is ConvenienceLess as a three-way comparison, breaking
// ties by ID so the result does not depend on input order.
func CompareConvenience(a, b *Venue) int {
	switch {
	case ConvenienceLess(a, b):
		return -1
	case ConvenienceLess(b, a):
		return 1
	}
	return strings.Compare(a.VenueID, b.VenueID)
}
