package ranking

import (
	"sort"
	"strings"

	"ordering-server/models/venue"
)

// Filter keeps the venues whose name contains query, ignoring case. An empty
// query keeps every venue.
func Filter(catalog map[string]*venue.Venue, query string) []*venue.Venue {
	needle := strings.ToLower(query)
	out := make([]*venue.Venue, 0, len(catalog))
	for _, v := range catalog {
		if needle == "" || strings.Contains(strings.ToLower(v.VenueName), needle) {
			out = append(out, v)
		}
	}
	return out
}

// Rank filters the catalog by query and orders the result by mode. Ties are
// broken by venue ID, so identical inputs always give the same order.
func Rank(catalog map[string]*venue.Venue, query string, mode SortMode) []*venue.Venue {
	venues := Filter(catalog, query)
	Sort(venues, mode)
	return venues
}

// Sort orders venues in place.
func Sort(venues []*venue.Venue, mode SortMode) {
	cmp := comparator(mode)
	sort.SliceStable(venues, func(i, j int) bool {
		return cmp(venues[i], venues[j]) < 0
	})
}

func comparator(mode SortMode) func(a, b *venue.Venue) int {
	switch mode {
	case WaitTime:
		return func(a, b *venue.Venue) int {
			if a.WaitTimeMinutes != b.WaitTimeMinutes {
				return compareInt(a.WaitTimeMinutes, b.WaitTimeMinutes)
			}
			return strings.Compare(a.VenueID, b.VenueID)
		}
	case DistanceAway:
		return func(a, b *venue.Venue) int {
			da, db := a.Distance(), b.Distance()
			switch {
			case da < db:
				return -1
			case da > db:
				return 1
			}
			return strings.Compare(a.VenueID, b.VenueID)
		}
	default:
		return venue.CompareConvenience
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
