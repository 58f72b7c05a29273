package venue

import (
	"fmt"
	"math"
)

// Venue represents a restaurant with its opening hours and live wait time.
type Venue struct {
	VenueID          string   `json:"id"`
	VenueName        string   `json:"name"`
	VenueDescription string   `json:"description"`

	// Opening hours on a 24 hour clock.
	OpenHour    int `json:"openHour"`
	OpenMinute  int `json:"openMinute"`
	CloseHour   int `json:"closeHour"`
	CloseMinute int `json:"closeMinute"`

	VenueLat float64 `json:"latitude"`
	VenueLon float64 `json:"longitude"`

	MenuItems       []string `json:"menuItems"`
	PriceTier       int      `json:"money"`
	QueueLength     *int     `json:"numInLine,omitempty"`
	WaitTimeMinutes int      `json:"waitTime"`

	// DistanceMiles is nil until the venue has been measured against a user coordinate.
	DistanceMiles *float64 `json:"distanceMiles,omitempty"`
}

const (
	fastWaitThreshold     = 10
	moderateWaitThreshold = 30
)

// Wait levels returned by WaitLevel.
const (
	WaitFast     = "fast"
	WaitModerate = "moderate"
	WaitSlow     = "slow"
)

// Equal reports whether both venues carry the same ID. Other fields are ignored.
func (v *Venue) Equal(other *Venue) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.VenueID == other.VenueID
}

// SetDistance records the distance to the user in miles.
func (v *Venue) SetDistance(miles float64) {
	v.DistanceMiles = &miles
}

// ClearDistance marks the venue as unmeasured.
func (v *Venue) ClearDistance() {
	v.DistanceMiles = nil
}

// HasDistance reports whether a distance has been recorded.
func (v *Venue) HasDistance() bool {
	return v.DistanceMiles != nil
}

// Distance returns the measured distance, or 0 when unmeasured.
func (v *Venue) Distance() float64 {
	if v.DistanceMiles == nil {
		return 0
	}
	return *v.DistanceMiles
}

// DistanceAsString renders the distance with one decimal, rounding half up.
func (v *Venue) DistanceAsString() string {
	if v.DistanceMiles == nil {
		return "N/A"
	}
	d := *v.DistanceMiles
	if d < 0.05 {
		return "<0.1"
	}
	return fmt.Sprintf("%.1f", math.Floor(d*10+0.5)/10)
}

// CostAsString maps the price tier to dollar signs.
func (v *Venue) CostAsString() string {
	switch v.PriceTier {
	case 1:
		return "$"
	case 2:
		return "$$"
	case 3:
		return "$$$"
	default:
		return ""
	}
}

// WaitLevel buckets the wait time into fast, moderate or slow.
func (v *Venue) WaitLevel() string {
	switch {
	case v.WaitTimeMinutes < fastWaitThreshold:
		return WaitFast
	case v.WaitTimeMinutes < moderateWaitThreshold:
		return WaitModerate
	default:
		return WaitSlow
	}
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, lat=%f, lon=%f, wait=%d, distance=%s)",
		v.VenueID, v.VenueName, v.VenueLat, v.VenueLon, v.WaitTimeMinutes, v.DistanceAsString())
}
