package handlers

import (
	"time"

	"ordering-server/models/venue"
)

// VenueView is the display form of a venue.
type VenueView struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Open            bool     `json:"open"`
	Hours           string   `json:"hours"`
	Distance        string   `json:"distance"`
	DistanceMiles   *float64 `json:"distance_miles,omitempty"`
	Cost            string   `json:"cost"`
	WaitTimeMinutes int      `json:"wait_time_minutes"`
	WaitLevel       string   `json:"wait_level"`
	QueueLength     *int     `json:"queue_length,omitempty"`
	MenuItems       []string `json:"menu_items"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
}

// NewVenueView renders v as seen at now.
func NewVenueView(v *venue.Venue, now time.Time) VenueView {
	menu := v.MenuItems
	if menu == nil {
		menu = []string{}
	}
	return VenueView{
		ID:              v.VenueID,
		Name:            v.VenueName,
		Description:     v.VenueDescription,
		Open:            v.IsOpenAt(now),
		Hours:           v.OpenIntervalString(),
		Distance:        v.DistanceAsString(),
		DistanceMiles:   v.DistanceMiles,
		Cost:            v.CostAsString(),
		WaitTimeMinutes: v.WaitTimeMinutes,
		WaitLevel:       v.WaitLevel(),
		QueueLength:     v.QueueLength,
		MenuItems:       menu,
		Latitude:        v.VenueLat,
		Longitude:       v.VenueLon,
	}
}

func newVenueViews(venues []*venue.Venue, now time.Time) []VenueView {
	views := make([]VenueView, 0, len(venues))
	for _, v := range venues {
		views = append(views, NewVenueView(v, now))
	}
	return views
}
