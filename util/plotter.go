package util

import (
	"io"

	"ordering-server/geo"
	"ordering-server/models"
	"ordering-server/models/venue"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/rotisserie/eris"
)

var cornerNames = []string{"SW", "NW", "NE", "SE", "SW"}

// PlotVenues renders an HTML map of venues with their wait time as the
// point value. A non-nil user coordinate is drawn as its own series.
func PlotVenues(w io.Writer, venues []*venue.Venue, user *geo.Coordinate) error {
	points := make([]opts.GeoData, 0, len(venues))
	for _, v := range venues {
		points = append(points, opts.GeoData{
			Name:  v.VenueName,
			Value: []float64{v.VenueLon, v.VenueLat, float64(v.WaitTimeMinutes)},
		})
	}

	chart := charts.NewGeo()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Venue Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Venues",
			Subtitle: "value is wait time in minutes",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	chart.AddSeries("Venues", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	if box, ok := models.BoundingBoxOf(venues); ok {
		corners := make([]opts.GeoData, 0, 5)
		for i, c := range box.Corners() {
			corners = append(corners, opts.GeoData{Name: cornerNames[i], Value: c})
		}
		chart.AddSeries("BoundingBox", types.ChartScatter, corners)
	}

	if user != nil {
		chart.AddSeries("You", types.ChartEffectScatter, []opts.GeoData{
			{Name: "You", Value: []float64{user.Longitude, user.Latitude, 0}},
		})
	}

	if err := chart.Render(w); err != nil {
		return eris.Wrap(err, "failed to render venue map")
	}
	return nil
}
