package cmd

import (
	"context"

	"ordering-server/di"
	"ordering-server/geo"
	"ordering-server/models/venue"
	"ordering-server/util"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

// catalogFlags are shared by the offline commands.
type catalogFlags struct {
	path   string
	venues []string
	lat    float64
	lon    float64
}

func (f *catalogFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "catalog", "", "catalog JSON file (default: configured catalog source)")
	cmd.Flags().StringSliceVar(&f.venues, "venue", nil, "single-venue JSON file to add to the catalog (repeatable)")
	cmd.Flags().Float64Var(&f.lat, "lat", 0, "user latitude (default: configured location)")
	cmd.Flags().Float64Var(&f.lon, "lon", 0, "user longitude (default: configured location)")
}

func (f *catalogFlags) load(ctx context.Context) (map[string]*venue.Venue, error) {
	var venues map[string]*venue.Venue
	var err error
	if f.path != "" {
		venues, err = util.ReadCatalogFromJSON(f.path)
	} else {
		venues, err = di.NewCatalogAPI(cfg).GetCatalog(ctx)
	}
	if err != nil {
		return nil, err
	}

	for _, path := range f.venues {
		v, err := util.ReadVenueFromJSON(path)
		if err != nil {
			return nil, err
		}
		if v.VenueID == "" {
			return nil, eris.Errorf("venue file %q has no id", path)
		}
		venues[v.VenueID] = v
	}
	return venues, nil
}

// user returns the coordinate from --lat/--lon, falling back to config.
func (f *catalogFlags) user(cmd *cobra.Command) *geo.Coordinate {
	if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon") {
		return &geo.Coordinate{Latitude: f.lat, Longitude: f.lon}
	}
	c, _ := geo.NewStaticLocation(cfg.Location.Latitude, cfg.Location.Longitude, cfg.Location.Enabled).Location(cmd.Context())
	return c
}
