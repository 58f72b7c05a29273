package util

import (
	"encoding/json"
	"os"

	"ordering-server/models/venue"

	"github.com/rotisserie/eris"
)

// DecodeCatalog parses a catalog keyed by venue ID. Entries without an
// ID take their key.
func DecodeCatalog(data []byte) (map[string]*venue.Venue, error) {
	var raw map[string]*venue.Venue
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrap(err, "failed to unmarshal catalog")
	}

	catalog := make(map[string]*venue.Venue, len(raw))
	for key, v := range raw {
		if v == nil {
			continue
		}
		if v.VenueID == "" {
			v.VenueID = key
		}
		catalog[v.VenueID] = v
	}
	return catalog, nil
}

// ReadCatalogFromJSON loads a catalog from JSON on disk.
func ReadCatalogFromJSON(filePath string) (map[string]*venue.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read file %q", filePath)
	}
	return DecodeCatalog(data)
}

// ReadVenueFromJSON loads a single Venue from JSON on disk.
func ReadVenueFromJSON(filePath string) (*venue.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read file %q", filePath)
	}
	var v venue.Venue
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, eris.Wrap(err, "failed to unmarshal Venue")
	}
	return &v, nil
}
