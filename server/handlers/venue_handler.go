package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ordering-server/geo"
	"ordering-server/ranking"
	services "ordering-server/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
	QUERY_ARG        = "q"
	SORT_QUERY_ARG   = "sort"
	VENUE_ID_VAR     = "id"
)

// SortPreference is the body of the sort preference endpoints.
type SortPreference struct {
	Sort  ranking.SortMode `json:"sort"`
	Modes []string         `json:"modes,omitempty"`
}

type VenueHandler struct {
	venueService *services.VenueService
	selection    *ranking.Selection
	fallback     geo.LocationSupplier
	now          func() time.Time
}

// NewVenueHandler builds the handler. fallback supplies the user location
// when a request carries no lat/lon.
func NewVenueHandler(venueService *services.VenueService, selection *ranking.Selection, fallback geo.LocationSupplier) *VenueHandler {
	return &VenueHandler{
		venueService: venueService,
		selection:    selection,
		fallback:     fallback,
		now:          time.Now,
	}
}

func (h *VenueHandler) location(vals url.Values) geo.LocationSupplier {
	return geo.FirstAvailable{
		geo.NewQueryLocation(vals, LAT_QUERY_ARG, LON_QUERY_ARG),
		h.fallback,
	}
}

// ListVenues handles GET /v1/venues?q=&sort=&lat=&lon=
func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	mode := h.selection.Mode()
	if s := vals.Get(SORT_QUERY_ARG); s != "" {
		parsed, err := ranking.ParseSortMode(s)
		if err != nil {
			http.Error(w, "Invalid argument "+SORT_QUERY_ARG, http.StatusBadRequest)
			return
		}
		mode = parsed
	}

	venues, err := h.venueService.ListVenues(r.Context(), vals.Get(QUERY_ARG), mode, h.location(vals))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newVenueViews(venues, h.now()))
}

// GetVenuesNearby handles GET /v1/venues/nearby?lat=&lon=&radius=
func (h *VenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	var center geo.Coordinate
	var radius float64
	var err error

	if center.Latitude, err = parseArgFloat64(vals, LAT_QUERY_ARG); err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	if center.Longitude, err = parseArgFloat64(vals, LON_QUERY_ARG); err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	if radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG); err != nil || radius < 0 {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}

	venues, err := h.venueService.Nearby(r.Context(), center, radius)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newVenueViews(venues, h.now()))
}

// GetVenue handles GET /v1/venues/{id}
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)[VENUE_ID_VAR]
	v, err := h.venueService.GetVenue(r.Context(), id, h.location(r.URL.Query()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NewVenueView(v, h.now()))
}

// GetSortPreference handles GET /v1/preferences/sort
func (h *VenueHandler) GetSortPreference(w http.ResponseWriter, r *http.Request) {
	modes := make([]string, 0, len(ranking.SortModes))
	for _, m := range ranking.SortModes {
		modes = append(modes, m.String())
	}
	writeJSON(w, http.StatusOK, SortPreference{Sort: h.selection.Mode(), Modes: modes})
}

// SetSortPreference handles PUT /v1/preferences/sort
func (h *VenueHandler) SetSortPreference(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Sort *ranking.SortMode `json:"sort"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Sort == nil {
		http.Error(w, "Invalid sort preference", http.StatusBadRequest)
		return
	}
	h.selection.SetMode(*body.Sort)
	zap.L().Info("Sort preference changed", zap.Stringer("sort", *body.Sort))
	writeJSON(w, http.StatusOK, SortPreference{Sort: *body.Sort})
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	return strconv.ParseFloat(vals.Get(name), 64)
}
