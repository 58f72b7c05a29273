package handlers

import (
	"encoding/json"
	"net/http"

	services "ordering-server/service"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Warn("Error encoding response", zap.Error(err))
	}
}

// writeError maps service errors to status codes. Anything unrecognised is
// logged and reported as a 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case eris.Is(err, services.ErrVenueNotFound):
		http.Error(w, "venue not found", http.StatusNotFound)
	case eris.Is(err, services.ErrEmptyOrder):
		http.Error(w, "order has no items", http.StatusBadRequest)
	case eris.Is(err, services.ErrVenueClosed):
		http.Error(w, "venue is closed", http.StatusConflict)
	case eris.Is(err, services.ErrOrderInProgress):
		http.Error(w, "an order is already in progress", http.StatusConflict)
	default:
		zap.L().Error("Request failed", zap.String("error", eris.ToString(err, true)))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
