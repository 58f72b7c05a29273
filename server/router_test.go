package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// MockVenueHandler is a mock implementation of VenueRoutes.
type MockVenueHandler struct{}

func reply(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}
}

func (h *MockVenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	reply("list")(w, r)
}

func (h *MockVenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	reply("nearby")(w, r)
}

func (h *MockVenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	reply("venue " + mux.Vars(r)["id"])(w, r)
}

func (h *MockVenueHandler) GetSortPreference(w http.ResponseWriter, r *http.Request) {
	reply("get sort")(w, r)
}

func (h *MockVenueHandler) SetSortPreference(w http.ResponseWriter, r *http.Request) {
	reply("set sort")(w, r)
}

func (h *MockVenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	reply("pong")(w, r)
}

// MockOrderHandler is a mock implementation of OrderRoutes.
type MockOrderHandler struct{}

func (h *MockOrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	reply("order at " + mux.Vars(r)["id"])(w, r)
}

func (h *MockOrderHandler) GetCurrentOrder(w http.ResponseWriter, r *http.Request) {
	reply("current")(w, r)
}

func TestRouter_RegisterRoutes(t *testing.T) {
	router := mux.NewRouter()
	appRouter := NewRouter(&MockVenueHandler{}, &MockOrderHandler{}, router)
	appRouter.RegisterRoutes()

	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{"List Venues", "GET", "/v1/venues?q=sub&sort=Wait%20Time", http.StatusOK, "list"},
		{"Get Venues Nearby", "GET", "/v1/venues/nearby?lat=1&lon=2&radius=3", http.StatusOK, "nearby"},
		{"Get Venue", "GET", "/v1/venues/001", http.StatusOK, "venue 001"},
		{"Place Order", "POST", "/v1/venues/002/orders", http.StatusOK, "order at 002"},
		{"Get Sort", "GET", "/v1/preferences/sort", http.StatusOK, "get sort"},
		{"Set Sort", "PUT", "/v1/preferences/sort", http.StatusOK, "set sort"},
		{"Current Order", "GET", "/v1/orders/current", http.StatusOK, "current"},
		{"Ping Route", "GET", "/ping", http.StatusOK, "pong"},
		{"Wrong Method", "DELETE", "/v1/venues/001", http.StatusMethodNotAllowed, ""},
		{"Invalid Route", "GET", "/invalid", http.StatusNotFound, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			appRouter.Handler().ServeHTTP(rr, req)

			assert.Equal(t, test.statusCode, rr.Code)
			if test.response != "" {
				assert.Equal(t, test.response, rr.Body.String())
			}
		})
	}
}
