package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// VenueRoutes is implemented by handlers.VenueHandler.
type VenueRoutes interface {
	ListVenues(w http.ResponseWriter, r *http.Request)
	GetVenuesNearby(w http.ResponseWriter, r *http.Request)
	GetVenue(w http.ResponseWriter, r *http.Request)
	GetSortPreference(w http.ResponseWriter, r *http.Request)
	SetSortPreference(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// OrderRoutes is implemented by handlers.OrderHandler.
type OrderRoutes interface {
	PlaceOrder(w http.ResponseWriter, r *http.Request)
	GetCurrentOrder(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler VenueRoutes
	orderHandler OrderRoutes
	router       *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	venueHandler VenueRoutes,
	orderHandler OrderRoutes,
	router *mux.Router) *Router {
	return &Router{
		venueHandler: venueHandler,
		orderHandler: orderHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?q={name filter}&sort={sort mode}&lat={latitude}&lon={longitude}, all optional
	r.router.HandleFunc("/v1/venues", r.venueHandler.ListVenues).Methods("GET")
	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={miles(float)}
	r.router.HandleFunc("/v1/venues/nearby", r.venueHandler.GetVenuesNearby).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id}", r.venueHandler.GetVenue).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id}/orders", r.orderHandler.PlaceOrder).Methods("POST")

	r.router.HandleFunc("/v1/preferences/sort", r.venueHandler.GetSortPreference).Methods("GET")
	r.router.HandleFunc("/v1/preferences/sort", r.venueHandler.SetSortPreference).Methods("PUT")

	r.router.HandleFunc("/v1/orders/current", r.orderHandler.GetCurrentOrder).Methods("GET")

	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")
}

// Handler returns the underlying mux router.
func (r *Router) Handler() http.Handler {
	return r.router
}
