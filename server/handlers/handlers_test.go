package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"ordering-server/api/orders"
	"ordering-server/dao/redis"
	"ordering-server/db"
	"ordering-server/geo"
	"ordering-server/models"
	"ordering-server/ranking"
	services "ordering-server/service"
	"ordering-server/util"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noon() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
}

type testEnv struct {
	router    *mux.Router
	selection *ranking.Selection
	orders    *services.OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	catalog, err := util.ReadCatalogFromJSON(filepath.Join(filepath.Dir(file), "..", "..", "resources", "catalog.json"))
	require.NoError(t, err)

	dao := redis.NewRedisVenueDAO(db.NewMockRedisClient())
	require.NoError(t, dao.ReplaceCatalog(context.Background(), catalog))

	selection := ranking.NewSelection(ranking.Convenience)
	venueHandler := NewVenueHandler(
		services.NewVenueService(dao, nil),
		selection,
		geo.NewStaticLocation(32.879765, -117.236202, true),
	)
	venueHandler.now = noon
	orderService := services.NewOrderService(dao, orders.NewOrdersApiClientMock(1)).WithClock(noon)
	orderHandler := NewOrderHandler(orderService)

	r := mux.NewRouter()
	r.HandleFunc("/v1/venues", venueHandler.ListVenues).Methods("GET")
	r.HandleFunc("/v1/venues/nearby", venueHandler.GetVenuesNearby).Methods("GET")
	r.HandleFunc("/v1/venues/{id}", venueHandler.GetVenue).Methods("GET")
	r.HandleFunc("/v1/venues/{id}/orders", orderHandler.PlaceOrder).Methods("POST")
	r.HandleFunc("/v1/preferences/sort", venueHandler.GetSortPreference).Methods("GET")
	r.HandleFunc("/v1/preferences/sort", venueHandler.SetSortPreference).Methods("PUT")
	r.HandleFunc("/v1/orders/current", orderHandler.GetCurrentOrder).Methods("GET")
	r.HandleFunc("/ping", venueHandler.Ping).Methods("GET")

	return &testEnv{router: r, selection: selection, orders: orderService}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeViews(t *testing.T, rr *httptest.ResponseRecorder) []VenueView {
	t.Helper()
	var views []VenueView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &views))
	return views
}

func viewIDs(views []VenueView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.ID
	}
	return out
}

func TestVenueHandler_ListVenues(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do("GET", "/v1/venues", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	views := decodeViews(t, rr)
	assert.Equal(t, []string{"003", "001", "002", "005", "004"}, viewIDs(views))

	bk := views[0]
	assert.Equal(t, "Burger King", bk.Name)
	assert.Equal(t, "0.1", bk.Distance)
	require.NotNil(t, bk.DistanceMiles)
	assert.True(t, bk.Open)
	assert.Equal(t, "6:30 AM - 1:00 AM", bk.Hours)
	assert.Equal(t, "$", bk.Cost)
	assert.Equal(t, "fast", bk.WaitLevel)
	require.NotNil(t, bk.QueueLength)
	assert.Equal(t, 3, *bk.QueueLength)
}

func TestVenueHandler_ListVenues_SortAndQuery(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do("GET", "/v1/venues?sort=Wait%20Time&q=g", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"005", "003", "004"}, viewIDs(decodeViews(t, rr)))

	rr = env.do("GET", "/v1/venues?q=nothing-matches", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())

	rr = env.do("GET", "/v1/venues?sort=alphabetical", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVenueHandler_ListVenues_QueryLocationWins(t *testing.T) {
	env := newTestEnv(t)

	// Standing at Lemongrass.
	rr := env.do("GET", "/v1/venues?sort=distance_away&lat=32.8819619&lon=-117.24311", "")

	require.Equal(t, http.StatusOK, rr.Code)
	views := decodeViews(t, rr)
	assert.Equal(t, "005", views[0].ID)
	assert.Equal(t, "<0.1", views[0].Distance)
}

func TestVenueHandler_GetVenuesNearby(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do("GET", "/v1/venues/nearby?lat=32.879765&lon=-117.236202&radius=0.3", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"003", "001"}, viewIDs(decodeViews(t, rr)))

	for _, path := range []string{
		"/v1/venues/nearby?lon=1&radius=1",
		"/v1/venues/nearby?lat=1&radius=1",
		"/v1/venues/nearby?lat=1&lon=1",
		"/v1/venues/nearby?lat=1&lon=1&radius=-2",
	} {
		assert.Equal(t, http.StatusBadRequest, env.do("GET", path, "").Code, path)
	}
}

func TestVenueHandler_GetVenue(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do("GET", "/v1/venues/002", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var view VenueView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, "Panda Express", view.Name)
	assert.Equal(t, "0.4", view.Distance)
	assert.Equal(t, "9:50 AM - 10:30 PM", view.Hours)

	assert.Equal(t, http.StatusNotFound, env.do("GET", "/v1/venues/999", "").Code)
}

func TestVenueHandler_SortPreference(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do("GET", "/v1/preferences/sort", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"sort":"Convenience","modes":["Convenience","Wait Time","Distance Away"]}`, rr.Body.String())

	rr = env.do("PUT", "/v1/preferences/sort", `{"sort":"Wait Time"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ranking.WaitTime, env.selection.Mode())

	rr = env.do("GET", "/v1/venues", "")
	assert.Equal(t, []string{"002", "005", "003", "004", "001"}, viewIDs(decodeViews(t, rr)))

	for _, body := range []string{`{"sort":"fastest"}`, `{}`, `{"sort":null}`, `not json`} {
		rr = env.do("PUT", "/v1/preferences/sort", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		assert.Equal(t, ranking.WaitTime, env.selection.Mode(), body)
	}
}

func TestVenueHandler_Ping(t *testing.T) {
	rr := newTestEnv(t).do("GET", "/ping", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"pong"}`, rr.Body.String())
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do("POST", "/v1/venues/003/orders", `{"items":["Food 1","Food 2"]}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var state models.OrderState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.True(t, state.HasOrder)
	assert.Equal(t, "Burger King: Food 1, Food 2", state.Summary)
	assert.Equal(t, "12:08 PM", state.EstimatedFinishTime)

	rr = env.do("GET", "/v1/orders/current", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var current models.OrderState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &current))
	assert.Equal(t, state, current)

	assert.Equal(t, http.StatusConflict, env.do("POST", "/v1/venues/001/orders", `{"items":["Food 1"]}`).Code)
}

func TestOrderHandler_PlaceOrder_Errors(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, http.StatusBadRequest, env.do("POST", "/v1/venues/003/orders", `not json`).Code)
	assert.Equal(t, http.StatusBadRequest, env.do("POST", "/v1/venues/003/orders", `{"items":[]}`).Code)
	assert.Equal(t, http.StatusNotFound, env.do("POST", "/v1/venues/999/orders", `{"items":["Food 1"]}`).Code)

	rr := env.do("GET", "/v1/orders/current", "")
	assert.JSONEq(t, `{"has_order":false,"ready":false}`, rr.Body.String())
}
