package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ordering-server/api"
	"ordering-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitOrder(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/restaurant/001/orders", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewOrdersApiClient(api.NewHTTPClient(srv.URL))
	err := client.SubmitOrder(context.Background(), models.Order{
		OrderID:            "ord-1",
		VenueID:            "001",
		VenueName:          "Subway",
		Items:              []string{"Food 1"},
		CurrentMinuteOfDay: 750,
		QueueLength:        3,
	})

	require.NoError(t, err)
	assert.Equal(t, "ord-1", received["orderID"])
	assert.Equal(t, "Subway", received["restName"])
	assert.Equal(t, 750.0, received["currTime"])
	assert.Equal(t, 3.0, received["numInLine"])
	assert.Equal(t, []interface{}{"Food 1"}, received["items"])
	_, hasVenueID := received["VenueID"]
	assert.False(t, hasVenueID)
}

func TestIsOrderReady(t *testing.T) {
	exists := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/restaurant/001/orders/ord-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]bool{"Order Exists": exists})
	}))
	defer srv.Close()

	client := NewOrdersApiClient(api.NewHTTPClient(srv.URL))

	ready, err := client.IsOrderReady(context.Background(), "001", "ord-1")
	require.NoError(t, err)
	assert.False(t, ready)

	exists = false
	ready, err = client.IsOrderReady(context.Background(), "001", "ord-1")
	require.NoError(t, err)
	assert.True(t, ready)
}

func TestIsOrderReady_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ready, err := NewOrdersApiClient(api.NewHTTPClient(srv.URL)).IsOrderReady(context.Background(), "001", "ord-1")
	assert.Error(t, err)
	assert.False(t, ready)
}

func TestOrdersApiClientMock(t *testing.T) {
	mock := NewOrdersApiClientMock(2)
	ctx := context.Background()
	require.NoError(t, mock.SubmitOrder(ctx, models.Order{OrderID: "a", VenueID: "001"}))

	_, ok := mock.Submitted("a")
	assert.True(t, ok)

	ready, _ := mock.IsOrderReady(ctx, "001", "a")
	assert.False(t, ready)
	ready, _ = mock.IsOrderReady(ctx, "001", "a")
	assert.True(t, ready)

	_, ok = mock.Submitted("a")
	assert.False(t, ok)
}
