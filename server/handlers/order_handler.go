package handlers

import (
	"encoding/json"
	"net/http"

	services "ordering-server/service"

	"github.com/gorilla/mux"
)

// PlaceOrderRequest is the body of POST /v1/venues/{id}/orders.
type PlaceOrderRequest struct {
	Items []string `json:"items"`
}

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PlaceOrder handles POST /v1/venues/{id}/orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var body PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid order", http.StatusBadRequest)
		return
	}

	state, err := h.orderService.PlaceOrder(r.Context(), mux.Vars(r)[VENUE_ID_VAR], body.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, state)
}

// GetCurrentOrder handles GET /v1/orders/current
func (h *OrderHandler) GetCurrentOrder(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.orderService.State())
}
