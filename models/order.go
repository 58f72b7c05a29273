// models/order.go
package models

// Order is the payload submitted to the order service.
type Order struct {
	OrderID            string   `json:"orderID"`
	VenueID            string   `json:"-"`
	VenueName          string   `json:"restName"`
	Items              []string `json:"items"`
	CurrentMinuteOfDay int      `json:"currTime"`
	QueueLength        int      `json:"numInLine"`
}

// OrderStatusResponse is returned by GET /restaurant/{id}/orders/{orderId}.
// The order is ready once the service no longer holds it.
type OrderStatusResponse struct {
	OrderExists bool `json:"Order Exists"`
}

// OrderState is the user's current order as seen by the application.
type OrderState struct {
	HasOrder            bool    `json:"has_order"`
	OrderID             string  `json:"order_id,omitempty"`
	VenueID             string  `json:"venue_id,omitempty"`
	Summary             string  `json:"summary,omitempty"`
	EstimatedFinishTime string  `json:"estimated_finish_time,omitempty"`
	Latitude            float64 `json:"latitude,omitempty"`
	Longitude           float64 `json:"longitude,omitempty"`
	Ready               bool    `json:"ready"`
}
