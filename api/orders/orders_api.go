package orders

import (
	"context"

	"ordering-server/models"
)

// OrdersAPI defines the interface for the upstream order service.
type OrdersAPI interface {
	SubmitOrder(ctx context.Context, order models.Order) error
	IsOrderReady(ctx context.Context, venueID, orderID string) (bool, error)
}
