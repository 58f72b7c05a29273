package orders

import (
	"context"
	"net/url"

	"ordering-server/api"
	"ordering-server/models"

	"github.com/rotisserie/eris"
)

// OrdersApiClient embeds the common HTTPClient
type OrdersApiClient struct {
	*api.HTTPClient
}

// NewOrdersApiClient creates a new instance of OrdersApiClient
func NewOrdersApiClient(httpClient *api.HTTPClient) *OrdersApiClient {
	return &OrdersApiClient{
		HTTPClient: httpClient,
	}
}

func ordersPath(venueID string) string {
	return "/restaurant/" + url.PathEscape(venueID) + "/orders"
}

// SubmitOrder places the order with the venue's queue.
func (c *OrdersApiClient) SubmitOrder(ctx context.Context, order models.Order) error {
	if err := c.Request(ctx, "PUT", ordersPath(order.VenueID), nil, order, nil); err != nil {
		return eris.Wrapf(err, "orders: submit %s", order.OrderID)
	}
	return nil
}

// IsOrderReady reports true once the venue no longer holds the order.
func (c *OrdersApiClient) IsOrderReady(ctx context.Context, venueID, orderID string) (bool, error) {
	var response models.OrderStatusResponse
	endpoint := ordersPath(venueID) + "/" + url.PathEscape(orderID)
	if err := c.Request(ctx, "GET", endpoint, nil, nil, &response); err != nil {
		return false, eris.Wrapf(err, "orders: status %s", orderID)
	}
	return !response.OrderExists, nil
}
