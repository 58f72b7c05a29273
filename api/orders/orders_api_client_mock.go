package orders

import (
	"context"
	"sync"

	"ordering-server/models"
)

// OrdersApiClientMock keeps orders in memory. An order is ready after it has
// been polled ReadyAfter times.
type OrdersApiClientMock struct {
	ReadyAfter int

	mu     sync.Mutex
	polls  map[string]int
	orders map[string]models.Order
}

// NewOrdersApiClientMock creates a new instance of OrdersApiClientMock
func NewOrdersApiClientMock(readyAfter int) *OrdersApiClientMock {
	return &OrdersApiClientMock{
		ReadyAfter: readyAfter,
		polls:      make(map[string]int),
		orders:     make(map[string]models.Order),
	}
}

func (m *OrdersApiClientMock) SubmitOrder(ctx context.Context, order models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.OrderID] = order
	return nil
}

func (m *OrdersApiClientMock) IsOrderReady(ctx context.Context, venueID, orderID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[orderID]; !ok {
		return true, nil
	}
	m.polls[orderID]++
	if m.polls[orderID] >= m.ReadyAfter {
		delete(m.orders, orderID)
		delete(m.polls, orderID)
		return true, nil
	}
	return false, nil
}

// Submitted returns the order stored under orderID.
func (m *OrdersApiClientMock) Submitted(orderID string) (models.Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	return o, ok
}
