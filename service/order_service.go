package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"ordering-server/api/orders"
	"ordering-server/dao/redis"
	"ordering-server/models"
	"ordering-server/models/venue"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const ESTIMATED_FINISH_LAYOUT = "3:04 PM"

const DEFAULT_POLL_INTERVAL = 5 * time.Second

// OrderService places the user's single active order and tracks it until the
// venue reports it done.
type OrderService struct {
	venueDao  *redis.RedisVenueDAO
	ordersAPI orders.OrdersAPI

	now   func() time.Time
	newID func() string

	mu      sync.Mutex
	state   models.OrderState
	placing bool
}

// NewOrderService constructs a new OrderService.
func NewOrderService(venueDao *redis.RedisVenueDAO, ordersAPI orders.OrdersAPI) *OrderService {
	return &OrderService{
		venueDao:  venueDao,
		ordersAPI: ordersAPI,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// WithClock replaces the time source used for opening hours and estimates.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

// State returns a copy of the current order state.
func (s *OrderService) State() models.OrderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// PlaceOrder submits items to the venue's queue and records the order as
// the active one. The slot is reserved up front so State and CheckOrder do
// not wait on the submission.
func (s *OrderService) PlaceOrder(ctx context.Context, venueID string, items []string) (models.OrderState, error) {
	if len(items) == 0 {
		return models.OrderState{}, ErrEmptyOrder
	}
	if err := s.reserve(); err != nil {
		return models.OrderState{}, err
	}

	state, err := s.submit(ctx, venueID, items)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.placing = false
	if err != nil {
		return models.OrderState{}, err
	}
	s.state = state
	zap.L().Info("[OrderService] Order placed",
		zap.String("order_id", state.OrderID),
		zap.String("venue_id", state.VenueID),
		zap.Int("items", len(items)))

	return state, nil
}

func (s *OrderService) reserve() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.HasOrder {
		return eris.Wrapf(ErrOrderInProgress, "order %s", s.state.OrderID)
	}
	if s.placing {
		return eris.Wrap(ErrOrderInProgress, "order being placed")
	}
	s.placing = true
	return nil
}

func (s *OrderService) submit(ctx context.Context, venueID string, items []string) (models.OrderState, error) {
	v, err := s.venueDao.GetVenue(ctx, venueID)
	if err != nil {
		if eris.Is(err, redis.ErrVenueNotCached) {
			return models.OrderState{}, eris.Wrapf(ErrVenueNotFound, "venue %s", venueID)
		}
		return models.OrderState{}, err
	}

	now := s.now()
	if !v.IsOpenAt(now) {
		return models.OrderState{}, eris.Wrapf(ErrVenueClosed, "%s is open %s", v.VenueName, v.OpenIntervalString())
	}

	order := newOrder(s.newID(), v, items, now)
	if err := s.ordersAPI.SubmitOrder(ctx, order); err != nil {
		return models.OrderState{}, eris.Wrap(err, "failed to submit order")
	}

	return models.OrderState{
		HasOrder:            true,
		OrderID:             order.OrderID,
		VenueID:             v.VenueID,
		Summary:             orderSummary(v.VenueName, items),
		EstimatedFinishTime: now.Add(time.Duration(v.WaitTimeMinutes) * time.Minute).Format(ESTIMATED_FINISH_LAYOUT),
		Latitude:            v.VenueLat,
		Longitude:           v.VenueLon,
	}, nil
}

// CheckOrder polls the order service once. It reports true when the active
// order has completed, which clears it.
func (s *OrderService) CheckOrder(ctx context.Context) (bool, error) {
	current := s.State()
	if !current.HasOrder {
		return false, nil
	}

	ready, err := s.ordersAPI.IsOrderReady(ctx, current.VenueID, current.OrderID)
	if err != nil {
		return false, err
	}
	if !ready {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.OrderID != current.OrderID {
		return false, nil
	}
	s.state = models.OrderState{
		OrderID: current.OrderID,
		VenueID: current.VenueID,
		Summary: current.Summary,
		Ready:   true,
	}
	zap.L().Info("[OrderService] Order ready", zap.String("order_id", current.OrderID))
	return true, nil
}

// Watch polls the active order every interval until ctx is cancelled.
func (s *OrderService) Watch(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DEFAULT_POLL_INTERVAL
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := s.CheckOrder(ctx); err != nil {
				zap.L().Warn("[OrderService] Order status check failed", zap.Error(err))
			}
		}
	}
}

func newOrder(orderID string, v *venue.Venue, items []string, now time.Time) models.Order {
	queue := 0
	if v.QueueLength != nil {
		queue = *v.QueueLength
	}
	return models.Order{
		OrderID:            orderID,
		VenueID:            v.VenueID,
		VenueName:          v.VenueName,
		Items:              append([]string(nil), items...),
		CurrentMinuteOfDay: now.Hour()*60 + now.Minute(),
		QueueLength:        queue,
	}
}

func orderSummary(venueName string, items []string) string {
	return venueName + ": " + strings.Join(items, ", ")
}
