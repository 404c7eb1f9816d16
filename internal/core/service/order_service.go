package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/freshbasket/grocery-system/internal/core/domain"
	"github.com/freshbasket/grocery-system/internal/core/ports"
	"github.com/freshbasket/grocery-system/internal/core/pricing"
)

// orderIDAttempts bounds the retry loop when a freshly generated order id
// collides with an existing one.
const orderIDAttempts = 5

// OrderService implements order creation, listing, and lifecycle management
// over the order collection.
type OrderService struct {
	store   ports.Store
	catalog ports.CatalogService
	queue   ports.NotificationQueue
	logger  zerolog.Logger
}

func NewOrderService(store ports.Store, catalog ports.CatalogService, queue ports.NotificationQueue, logger zerolog.Logger) *OrderService {
	return &OrderService{store: store, catalog: catalog, queue: queue, logger: logger}
}

func (s *OrderService) loadOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if _, err := s.store.Load(ctx, ports.CollectionOrders, &orders); err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return orders, nil
}

// CreateOrder prices the cart against the current catalog, snapshots it into a
// new pending order, appends it to the collection, and persists the whole
// collection. The order confirmation email is enqueued only after the write
// succeeds and cannot affect the returned result.
func (s *OrderService) CreateOrder(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	users := make(map[string]domain.User)
	if _, err := s.store.Load(ctx, ports.CollectionUsers, &users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	owner, ok := users[in.Email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	catalog, err := s.catalog.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	bill, err := pricing.Price(in.Items, catalog)
	if err != nil {
		return nil, err
	}

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	id, err := newOrderID(orders)
	if err != nil {
		return nil, err
	}

	items := make(domain.Cart, len(in.Items))
	for name, qty := range in.Items {
		items[name] = qty
	}

	order := domain.Order{
		OrderID:        id,
		Email:          in.Email,
		Username:       owner.Username,
		Items:          items,
		Subtotal:       bill.Subtotal,
		DiscountAmount: bill.DiscountAmount,
		TaxAmount:      bill.TaxAmount,
		Total:          bill.Total,
		Status:         domain.StatusPending,
		Date:           time.Now().UTC(),
	}

	orders = append(orders, order)
	if err := s.store.Save(ctx, ports.CollectionOrders, orders); err != nil {
		return nil, fmt.Errorf("save orders: %w", err)
	}

	s.queue.Enqueue(ports.Notification{
		To:       in.Email,
		Subject:  "Order Confirmation - " + id,
		HTMLBody: orderEmail(owner.Username, id, order.Total, order.Status),
	})

	s.logger.Info().
		Str("order_id", id).
		Str("email", in.Email).
		Str("total", order.Total.StringFixed(2)).
		Msg("order created")

	return &order, nil
}

// UpdateStatus overwrites the status of an existing order and persists the
// collection. The status email is enqueued after the write succeeds.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range orders {
		if orders[i].OrderID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrOrderNotFound
	}

	if !domain.CanTransition(orders[idx].Status, status) {
		return nil, domain.ErrInvalidStatus
	}
	orders[idx].Status = status

	if err := s.store.Save(ctx, ports.CollectionOrders, orders); err != nil {
		return nil, fmt.Errorf("save orders: %w", err)
	}

	updated := orders[idx]
	s.queue.Enqueue(ports.Notification{
		To:       updated.Email,
		Subject:  "Order Status Update - " + updated.OrderID,
		HTMLBody: orderEmail(updated.Username, updated.OrderID, updated.Total, updated.Status),
	})

	s.logger.Info().
		Str("order_id", updated.OrderID).
		Str("status", string(updated.Status)).
		Msg("order status updated")

	return &updated, nil
}

// ListOrders returns a filtered, read-only view of the collection in insertion
// order, reversed when the caller asks for newest-first presentation.
func (s *OrderService) ListOrders(ctx context.Context, f ports.ListOrdersFilter) ([]domain.Order, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if f.Email != "" && o.Email != f.Email {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		matched = append(matched, o)
	}

	if f.NewestFirst {
		for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
			matched[i], matched[j] = matched[j], matched[i]
		}
	}
	return matched, nil
}

// Overview aggregates the dashboard numbers: customer count, catalog size,
// order count, and total revenue across all orders.
func (s *OrderService) Overview(ctx context.Context) (*ports.Overview, error) {
	users := make(map[string]domain.User)
	if _, err := s.store.Load(ctx, ports.CollectionUsers, &users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	customers := 0
	for _, u := range users {
		if u.Role == domain.RoleUser {
			customers++
		}
	}

	catalog, err := s.catalog.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
	}

	return &ports.Overview{
		Users:    customers,
		Products: len(catalog),
		Orders:   len(orders),
		Revenue:  revenue.Round(2),
	}, nil
}

// newOrderID derives an 8-character uppercase id from a random UUID prefix,
// retrying on collision with the existing collection. Uniqueness is enforced
// by the scan, not assumed from randomness.
func newOrderID(existing []domain.Order) (string, error) {
	taken := make(map[string]struct{}, len(existing))
	for _, o := range existing {
		taken[o.OrderID] = struct{}{}
	}

	for i := 0; i < orderIDAttempts; i++ {
		id := strings.ToUpper(uuid.NewString()[:8])
		if _, dup := taken[id]; !dup {
			return id, nil
		}
	}
	return "", domain.ErrOrderIDExhausted
}
