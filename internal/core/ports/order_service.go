package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/freshbasket/grocery-system/internal/core/domain"
)

// CreateOrderInput carries a checkout request: the owning account and the cart
// to snapshot. Pricing happens server-side against the current catalog.
type CreateOrderInput struct {
	Email string
	Items domain.Cart
}

// ListOrdersFilter narrows and orders the result of ListOrders. Zero values
// mean "no filter". Storage order is insertion order (oldest first);
// NewestFirst reverses it for presentation.
type ListOrdersFilter struct {
	Email       string
	Status      domain.OrderStatus
	NewestFirst bool
}

// Overview aggregates the administrator dashboard numbers.
type Overview struct {
	Users    int
	Products int
	Orders   int
	Revenue  decimal.Decimal
}

// OrderService implements order creation, listing, and lifecycle management.
type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error)

	// UpdateStatus overwrites the order's status. The order's financial fields
	// and item snapshot are never touched.
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)

	ListOrders(ctx context.Context, f ListOrdersFilter) ([]domain.Order, error)

	Overview(ctx context.Context) (*Overview, error)
}
