package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Statuses lists every known order status.
var Statuses = []OrderStatus{StatusPending, StatusShipped, StatusDelivered, StatusCancelled}

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransition is the single policy point for status changes. The current
// policy lets an administrator move an order between any two known statuses,
// including backwards (delivered back to pending, cancelled back to shipped).
// Tightening the lifecycle later means changing this function only.
func CanTransition(from, to OrderStatus) bool {
	return ValidStatus(from) && ValidStatus(to)
}

// Order is the frozen result of a checkout. Items and the computed amounts are
// snapshotted at creation and never recomputed, even if catalog prices change
// afterwards. Only Status is mutable.
type Order struct {
	OrderID        string          `json:"order_id"`
	Email          string          `json:"email"`
	Username       string          `json:"username"`
	Items          Cart            `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
	Status         OrderStatus     `json:"status"`
	Date           time.Time       `json:"date"`
}
