package domain

import "errors"

// Validation and conflict errors. The operation rejected its input and wrote
// nothing.
var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrWeakPassword    = errors.New("password must be at least 6 characters")
	ErrInvalidPrice    = errors.New("price must be positive")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrUnknownProduct  = errors.New("unknown product")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidStatus   = errors.New("invalid order status")

	ErrDuplicateEmail   = errors.New("email already registered")
	ErrDuplicateProduct = errors.New("product already exists")
	ErrOrderIDExhausted = errors.New("could not generate a unique order id")
)

// Lookup errors.
var (
	ErrUserNotFound    = errors.New("email not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// ErrInvalidPassword is deliberately terse; it never carries password material.
var ErrInvalidPassword = errors.New("incorrect password")

// ErrNotifierDisabled marks the notification channel as unconfigured. Callers
// treat it as a benign outcome, not a delivery failure.
var ErrNotifierDisabled = errors.New("notifier disabled")
