// Package pricing computes the bill for a cart against a catalog. It is pure:
// no storage, no clock, no side effects, so it can be tested in isolation and
// called anywhere a quote is needed without committing an order.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/freshbasket/grocery-system/internal/core/domain"
)

// TaxRate is applied to the discounted subtotal.
var TaxRate = decimal.RequireFromString("0.05")

// Discount tiers: a flat rate on the whole subtotal, not marginal.
var (
	tierHigh     = decimal.NewFromInt(2000)
	tierLow      = decimal.NewFromInt(1000)
	rateHigh     = decimal.RequireFromString("0.15")
	rateLow      = decimal.RequireFromString("0.10")
	displayScale = int32(2)
)

// Bill carries the computed amounts for a cart, each rounded to two decimal
// places. Intermediate arithmetic runs at full precision so rounding error
// never compounds across the discount and tax stages.
type Bill struct {
	Subtotal       decimal.Decimal
	DiscountRate   decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// Price computes the bill for cart against catalog. Every cart item must exist
// in the catalog and carry a positive quantity. An empty cart yields an
// all-zero bill without error; rejecting empty-cart checkouts is the caller's
// concern.
func Price(cart domain.Cart, catalog domain.Catalog) (Bill, error) {
	subtotal := decimal.Zero
	for name, qty := range cart {
		product, ok := catalog[name]
		if !ok {
			return Bill{}, fmt.Errorf("%w: %s", domain.ErrUnknownProduct, name)
		}
		if qty.Sign() <= 0 {
			return Bill{}, fmt.Errorf("%w: %s", domain.ErrInvalidQuantity, name)
		}
		subtotal = subtotal.Add(product.Price.Mul(qty))
	}

	rate := decimal.Zero
	switch {
	case subtotal.GreaterThanOrEqual(tierHigh):
		rate = rateHigh
	case subtotal.GreaterThanOrEqual(tierLow):
		rate = rateLow
	}

	discount := subtotal.Mul(rate)
	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(TaxRate)
	total := taxable.Add(tax)

	return Bill{
		Subtotal:       subtotal.Round(displayScale),
		DiscountRate:   rate,
		DiscountAmount: discount.Round(displayScale),
		TaxAmount:      tax.Round(displayScale),
		Total:          total.Round(displayScale),
	}, nil
}
