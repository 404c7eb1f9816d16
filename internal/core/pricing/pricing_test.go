package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/freshbasket/grocery-system/internal/core/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testCatalog() domain.Catalog {
	return domain.Catalog{
		"apple": {Price: dec("100"), Unit: "kg"},
		"milk":  {Price: dec("120"), Unit: "litre"},
		"rice":  {Price: dec("500"), Unit: "kg"},
	}
}

func assertAmount(t *testing.T, field string, got, want decimal.Decimal) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s: got %s, want %s", field, got, want)
	}
}

// ---------------------------------------------------------------------------
// Scenario tests (fixed carts, exact amounts)
// ---------------------------------------------------------------------------

func TestPrice_BelowDiscountThreshold(t *testing.T) {
	// 2kg apples at 100 + 1 litre milk at 120 = 320, under the lowest tier.
	cart := domain.Cart{"apple": dec("2"), "milk": dec("1")}

	bill, err := Price(cart, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertAmount(t, "subtotal", bill.Subtotal, dec("320.00"))
	assertAmount(t, "discount", bill.DiscountAmount, dec("0"))
	assertAmount(t, "tax", bill.TaxAmount, dec("16.00"))
	assertAmount(t, "total", bill.Total, dec("336.00"))
}

func TestPrice_TenPercentTier(t *testing.T) {
	// 3kg rice at 500 = 1500, inside the [1000, 2000) tier.
	cart := domain.Cart{"rice": dec("3")}

	bill, err := Price(cart, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertAmount(t, "subtotal", bill.Subtotal, dec("1500.00"))
	assertAmount(t, "discount", bill.DiscountAmount, dec("150.00"))
	assertAmount(t, "tax", bill.TaxAmount, dec("67.50"))
	assertAmount(t, "total", bill.Total, dec("1417.50"))
}

func TestPrice_FifteenPercentTier(t *testing.T) {
	// 5kg rice at 500 = 2500, at or above the 2000 tier.
	cart := domain.Cart{"rice": dec("5")}

	bill, err := Price(cart, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertAmount(t, "subtotal", bill.Subtotal, dec("2500.00"))
	assertAmount(t, "discount", bill.DiscountAmount, dec("375.00"))
	assertAmount(t, "tax", bill.TaxAmount, dec("106.25"))
	assertAmount(t, "total", bill.Total, dec("2231.25"))
}

// ---------------------------------------------------------------------------
// Tier boundaries
// ---------------------------------------------------------------------------

func TestPrice_TierBoundaries(t *testing.T) {
	catalog := domain.Catalog{"unit": {Price: dec("1"), Unit: "piece"}}

	cases := []struct {
		name     string
		qty      string
		discount string
	}{
		{"just under low tier", "999.99", "0"},
		{"exactly low tier", "1000", "100.00"},
		{"just under high tier", "1999.99", "200.00"}, // 1999.99 * 0.10 = 199.999
		{"exactly high tier", "2000", "300.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bill, err := Price(domain.Cart{"unit": dec(tc.qty)}, catalog)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertAmount(t, "discount", bill.DiscountAmount, dec(tc.discount))
		})
	}
}

// TestPrice_TotalFormula checks the invariant total = (subtotal - discount) * 1.05
// across a spread of subtotals.
func TestPrice_TotalFormula(t *testing.T) {
	catalog := domain.Catalog{"unit": {Price: dec("1"), Unit: "piece"}}
	factor := dec("1.05")

	for _, qty := range []string{"0.5", "17", "999.99", "1000", "1500", "1999.99", "2000", "2500", "31415.92"} {
		bill, err := Price(domain.Cart{"unit": dec(qty)}, catalog)
		if err != nil {
			t.Fatalf("qty %s: unexpected error: %v", qty, err)
		}
		want := dec(qty).Sub(bill.DiscountAmount).Mul(factor).Round(2)
		if !bill.Total.Equal(want) {
			t.Errorf("qty %s: total %s, want %s", qty, bill.Total, want)
		}
	}
}

// ---------------------------------------------------------------------------
// Edge cases
// ---------------------------------------------------------------------------

func TestPrice_EmptyCart(t *testing.T) {
	bill, err := Price(domain.Cart{}, testCatalog())
	if err != nil {
		t.Fatalf("empty cart must not fail: %v", err)
	}
	for field, got := range map[string]decimal.Decimal{
		"subtotal": bill.Subtotal,
		"discount": bill.DiscountAmount,
		"tax":      bill.TaxAmount,
		"total":    bill.Total,
	} {
		if !got.IsZero() {
			t.Errorf("%s: got %s, want 0", field, got)
		}
	}
}

func TestPrice_UnknownProduct(t *testing.T) {
	_, err := Price(domain.Cart{"durian": dec("1")}, testCatalog())
	if !errors.Is(err, domain.ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
}

func TestPrice_NonPositiveQuantity(t *testing.T) {
	for _, qty := range []string{"0", "-1"} {
		_, err := Price(domain.Cart{"apple": dec(qty)}, testCatalog())
		if !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Errorf("qty %s: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
}

func TestPrice_FractionalQuantityRounding(t *testing.T) {
	// 0.333 kg at 100/kg = 33.3 exactly under decimal arithmetic; tax stays
	// exact instead of drifting the way binary floats would.
	catalog := domain.Catalog{"apple": {Price: dec("100"), Unit: "kg"}}
	bill, err := Price(domain.Cart{"apple": dec("0.333")}, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAmount(t, "subtotal", bill.Subtotal, dec("33.30"))
	assertAmount(t, "tax", bill.TaxAmount, dec("1.67")) // 33.3 * 0.05 = 1.665 -> 1.67 (banker-free half-up)
	assertAmount(t, "total", bill.Total, dec("34.97"))  // 34.965 -> 34.97
}
