package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry. The product collection is keyed by name
// (lower-cased by convention), so the name does not appear on the record.
type Product struct {
	Price decimal.Decimal `json:"price"`
	Unit  string          `json:"unit"`
}

// Catalog is the current mapping of product name to price and unit.
type Catalog map[string]Product

// Cart is an ephemeral mapping of product name to requested quantity. It is
// never persisted; it lives in the calling client's session until checkout.
type Cart map[string]decimal.Decimal
