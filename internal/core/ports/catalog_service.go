package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/freshbasket/grocery-system/internal/core/domain"
)

// CatalogService implements product CRUD over the product collection.
type CatalogService interface {
	// GetAll returns the catalog. When the backing collection is missing or
	// empty it seeds and persists the default catalog first, so the result is
	// never empty.
	GetAll(ctx context.Context) (domain.Catalog, error)

	Add(ctx context.Context, name string, price decimal.Decimal, unit string) error
	Update(ctx context.Context, name string, price decimal.Decimal, unit string) error
	Delete(ctx context.Context, name string) error
}
