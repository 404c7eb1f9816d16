package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/freshbasket/grocery-system/internal/core/domain"
	"github.com/freshbasket/grocery-system/internal/core/ports"
)

// CatalogService implements product CRUD over the product collection.
type CatalogService struct {
	store  ports.Store
	logger zerolog.Logger
}

func NewCatalogService(store ports.Store, logger zerolog.Logger) *CatalogService {
	return &CatalogService{store: store, logger: logger}
}

// GetAll returns the catalog, seeding and persisting the default set the first
// time the collection is found missing or empty.
func (s *CatalogService) GetAll(ctx context.Context) (domain.Catalog, error) {
	catalog := make(domain.Catalog)
	found, err := s.store.Load(ctx, ports.CollectionProducts, &catalog)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if found && len(catalog) > 0 {
		return catalog, nil
	}

	catalog = defaultCatalog()
	if err := s.store.Save(ctx, ports.CollectionProducts, catalog); err != nil {
		return nil, fmt.Errorf("seed products: %w", err)
	}
	s.logger.Info().Int("products", len(catalog)).Msg("seeded default catalog")
	return catalog, nil
}

// Add inserts a new product. Names are stored lower-cased.
func (s *CatalogService) Add(ctx context.Context, name string, price decimal.Decimal, unit string) error {
	name = normalizeName(name)
	unit = normalizeName(unit)
	if name == "" || unit == "" {
		return domain.ErrMissingFields
	}
	if price.Sign() <= 0 {
		return domain.ErrInvalidPrice
	}

	catalog, err := s.GetAll(ctx)
	if err != nil {
		return err
	}
	if _, exists := catalog[name]; exists {
		return domain.ErrDuplicateProduct
	}

	catalog[name] = domain.Product{Price: price, Unit: unit}
	if err := s.store.Save(ctx, ports.CollectionProducts, catalog); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	s.logger.Info().Str("product", name).Msg("product added")
	return nil
}

// Update overwrites price and unit of an existing product. The name is the
// immutable key.
func (s *CatalogService) Update(ctx context.Context, name string, price decimal.Decimal, unit string) error {
	name = normalizeName(name)
	unit = normalizeName(unit)
	if unit == "" {
		return domain.ErrMissingFields
	}
	if price.Sign() <= 0 {
		return domain.ErrInvalidPrice
	}

	catalog, err := s.GetAll(ctx)
	if err != nil {
		return err
	}
	if _, exists := catalog[name]; !exists {
		return domain.ErrProductNotFound
	}

	catalog[name] = domain.Product{Price: price, Unit: unit}
	if err := s.store.Save(ctx, ports.CollectionProducts, catalog); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	s.logger.Info().Str("product", name).Msg("product updated")
	return nil
}

// Delete removes a product. No soft delete: existing orders keep their own
// snapshots and are unaffected.
func (s *CatalogService) Delete(ctx context.Context, name string) error {
	name = normalizeName(name)

	catalog, err := s.GetAll(ctx)
	if err != nil {
		return err
	}
	if _, exists := catalog[name]; !exists {
		return domain.ErrProductNotFound
	}

	delete(catalog, name)
	if err := s.store.Save(ctx, ports.CollectionProducts, catalog); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	s.logger.Info().Str("product", name).Msg("product deleted")
	return nil
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
