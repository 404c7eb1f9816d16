package service

import (
	"context"
	"errors"
	"testing"

	"github.com/freshbasket/grocery-system/internal/core/domain"
	"github.com/freshbasket/grocery-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Seeding
// ---------------------------------------------------------------------------

func TestCatalogService_GetAll_SeedsOnce(t *testing.T) {
	store := newStubStore()
	svc := NewCatalogService(store, discardLogger)

	first, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("seeded catalog must not be empty")
	}
	if _, ok := first["apple"]; !ok {
		t.Error("seeded catalog missing apple")
	}
	if !first["milk"].Price.Equal(dec("120")) {
		t.Errorf("milk price: got %s, want 120", first["milk"].Price)
	}

	second, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != len(first) {
		t.Errorf("second call returned %d products, first %d", len(second), len(first))
	}
	if store.saves[ports.CollectionProducts] != 1 {
		t.Errorf("expected exactly one seeding write, got %d", store.saves[ports.CollectionProducts])
	}
}

func TestCatalogService_GetAll_EmptyDocumentReseeds(t *testing.T) {
	store := newStubStore()
	store.seed(ports.CollectionProducts, domain.Catalog{})
	svc := NewCatalogService(store, discardLogger)

	catalog, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(catalog) == 0 {
		t.Fatal("empty stored document must be reseeded")
	}
}

// ---------------------------------------------------------------------------
// CRUD
// ---------------------------------------------------------------------------

func TestCatalogService_Add(t *testing.T) {
	store := newStubStore()
	svc := NewCatalogService(store, discardLogger)

	if err := svc.Add(context.Background(), "  Paneer ", dec("350"), "KG"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	catalog, _ := svc.GetAll(context.Background())
	p, ok := catalog["paneer"]
	if !ok {
		t.Fatal("name must be stored trimmed and lower-cased")
	}
	if p.Unit != "kg" {
		t.Errorf("unit: got %q, want %q", p.Unit, "kg")
	}

	if err := svc.Add(context.Background(), "paneer", dec("400"), "kg"); !errors.Is(err, domain.ErrDuplicateProduct) {
		t.Fatalf("expected ErrDuplicateProduct, got %v", err)
	}
}

func TestCatalogService_Add_InvalidPrice(t *testing.T) {
	svc := NewCatalogService(newStubStore(), discardLogger)

	for _, price := range []string{"0", "-5"} {
		if err := svc.Add(context.Background(), "ghee", dec(price), "jar"); !errors.Is(err, domain.ErrInvalidPrice) {
			t.Errorf("price %s: expected ErrInvalidPrice, got %v", price, err)
		}
	}
}

func TestCatalogService_Update(t *testing.T) {
	store := newStubStore()
	svc := NewCatalogService(store, discardLogger)

	if err := svc.Update(context.Background(), "apple", dec("110"), "kg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	catalog, _ := svc.GetAll(context.Background())
	if !catalog["apple"].Price.Equal(dec("110")) {
		t.Errorf("apple price: got %s, want 110", catalog["apple"].Price)
	}

	if err := svc.Update(context.Background(), "durian", dec("900"), "kg"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogService_Delete(t *testing.T) {
	store := newStubStore()
	svc := NewCatalogService(store, discardLogger)

	if err := svc.Delete(context.Background(), "apple"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	catalog, _ := svc.GetAll(context.Background())
	if _, ok := catalog["apple"]; ok {
		t.Error("apple still present after delete")
	}

	if err := svc.Delete(context.Background(), "apple"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
