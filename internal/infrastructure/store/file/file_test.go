package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/freshbasket/grocery-system/internal/core/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	catalog := domain.Catalog{
		"apple": {Price: decimal.NewFromInt(100), Unit: "kg"},
		"milk":  {Price: decimal.NewFromInt(120), Unit: "litre"},
	}
	if err := store.Save(context.Background(), "products", catalog); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded := make(domain.Catalog)
	found, err := store.Load(context.Background(), "products", &reloaded)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatal("expected collection to exist")
	}
	if len(reloaded) != 2 {
		t.Fatalf("expected 2 products, got %d", len(reloaded))
	}
	if !reloaded["apple"].Price.Equal(decimal.NewFromInt(100)) {
		t.Errorf("apple price: got %s", reloaded["apple"].Price)
	}
}

func TestStore_LoadMissingCollection(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	out := make(domain.Catalog)
	found, err := store.Load(context.Background(), "products", &out)
	if err != nil {
		t.Fatalf("missing collection must not error: %v", err)
	}
	if found {
		t.Error("expected found=false for missing collection")
	}
	if len(out) != 0 {
		t.Error("out must be left untouched")
	}
}

func TestStore_SaveOverwritesWholeDocument(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Save(context.Background(), "orders", []domain.Order{{OrderID: "AAAA1111"}, {OrderID: "BBBB2222"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(context.Background(), "orders", []domain.Order{{OrderID: "CCCC3333"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	var orders []domain.Order
	if _, err := store.Load(context.Background(), "orders", &orders); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(orders) != 1 || orders[0].OrderID != "CCCC3333" {
		t.Errorf("expected full-document overwrite, got %v", orders)
	}
}

func TestStore_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Save(context.Background(), "users", map[string]domain.User{}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "users.json")); err != nil {
		t.Errorf("users.json missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "users.json.tmp")); !os.IsNotExist(err) {
		t.Error("temp file left behind after save")
	}
}
