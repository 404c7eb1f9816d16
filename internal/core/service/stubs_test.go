package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/freshbasket/grocery-system/internal/core/domain"
	"github.com/freshbasket/grocery-system/internal/core/ports"
)

var discardLogger = zerolog.Nop()

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ---------------------------------------------------------------------------
// In-memory stub store
//
// Documents are held as serialized JSON so every Load/Save performs the same
// whole-document round-trip the real drivers do.
// ---------------------------------------------------------------------------

type stubStore struct {
	collections map[string][]byte
	saves       map[string]int
	loadErr     error
	saveErr     error
}

func newStubStore() *stubStore {
	return &stubStore{
		collections: make(map[string][]byte),
		saves:       make(map[string]int),
	}
}

func (s *stubStore) Load(_ context.Context, collection string, out any) (bool, error) {
	if s.loadErr != nil {
		return false, s.loadErr
	}
	data, ok := s.collections[collection]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *stubStore) Save(_ context.Context, collection string, doc any) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.collections[collection] = data
	s.saves[collection]++
	return nil
}

// seed marshals doc straight into the stub, bypassing the save counter.
func (s *stubStore) seed(collection string, doc any) {
	data, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("seed %s: %v", collection, err))
	}
	s.collections[collection] = data
}

// ---------------------------------------------------------------------------
// Stub notification queue
// ---------------------------------------------------------------------------

type stubQueue struct {
	sent []ports.Notification
}

func (q *stubQueue) Enqueue(n ports.Notification) {
	q.sent = append(q.sent, n)
}

// ---------------------------------------------------------------------------
// Stub catalog
// ---------------------------------------------------------------------------

type stubCatalog struct {
	catalog domain.Catalog
	err     error
}

func (c *stubCatalog) GetAll(context.Context) (domain.Catalog, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.catalog, nil
}

func (c *stubCatalog) Add(context.Context, string, decimal.Decimal, string) error    { return nil }
func (c *stubCatalog) Update(context.Context, string, decimal.Decimal, string) error { return nil }
func (c *stubCatalog) Delete(context.Context, string) error                          { return nil }
