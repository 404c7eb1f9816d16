package ports

import "context"

// Collection names understood by every Store driver.
const (
	CollectionUsers    = "users"
	CollectionProducts = "products"
	CollectionOrders   = "orders"
)

// Store persists whole-collection documents. There are no partial updates and
// no cross-collection transactions: every mutation is a read-modify-write of
// the entire document, and the last writer wins. Callers that need stronger
// guarantees get them by swapping the driver behind this interface, not by
// changing manager code.
type Store interface {
	// Load decodes the named collection into out and reports whether the
	// collection exists. A missing collection is not an error; out is left
	// untouched and found is false.
	Load(ctx context.Context, collection string, out any) (found bool, err error)

	// Save overwrites the named collection with doc.
	Save(ctx context.Context, collection string, doc any) error
}
