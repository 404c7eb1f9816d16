// Package file implements the whole-document store over flat JSON files, one
// file per collection. This is the default driver and matches the on-disk
// layout the system has always used: users.json, products.json, orders.json.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store reads and writes one pretty-printed JSON file per collection under a
// data directory. Saves go through a temp file and rename so a crash mid-write
// never leaves a torn document. There is no cross-process locking: concurrent
// writers race and the last full-document write wins.
type Store struct {
	dir string
}

// New ensures dir exists and returns a Store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: create %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) Load(_ context.Context, collection string, out any) (bool, error) {
	data, err := os.ReadFile(s.path(collection))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("file store: read %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("file store: decode %s: %w", collection, err)
	}
	return true, nil
}

func (s *Store) Save(_ context.Context, collection string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("file store: encode %s: %w", collection, err)
	}

	target := s.path(collection)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("file store: write %s: %w", collection, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("file store: replace %s: %w", collection, err)
	}
	return nil
}
