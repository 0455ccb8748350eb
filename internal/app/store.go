package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thibautrey/PebbleShopApp/config"
	"github.com/thibautrey/PebbleShopApp/internal/storage"
)

// InitStore opens the embedded BoltDB store from configuration, creating
// the parent directory on first run.
//
// Returns:
//   - *storage.Store: an open store (safe for concurrent use).
//   - error: if the directory or database file cannot be opened.
func InitStore(cfg config.Config) (*storage.Store, error) {
	dir := filepath.Dir(cfg.Store.Path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	store, err := storage.Open(cfg.Store.Path, cfg.Cache.TTL)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// storeOpener is an indirection used by InitializeApp; overridden in tests.
var storeOpener = InitStore
