package storage

import (
	"encoding/json"
	"fmt"

	bolt "github.com/boltdb/bolt"

	"github.com/thibautrey/PebbleShopApp/internal/domain/models"
)

// SalesCache defines the contract for the short-lived result cache.
// Entries older than the TTL read as absent.
type SalesCache interface {
	GetCached(key string) (*models.CacheEntry, error)
	PutCached(key string, total, currency string) error
	ClearCache() error
}

// CacheKey derives the cache key for a store/period combination. The
// token is deliberately excluded: credentials for the same store are
// assumed stable, and tokens must not leak into storage keys.
func CacheKey(s models.Settings, period models.Period) string {
	return fmt.Sprintf("%s|%s|%d", s.Domain, s.Timezone, int(period))
}

// GetCached returns the entry for key, or nil when the key is unknown or
// the entry has outlived the TTL. Stale entries are left in place; the
// next successful fetch overwrites them.
func (s *Store) GetCached(key string) (*models.CacheEntry, error) {
	var entry models.CacheEntry
	found := false

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(cacheBucket)).Get([]byte(key))
		if v == nil {
			return nil
		}
		if err := json.Unmarshal(v, &entry); err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found || s.now().Sub(entry.WrittenAt) > s.ttl {
		return nil, nil
	}
	return &entry, nil
}

// PutCached overwrites the entry for key with a fresh timestamp.
func (s *Store) PutCached(key string, total, currency string) error {
	entry := models.CacheEntry{Total: total, Currency: currency, WrittenAt: s.now()}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(cacheBucket)).Put([]byte(key), data)
	})
}

// ClearCache drops every cached result; invoked whenever settings change.
func (s *Store) ClearCache() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(cacheBucket)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(cacheBucket))
		return err
	})
}
