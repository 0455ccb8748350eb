// Package storage is the BoltDB-backed persistence layer: the store
// connection settings and the short-lived sales result cache. All data
// lives in a single file, so the companion needs no external database.
package storage

import (
	"time"

	bolt "github.com/boltdb/bolt"
)

const (
	settingsBucket = "settings"
	cacheBucket    = "sales_cache"
)

// Store wraps a BoltDB database and exposes the settings record and the
// TTL sales cache. Bolt serializes writers, so concurrent cache
// read-modify-write cannot lose updates.
type Store struct {
	db  *bolt.DB
	ttl time.Duration

	// now is swapped out by tests to control TTL expiry.
	now func() time.Time
}

// Open opens (or creates) the database file and ensures both buckets
// exist. Calling it on every startup is safe.
func Open(path string, ttl time.Duration) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, b := range []string{settingsBucket, cacheBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(b)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, ttl: ttl, now: time.Now}, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database is readable; used by the readiness probe.
func (s *Store) Ping() error {
	return s.db.View(func(tx *bolt.Tx) error { return nil })
}
