package storage

import (
	"encoding/json"

	bolt "github.com/boltdb/bolt"

	"github.com/thibautrey/PebbleShopApp/internal/domain/models"
)

// settingsKey is the single record slot; the companion serves one store.
const settingsKey = "current"

// SettingsStore defines the contract for the persisted connection record.
type SettingsStore interface {
	LoadSettings() (models.Settings, error)
	SaveSettings(s models.Settings) (models.Settings, error)
}

// LoadSettings returns the persisted settings. A missing record reads as
// empty settings, not an error: the service decides what "unconfigured"
// means for a request.
func (s *Store) LoadSettings() (models.Settings, error) {
	var out models.Settings

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(settingsBucket)).Get([]byte(settingsKey))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &out)
	})
	if err != nil {
		return models.Settings{}, err
	}
	return out, nil
}

// SaveSettings normalizes and persists the record, returning the stored
// form (trimmed, scheme stripped from the domain).
func (s *Store) SaveSettings(in models.Settings) (models.Settings, error) {
	clean := in.Normalize()

	data, err := json.Marshal(clean)
	if err != nil {
		return models.Settings{}, err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(settingsBucket)).Put([]byte(settingsKey), data)
	})
	if err != nil {
		return models.Settings{}, err
	}
	return clean, nil
}
