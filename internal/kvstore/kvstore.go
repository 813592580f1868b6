// Package kvstore wraps the kv_entries table as a string-keyed JSON document
// store. Reads never fail: a missing row or an unparseable payload yields the
// caller's default. Writes are fire-and-forget: failures are logged and
// swallowed, so callers always proceed as if the write succeeded.
package kvstore

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/marek/mastermind-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Read unmarshals the value stored under key into T, returning def unchanged
// when the key is absent or the payload is corrupt.
func Read[T any](s *Store, key string, def T) T {
	var entry models.KVEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("kvstore: read %s: %v", key, err)
		}
		return def
	}

	var value T
	if err := json.Unmarshal([]byte(entry.Value), &value); err != nil {
		return def
	}
	return value
}

// Write serializes value under key, replacing any previous row.
func Write[T any](s *Store, key string, value T) {
	payload, err := json.Marshal(value)
	if err != nil {
		log.Printf("kvstore: write %s: %v", key, err)
		return
	}

	entry := models.KVEntry{Key: key, Value: string(payload), UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		log.Printf("kvstore: write %s: %v", key, err)
	}
}

// Delete removes key entirely; a missing key is not an error.
func (s *Store) Delete(key string) {
	if err := s.db.Delete(&models.KVEntry{}, "key = ?", key).Error; err != nil {
		log.Printf("kvstore: delete %s: %v", key, err)
	}
}

// Has reports whether any row exists under key, without decoding it.
func (s *Store) Has(key string) bool {
	var count int64
	s.db.Model(&models.KVEntry{}).Where("key = ?", key).Count(&count)
	return count > 0
}
