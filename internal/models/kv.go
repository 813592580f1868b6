package models

import "time"

// KVEntry is the single persisted table: one row per namespaced storage key,
// value holding the JSON-encoded collection or document.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
