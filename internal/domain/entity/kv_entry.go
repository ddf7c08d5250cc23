package entity

import "time"

// KVEntry is one row of the key-value persistence table
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     []byte    `gorm:"type:bytea;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for KVEntry
func (KVEntry) TableName() string {
	return "kv_entries"
}
