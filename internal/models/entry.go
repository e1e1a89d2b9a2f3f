package models

import "time"

// Entry is a single row of the device-local key-value store
type Entry struct {
	Key       string    `gorm:"column:store_key;primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name stable regardless of gorm's pluralisation rules
func (Entry) TableName() string {
	return "kv_entries"
}
