package entities

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry is a named JSON document, the server-side stand-in for the
// dashboard's client-local storage.
type KVEntry struct {
	Key       string         `gorm:"primaryKey"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}
