package entities

import "time"

// HistoryRecord is a completed harvest observation. TotalYield is stored
// as reported and is not re-derived from YieldPerHectare.
type HistoryRecord struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	FieldID         string    `json:"field_id" gorm:"index"`
	FieldName       string    `json:"field_name"`
	CropName        string    `json:"crop_name" gorm:"index"`
	Variety         string    `json:"variety"`
	Season          string    `json:"season"` // e.g. 2023/2024
	YieldPerHectare float64   `json:"yield_per_hectare"`
	TotalYield      float64   `json:"total_yield"`
	PlantingDate    time.Time `json:"planting_date"`
	HarvestDate     time.Time `json:"harvest_date"`
	Notes           string    `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
