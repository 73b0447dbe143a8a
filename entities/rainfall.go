package entities

import "time"

type RainRecord struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	Date       time.Time `json:"date" gorm:"index"`
	AmountMM   float64   `json:"amount"`
	Location   string    `json:"location" gorm:"index"`
	Technician string    `json:"technician"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
