package entities

import "time"

type CropSimulationProfile struct {
	CropName       string  `gorm:"primaryKey" json:"crop_name"`
	CostPerHectare float64 `json:"cost_per_hectare"`
	ExpectedYield  float64 `json:"expected_yield"` // units/ha
	CurrentPrice   float64 `json:"current_price"`  // currency/unit
	CycleDays      int     `json:"cycle"`          // informational only

	UpdatedAt time.Time `json:"-"`
}
