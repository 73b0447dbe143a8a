package entities

import "time"

type CropStatus string

const (
	StatusPlanning  CropStatus = "planning"
	StatusActive    CropStatus = "active"
	StatusCompleted CropStatus = "completed"
)

// Rank orders statuses along the plan lifecycle. Unknown statuses rank -1.
func (s CropStatus) Rank() int {
	switch s {
	case StatusPlanning:
		return 0
	case StatusActive:
		return 1
	case StatusCompleted:
		return 2
	}
	return -1
}

func (s CropStatus) Valid() bool { return s.Rank() >= 0 }

type CropPlan struct {
	ID             string     `gorm:"primaryKey" json:"id"`
	Name           string     `json:"name" gorm:"index"`
	Variety        string     `json:"variety,omitempty"`
	PlannedAreaHa  float64    `json:"planned_area"`   // hectares
	ExpectedYield  float64    `json:"expected_yield"` // units/ha (bags)
	CostPerHectare float64    `json:"cost_per_hectare"`
	PlantingDate   time.Time  `json:"planting_date"`
	HarvestDate    time.Time  `json:"harvest_date"`
	Status         CropStatus `json:"status" gorm:"index"` // planning|active|completed
	Field          string     `json:"field"`               // free text, may name several plots
	CycleDays      int        `json:"cycle"`               // derived from the dates
	Notes          string     `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Investment is the planned spend for the whole area.
func (c CropPlan) Investment() float64 { return c.CostPerHectare * c.PlannedAreaHa }
