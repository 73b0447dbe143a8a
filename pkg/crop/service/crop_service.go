package service

import (
	"context"

	"cropplan/entities"
	"cropplan/pkg/analytics"
)

// NewPlan is the planning form. Dates are YYYY-MM-DD or RFC3339.
type NewPlan struct {
	Name           string              `json:"name"`
	Variety        string              `json:"variety"`
	PlannedAreaHa  float64             `json:"planned_area"`
	ExpectedYield  float64             `json:"expected_yield"`
	CostPerHectare float64             `json:"cost_per_hectare"`
	PlantingDate   string              `json:"planting_date"`
	HarvestDate    string              `json:"harvest_date"`
	Status         entities.CropStatus `json:"status"`
	Field          string              `json:"field"`
	Notes          string              `json:"notes"`
}

type CycleLabel struct {
	Name   string `json:"name"`
	Season string `json:"season"`
	Label  string `json:"label"`
}

type CropService interface {
	Create(ctx context.Context, in NewPlan) (*entities.CropPlan, error)
	Get(ctx context.Context, id string) (*entities.CropPlan, error)
	List(ctx context.Context, f analytics.StatusFilter) ([]entities.CropPlan, error)
	Summary(ctx context.Context, f analytics.StatusFilter) (analytics.PlanSummary, error)
	UpdateDates(ctx context.Context, id, planting, harvest string) (*entities.CropPlan, error)
	Transition(ctx context.Context, id string, to entities.CropStatus) (*entities.CropPlan, error)
	Delete(ctx context.Context, id string) error

	Cycle(planting, harvest string) (int, error)
	CycleLabel(name, season string) (CycleLabel, error)
}
