package service

import (
	"context"

	"cropplan/entities"
	"cropplan/pkg/analytics"
)

type NewRecord struct {
	FieldID         string  `json:"field_id"`
	FieldName       string  `json:"field_name"`
	CropName        string  `json:"crop_name"`
	Variety         string  `json:"variety"`
	Season          string  `json:"season"`
	YieldPerHectare float64 `json:"yield_per_hectare"`
	TotalYield      float64 `json:"total_yield"`
	PlantingDate    string  `json:"planting_date"`
	HarvestDate     string  `json:"harvest_date"`
	Notes           string  `json:"notes"`
}

// FieldOption feeds the field filter: id plus the name of its first record.
type FieldOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type HistoryService interface {
	Create(ctx context.Context, in NewRecord) (*entities.HistoryRecord, error)
	List(ctx context.Context, fieldID string) ([]entities.HistoryRecord, error)
	Aggregate(ctx context.Context, opts analytics.AggregateOptions) (analytics.HistoryReport, error)
	Fields(ctx context.Context) ([]FieldOption, error)
}
