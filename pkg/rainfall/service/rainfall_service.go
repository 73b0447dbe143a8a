package service

import (
	"context"

	"cropplan/entities"
	"cropplan/pkg/analytics"
)

type NewRain struct {
	Date       string  `json:"date"` // empty means today
	AmountMM   float64 `json:"amount"`
	Location   string  `json:"location"`
	Technician string  `json:"technician"`
	Notes      string  `json:"notes"`
}

// Query selects records; Period and Location use the rain tracker's
// filter values.
type Query struct {
	Period   analytics.RainPeriod
	Location string
}

type RainfallService interface {
	Create(ctx context.Context, in NewRain) (*entities.RainRecord, error)
	List(ctx context.Context, q Query) ([]entities.RainRecord, error)
	Summary(ctx context.Context, q Query) (analytics.RainSummary, error)
	Export(ctx context.Context, q Query) ([]byte, error)
}
