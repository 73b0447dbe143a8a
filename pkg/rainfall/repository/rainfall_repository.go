package repository

import (
	"context"
	"time"

	"cropplan/entities"
)

type RainfallRepository interface {
	Create(ctx context.Context, r *entities.RainRecord) error
	// Since returns records dated on or after from; the zero time returns all.
	Since(ctx context.Context, from time.Time) ([]entities.RainRecord, error)
}
