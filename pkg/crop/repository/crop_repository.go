package repository

import (
	"context"

	"cropplan/entities"
)

type CropRepository interface {
	Create(ctx context.Context, p *entities.CropPlan) error
	FindByID(ctx context.Context, id string) (*entities.CropPlan, error)
	// List returns every plan in insertion order.
	List(ctx context.Context) ([]entities.CropPlan, error)
	Save(ctx context.Context, p *entities.CropPlan) error
}
