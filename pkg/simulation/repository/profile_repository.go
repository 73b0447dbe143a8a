package repository

import (
	"context"

	"cropplan/entities"
)

type ProfileRepository interface {
	// List returns profiles in insertion order. Updates keep a profile's
	// position.
	List(ctx context.Context) ([]entities.CropSimulationProfile, error)
	FindByName(ctx context.Context, crop string) (*entities.CropSimulationProfile, error)
	Upsert(ctx context.Context, p *entities.CropSimulationProfile) error
}
