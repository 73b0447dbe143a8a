package service

import (
	"context"

	"cropplan/entities"
	"cropplan/pkg/analytics"
)

// SimulationService runs profitability simulations. A nil area means the
// configured default; an explicit area must be positive.
type SimulationService interface {
	Profiles(ctx context.Context) ([]entities.CropSimulationProfile, error)
	UpsertProfile(ctx context.Context, p entities.CropSimulationProfile) (*entities.CropSimulationProfile, error)
	Simulate(ctx context.Context, crop string, area *float64) (analytics.SimulationResult, error)
	// Compare runs the named stored profiles, or all of them when crops is
	// empty. Unknown names yield failed entries.
	Compare(ctx context.Context, area *float64, crops ...string) (analytics.Comparison, error)
	CompareProfiles(profiles []entities.CropSimulationProfile, area *float64) (analytics.Comparison, error)
	DefaultArea() float64
}
