package repository

import (
	"context"

	"cropplan/entities"
)

// PlotStore persists the whole plot list as a single value. Load reports
// false when nothing has been saved yet.
type PlotStore interface {
	Load(ctx context.Context) ([]entities.Plot, bool, error)
	Save(ctx context.Context, plots []entities.Plot) error
}
