package service

import (
	"context"

	"cropplan/entities"
)

type NewPlot struct {
	Name    string              `json:"name"`
	AreaHa  float64             `json:"area"`
	Crop    string              `json:"crop"`
	Variety string              `json:"variety"`
	Status  entities.PlotStatus `json:"status"`
}

type PlotService interface {
	List(ctx context.Context) ([]entities.Plot, error)
	Add(ctx context.Context, in NewPlot) (*entities.Plot, error)
	Update(ctx context.Context, id string, p entities.Plot) error
	Delete(ctx context.Context, id string) error
}
