package serviceImp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"cropplan/entities"
	"cropplan/pkg/analytics"
	"cropplan/pkg/plot"
	repo "cropplan/pkg/plot/repository"
	"cropplan/pkg/plot/service"
)

const NewPlotColor = "#9333EA"

// placeholder outline until the map editor can draw one
var newPlotOutline = []entities.LatLng{
	{Lat: -13.017, Lng: -55.995},
	{Lat: -13.017, Lng: -55.987},
	{Lat: -13.022, Lng: -55.987},
	{Lat: -13.022, Lng: -55.995},
}

var plotStatuses = map[entities.PlotStatus]bool{
	entities.PlotPlanting: true, entities.PlotPreparation: true, entities.PlotFertilizing: true,
	entities.PlotGroundSpray: true, entities.PlotAerialSpray: true, entities.PlotHarvest: true,
	entities.PlotResting: true,
}

type plotSvc struct {
	store    repo.PlotStore
	defaults func() []entities.Plot
	log      zerolog.Logger
}

func NewPlotService(store repo.PlotStore, defaults func() []entities.Plot, log zerolog.Logger) service.PlotService {
	return &plotSvc{store: store, defaults: defaults, log: log}
}

func (s *plotSvc) List(ctx context.Context) ([]entities.Plot, error) {
	stored, ok, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return s.defaults(), nil
	}
	return plot.Merge(s.defaults(), stored), nil
}

func (s *plotSvc) Add(ctx context.Context, in service.NewPlot) (*entities.Plot, error) {
	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		return nil, &analytics.ValidationError{Field: "name", Reason: "is required"}
	case in.AreaHa <= 0:
		return nil, &analytics.ValidationError{Field: "area", Reason: fmt.Sprintf("must be > 0, got %v", in.AreaHa)}
	case in.Status != "" && !plotStatuses[in.Status]:
		return nil, &analytics.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", in.Status)}
	}
	status := in.Status
	if status == "" {
		status = entities.PlotPreparation
	}
	p := entities.Plot{
		ID:          "temp-" + uuid.NewString(),
		Name:        name,
		AreaHa:      in.AreaHa,
		Crop:        strings.TrimSpace(in.Crop),
		Variety:     strings.TrimSpace(in.Variety),
		Status:      status,
		Coordinates: append([]entities.LatLng(nil), newPlotOutline...),
		Color:       NewPlotColor,
	}

	current, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, append(current, p)); err != nil {
		return nil, fmt.Errorf("save plots: %w", err)
	}
	s.log.Info().Str("id", p.ID).Str("name", p.Name).Msg("[plot] added")
	return &p, nil
}

func (s *plotSvc) Update(ctx context.Context, id string, p entities.Plot) error {
	return analytics.ErrNotImplemented
}

func (s *plotSvc) Delete(ctx context.Context, id string) error {
	return analytics.ErrNotImplemented
}
