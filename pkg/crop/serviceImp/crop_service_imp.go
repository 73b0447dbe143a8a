package serviceImp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"cropplan/entities"
	"cropplan/pkg/analytics"
	repo "cropplan/pkg/crop/repository"
	"cropplan/pkg/crop/service"
)

const DefaultSeason = "2025/2026"

type cropSvc struct {
	r     repo.CropRepository
	cycle analytics.CycleCalculator
	log   zerolog.Logger
}

func NewCropService(r repo.CropRepository, cycle analytics.CycleCalculator, log zerolog.Logger) service.CropService {
	return &cropSvc{r: r, cycle: cycle, log: log}
}

func (s *cropSvc) Create(ctx context.Context, in service.NewPlan) (*entities.CropPlan, error) {
	p := entities.CropPlan{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(in.Name),
		Variety:        strings.TrimSpace(in.Variety),
		PlannedAreaHa:  in.PlannedAreaHa,
		ExpectedYield:  in.ExpectedYield,
		CostPerHectare: in.CostPerHectare,
		Status:         in.Status,
		Field:          strings.TrimSpace(in.Field),
		Notes:          in.Notes,
	}
	if p.Status == "" {
		p.Status = entities.StatusPlanning
	}
	if err := analytics.ValidatePlan(p); err != nil {
		return nil, err
	}
	if err := s.setDates(&p, in.PlantingDate, in.HarvestDate); err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, &p); err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	s.log.Info().Str("id", p.ID).Str("crop", p.Name).Int("cycle", p.CycleDays).Msg("[crop] plan created")
	return &p, nil
}

// setDates stores both dates and the cycle derived from them together.
func (s *cropSvc) setDates(p *entities.CropPlan, planting, harvest string) error {
	pd, err := analytics.ParseDate("planting_date", planting)
	if err != nil {
		return err
	}
	hd, err := analytics.ParseDate("harvest_date", harvest)
	if err != nil {
		return err
	}
	n, err := s.cycle.Between(pd, hd)
	if err != nil {
		return err
	}
	p.PlantingDate, p.HarvestDate, p.CycleDays = pd, hd, n
	return nil
}

func (s *cropSvc) Get(ctx context.Context, id string) (*entities.CropPlan, error) {
	return s.r.FindByID(ctx, id)
}

func (s *cropSvc) List(ctx context.Context, f analytics.StatusFilter) ([]entities.CropPlan, error) {
	all, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.FilterPlans(all, f), nil
}

func (s *cropSvc) Summary(ctx context.Context, f analytics.StatusFilter) (analytics.PlanSummary, error) {
	all, err := s.r.List(ctx)
	if err != nil {
		return analytics.PlanSummary{}, err
	}
	return analytics.SummarizePlans(all, f), nil
}

func (s *cropSvc) UpdateDates(ctx context.Context, id, planting, harvest string) (*entities.CropPlan, error) {
	p, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.setDates(p, planting, harvest); err != nil {
		return nil, err
	}
	if err := s.r.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}
	return p, nil
}

func (s *cropSvc) Transition(ctx context.Context, id string, to entities.CropStatus) (*entities.CropPlan, error) {
	p, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := analytics.CanTransition(p.Status, to); err != nil {
		return nil, err
	}
	if p.Status == to {
		return p, nil
	}
	from := p.Status
	p.Status = to
	if err := s.r.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}
	s.log.Info().Str("id", id).Str("from", string(from)).Str("to", string(to)).Msg("[crop] status changed")
	return p, nil
}

func (s *cropSvc) Delete(ctx context.Context, id string) error {
	return analytics.ErrNotImplemented
}

func (s *cropSvc) Cycle(planting, harvest string) (int, error) {
	return s.cycle.Days(planting, harvest)
}

func (s *cropSvc) CycleLabel(name, season string) (service.CycleLabel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return service.CycleLabel{}, &analytics.ValidationError{Field: "name", Reason: "is required"}
	}
	season = strings.TrimSpace(season)
	if season == "" {
		season = DefaultSeason
	}
	return service.CycleLabel{Name: name, Season: season, Label: name + " - " + season}, nil
}
