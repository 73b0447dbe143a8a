package serviceImp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cropplan/entities"
	"cropplan/pkg/analytics"
	repo "cropplan/pkg/simulation/repository"
	"cropplan/pkg/simulation/service"
)

type simulationSvc struct {
	r           repo.ProfileRepository
	defaultArea float64
	log         zerolog.Logger
}

func NewSimulationService(r repo.ProfileRepository, defaultArea float64, log zerolog.Logger) service.SimulationService {
	return &simulationSvc{r: r, defaultArea: defaultArea, log: log}
}

func (s *simulationSvc) DefaultArea() float64 { return s.defaultArea }

func (s *simulationSvc) area(a *float64) float64 {
	if a == nil {
		return s.defaultArea
	}
	return *a
}

func (s *simulationSvc) Profiles(ctx context.Context) ([]entities.CropSimulationProfile, error) {
	return s.r.List(ctx)
}

func (s *simulationSvc) UpsertProfile(ctx context.Context, p entities.CropSimulationProfile) (*entities.CropSimulationProfile, error) {
	p.CropName = strings.TrimSpace(p.CropName)
	if err := analytics.ValidateProfile(p); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now()
	if err := s.r.Upsert(ctx, &p); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	s.log.Info().Str("crop", p.CropName).Float64("price", p.CurrentPrice).Msg("[sim] profile saved")
	return &p, nil
}

func (s *simulationSvc) Simulate(ctx context.Context, crop string, area *float64) (analytics.SimulationResult, error) {
	a := s.area(area)
	if err := analytics.ValidateArea(a); err != nil {
		return analytics.SimulationResult{}, err
	}
	p, err := s.r.FindByName(ctx, strings.TrimSpace(crop))
	if err != nil {
		return analytics.SimulationResult{}, err
	}
	return analytics.Simulate(*p, a)
}

func (s *simulationSvc) Compare(ctx context.Context, area *float64, crops ...string) (analytics.Comparison, error) {
	all, err := s.r.List(ctx)
	if err != nil {
		return analytics.Comparison{}, err
	}
	if len(crops) == 0 {
		return s.CompareProfiles(all, area)
	}

	byName := make(map[string]entities.CropSimulationProfile, len(all))
	for _, p := range all {
		byName[p.CropName] = p
	}
	a := s.area(area)
	if err := analytics.ValidateArea(a); err != nil {
		return analytics.Comparison{}, err
	}
	picked := make([]entities.CropSimulationProfile, 0, len(crops))
	var missing []int
	for i, c := range crops {
		c = strings.TrimSpace(c)
		p, ok := byName[c]
		if !ok {
			missing = append(missing, i)
			p = entities.CropSimulationProfile{CropName: c}
		}
		picked = append(picked, p)
	}
	cmp, err := analytics.CompareAll(picked, a)
	if err != nil {
		return cmp, err
	}
	// unknown crops fail lookup, not validation
	for _, i := range missing {
		if cmp.Results[i].Error == "" {
			cmp.Failed++
		}
		cmp.Results[i] = analytics.SimulationResult{
			CropName: picked[i].CropName,
			Area:     decimal.NewFromFloat(a),
			Error:    fmt.Sprintf("unknown crop %q: %v", picked[i].CropName, gorm.ErrRecordNotFound),
		}
	}
	s.logFailures(cmp)
	return cmp, nil
}

func (s *simulationSvc) CompareProfiles(profiles []entities.CropSimulationProfile, area *float64) (analytics.Comparison, error) {
	cmp, err := analytics.CompareAll(profiles, s.area(area))
	if err != nil {
		return cmp, err
	}
	s.logFailures(cmp)
	return cmp, nil
}

func (s *simulationSvc) logFailures(cmp analytics.Comparison) {
	if cmp.Failed == 0 {
		return
	}
	for _, r := range cmp.Results {
		if r.Error != "" {
			s.log.Warn().Str("crop", r.CropName).Str("reason", r.Error).Msg("[sim] profile skipped")
		}
	}
}
