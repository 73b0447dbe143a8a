package serviceImp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"cropplan/entities"
	"cropplan/pkg/analytics"
	repo "cropplan/pkg/rainfall/repository"
	"cropplan/pkg/rainfall/service"
)

type rainfallSvc struct {
	r   repo.RainfallRepository
	loc *time.Location
	now func() time.Time
	log zerolog.Logger
}

// NewRainfallService evaluates periods in loc. now may be nil.
func NewRainfallService(r repo.RainfallRepository, loc *time.Location, now func() time.Time, log zerolog.Logger) service.RainfallService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &rainfallSvc{r: r, loc: loc, now: now, log: log}
}

func (s *rainfallSvc) today() time.Time {
	n := s.now().In(s.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *rainfallSvc) Create(ctx context.Context, in service.NewRain) (*entities.RainRecord, error) {
	d := s.today()
	if strings.TrimSpace(in.Date) != "" {
		var err error
		if d, err = analytics.ParseDate("date", in.Date); err != nil {
			return nil, err
		}
	}
	rec := entities.RainRecord{
		ID:         uuid.NewString(),
		Date:       d,
		AmountMM:   in.AmountMM,
		Location:   strings.TrimSpace(in.Location),
		Technician: strings.TrimSpace(in.Technician),
		Notes:      in.Notes,
	}
	if err := analytics.ValidateRainRecord(rec); err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, &rec); err != nil {
		return nil, fmt.Errorf("create rain record: %w", err)
	}
	s.log.Info().Str("location", rec.Location).Float64("mm", rec.AmountMM).Msg("[rain] recorded")
	return &rec, nil
}

func (s *rainfallSvc) filter(q service.Query) analytics.RainFilter {
	return analytics.RainFilter{Period: q.Period, Location: q.Location, Now: s.today()}
}

func (s *rainfallSvc) List(ctx context.Context, q service.Query) ([]entities.RainRecord, error) {
	f := s.filter(q)
	recs, err := s.r.Since(ctx, f.Since())
	if err != nil {
		return nil, err
	}
	return analytics.FilterRain(recs, f), nil
}

// Summary loads every record: year-to-date and location shares are not
// limited by the period filter.
func (s *rainfallSvc) Summary(ctx context.Context, q service.Query) (analytics.RainSummary, error) {
	recs, err := s.r.Since(ctx, time.Time{})
	if err != nil {
		return analytics.RainSummary{}, err
	}
	return analytics.SummarizeRain(recs, s.filter(q)), nil
}

func (s *rainfallSvc) Export(ctx context.Context, q service.Query) ([]byte, error) {
	return nil, analytics.ErrNotImplemented
}
