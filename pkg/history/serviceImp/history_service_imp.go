package serviceImp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"cropplan/entities"
	"cropplan/pkg/analytics"
	repo "cropplan/pkg/history/repository"
	"cropplan/pkg/history/service"
)

type historySvc struct {
	r   repo.HistoryRepository
	log zerolog.Logger
}

func NewHistoryService(r repo.HistoryRepository, log zerolog.Logger) service.HistoryService {
	return &historySvc{r: r, log: log}
}

func (s *historySvc) Create(ctx context.Context, in service.NewRecord) (*entities.HistoryRecord, error) {
	rec := entities.HistoryRecord{
		ID:              uuid.NewString(),
		FieldID:         strings.TrimSpace(in.FieldID),
		FieldName:       strings.TrimSpace(in.FieldName),
		CropName:        strings.TrimSpace(in.CropName),
		Variety:         strings.TrimSpace(in.Variety),
		Season:          strings.TrimSpace(in.Season),
		YieldPerHectare: in.YieldPerHectare,
		TotalYield:      in.TotalYield,
		Notes:           in.Notes,
	}
	if err := analytics.ValidateHistoryRecord(rec); err != nil {
		return nil, err
	}
	// dates are optional on historical records
	if in.PlantingDate != "" {
		d, err := analytics.ParseDate("planting_date", in.PlantingDate)
		if err != nil {
			return nil, err
		}
		rec.PlantingDate = d
	}
	if in.HarvestDate != "" {
		d, err := analytics.ParseDate("harvest_date", in.HarvestDate)
		if err != nil {
			return nil, err
		}
		rec.HarvestDate = d
	}
	if err := s.r.Create(ctx, &rec); err != nil {
		return nil, fmt.Errorf("create history record: %w", err)
	}
	return &rec, nil
}

func (s *historySvc) List(ctx context.Context, fieldID string) ([]entities.HistoryRecord, error) {
	return s.r.List(ctx, fieldID)
}

func (s *historySvc) Aggregate(ctx context.Context, opts analytics.AggregateOptions) (analytics.HistoryReport, error) {
	all, err := s.r.List(ctx, "")
	if err != nil {
		return analytics.HistoryReport{}, err
	}
	rep, err := analytics.Aggregate(all, opts)
	if err != nil {
		return rep, err
	}
	for _, sk := range rep.Skipped {
		s.log.Warn().Str("record", sk.RecordID).Str("reason", sk.Reason).Msg("[history] record skipped")
	}
	return rep, nil
}

func (s *historySvc) Fields(ctx context.Context) ([]service.FieldOption, error) {
	all, err := s.r.List(ctx, "")
	if err != nil {
		return nil, err
	}
	groups := analytics.GroupByField(all)
	out := make([]service.FieldOption, 0, len(groups))
	for _, g := range groups {
		out = append(out, service.FieldOption{ID: g.Key, Name: g.Label})
	}
	return out, nil
}
