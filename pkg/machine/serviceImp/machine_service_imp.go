package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"cropplan/entities"
	"cropplan/pkg/analytics"
	repo "cropplan/pkg/machine/repository"
	"cropplan/pkg/machine/service"
)

type machineSvc struct {
	r   repo.MachineRepository
	now func() time.Time
	log zerolog.Logger
}

// NewMachineService dates new records with now; nil means time.Now.
func NewMachineService(r repo.MachineRepository, now func() time.Time, log zerolog.Logger) service.MachineService {
	if now == nil {
		now = time.Now
	}
	return &machineSvc{r: r, now: now, log: log}
}

func (s *machineSvc) today() time.Time {
	n := s.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *machineSvc) dateOr(field, v string) (time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return s.today(), nil
	}
	return analytics.ParseDate(field, v)
}

func (s *machineSvc) Create(ctx context.Context, in service.NewMachine) (*entities.Machine, error) {
	bought, err := s.dateOr("purchase_date", in.PurchaseDate)
	if err != nil {
		return nil, err
	}
	m := entities.Machine{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Model:        strings.TrimSpace(in.Model),
		Type:         in.Type,
		Code:         strings.TrimSpace(in.Code),
		HoursUsed:    in.HoursUsed,
		Status:       in.Status,
		CostPerHour:  in.CostPerHour,
		PurchaseDate: bought,
		Implements:   in.Implements,
		Notes:        in.Notes,
	}
	if m.Type == "" {
		m.Type = entities.MachineTractor
	}
	if m.Status == "" {
		m.Status = entities.MachineOperational
	}
	if m.Implements == nil {
		m.Implements = []string{}
	}
	if strings.TrimSpace(in.NextMaintenance) != "" {
		next, err := analytics.ParseDate("next_maintenance", in.NextMaintenance)
		if err != nil {
			return nil, err
		}
		m.NextMaintenance = &next
	}
	if err := analytics.ValidateMachine(m); err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, &m); err != nil {
		return nil, fmt.Errorf("create machine: %w", err)
	}
	s.log.Info().Str("id", m.ID).Str("code", m.Code).Msg("[machine] added")
	return &m, nil
}

func (s *machineSvc) List(ctx context.Context, machineType string) ([]entities.Machine, error) {
	ms, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.FilterMachines(ms, machineType)
}

func (s *machineSvc) Get(ctx context.Context, id string) (service.Detail, error) {
	m, err := s.r.FindByID(ctx, id)
	if err != nil {
		return service.Detail{}, err
	}
	recs, err := s.r.ListMaintenance(ctx, id)
	if err != nil {
		return service.Detail{}, err
	}
	return service.Detail{Machine: *m, Maintenance: recs, Costs: analytics.MachineCost(*m, recs)}, nil
}

func (s *machineSvc) Summary(ctx context.Context) (analytics.FleetSummary, error) {
	ms, err := s.r.List(ctx)
	if err != nil {
		return analytics.FleetSummary{}, err
	}
	recs, err := s.r.ListMaintenance(ctx, "")
	if err != nil {
		return analytics.FleetSummary{}, err
	}
	return analytics.SummarizeFleet(ms, recs), nil
}

func (s *machineSvc) Update(ctx context.Context, id string, in service.NewMachine) (*entities.Machine, error) {
	return nil, analytics.ErrNotImplemented
}

func (s *machineSvc) UploadImage(ctx context.Context, id string, image []byte) error {
	return analytics.ErrNotImplemented
}

func (s *machineSvc) LogActivity(ctx context.Context, id string) error {
	return analytics.ErrNotImplemented
}

func (s *machineSvc) ExportReport(ctx context.Context, id string) ([]byte, error) {
	return nil, analytics.ErrNotImplemented
}

func (s *machineSvc) ScheduleMaintenance(ctx context.Context, in service.NewMaintenance) (*entities.MaintenanceRecord, error) {
	d, err := s.dateOr("date", in.Date)
	if err != nil {
		return nil, err
	}
	rec := entities.MaintenanceRecord{
		ID:          uuid.NewString(),
		MachineID:   strings.TrimSpace(in.MachineID),
		Date:        d,
		Type:        in.Type,
		Description: strings.TrimSpace(in.Description),
		Cost:        in.Cost,
		Technician:  strings.TrimSpace(in.Technician),
		Parts:       in.Parts,
	}
	if rec.Type == "" {
		rec.Type = entities.MaintenancePreventive
	}
	if rec.Parts == nil {
		rec.Parts = []entities.MaintenancePart{}
	}
	if err := analytics.ValidateMaintenance(rec); err != nil {
		return nil, err
	}
	if _, err := s.r.FindByID(ctx, rec.MachineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &analytics.ValidationError{Field: "machine_id", Reason: fmt.Sprintf("unknown machine %q", rec.MachineID)}
		}
		return nil, err
	}
	if err := s.r.CreateMaintenance(ctx, &rec); err != nil {
		return nil, fmt.Errorf("create maintenance: %w", err)
	}
	s.log.Info().Str("machine", rec.MachineID).Str("date", rec.Date.Format(analytics.DateLayout)).Msg("[machine] maintenance scheduled")
	return &rec, nil
}

func (s *machineSvc) Pending(ctx context.Context) ([]service.ScheduledMaintenance, error) {
	ms, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(ms))
	for _, m := range ms {
		names[m.ID] = m.Name
	}
	recs, err := s.r.ListMaintenance(ctx, "")
	if err != nil {
		return nil, err
	}
	pending := analytics.PendingMaintenance(recs)
	out := make([]service.ScheduledMaintenance, 0, len(pending))
	for _, r := range pending {
		out = append(out, service.ScheduledMaintenance{MaintenanceRecord: r, MachineName: names[r.MachineID]})
	}
	return out, nil
}
