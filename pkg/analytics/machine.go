package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"cropplan/entities"
)

func finiteNonNeg(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "must be a finite number")
	}
	if v < 0 {
		return invalid(field, "must be >= 0, got %v", v)
	}
	return nil
}

func ValidateMachine(m entities.Machine) error {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return invalid("name", "is required")
	case strings.TrimSpace(m.Model) == "":
		return invalid("model", "is required")
	case strings.TrimSpace(m.Code) == "":
		return invalid("code", "is required")
	case !m.Type.Valid():
		return invalid("type", "unknown machine type %q", m.Type)
	case !m.Status.Valid():
		return invalid("status", "unknown machine status %q", m.Status)
	}
	if err := finiteNonNeg("hours_used", m.HoursUsed); err != nil {
		return err
	}
	return finiteNonNeg("cost_per_hour", m.CostPerHour)
}

func ValidateMaintenance(r entities.MaintenanceRecord) error {
	switch {
	case strings.TrimSpace(r.MachineID) == "":
		return invalid("machine_id", "is required")
	case strings.TrimSpace(r.Description) == "":
		return invalid("description", "is required")
	case !r.Type.Valid():
		return invalid("type", "unknown maintenance type %q", r.Type)
	}
	if err := finiteNonNeg("cost", r.Cost); err != nil {
		return err
	}
	for _, p := range r.Parts {
		if err := finiteNonNeg("parts.quantity", p.Quantity); err != nil {
			return err
		}
		if err := finiteNonNeg("parts.unit_cost", p.UnitCost); err != nil {
			return err
		}
	}
	return nil
}

// FilterMachines keeps machines of the given type; "" and "all" keep
// everything.
func FilterMachines(ms []entities.Machine, typ string) ([]entities.Machine, error) {
	typ = strings.ToLower(strings.TrimSpace(typ))
	out := make([]entities.Machine, 0, len(ms))
	if typ == "" || typ == "all" {
		return append(out, ms...), nil
	}
	t := entities.MachineType(typ)
	if !t.Valid() {
		return nil, invalid("type", "unknown machine type %q", typ)
	}
	for _, m := range ms {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out, nil
}

type MachineCosts struct {
	MachineID        string              `json:"machine_id"`
	Records          int                 `json:"maintenance_records"`
	TotalMaintenance decimal.Decimal     `json:"total_maintenance"`
	CostPerHour      decimal.NullDecimal `json:"maintenance_cost_per_hour"` // null without engine hours
	Warnings         []Warning           `json:"warnings,omitempty"`
}

// MachineCost totals the maintenance spent on m and spreads it over its
// engine hours. Records of other machines are ignored.
func MachineCost(m entities.Machine, records []entities.MaintenanceRecord) MachineCosts {
	out := MachineCosts{MachineID: m.ID, TotalMaintenance: decimal.Zero}
	for _, r := range records {
		if r.MachineID != m.ID {
			continue
		}
		out.Records++
		out.TotalMaintenance = out.TotalMaintenance.Add(decimal.NewFromFloat(r.Cost))
	}
	if !(m.HoursUsed > 0) {
		out.Warnings = append(out.Warnings, Warning{
			Code:    WarnNoEngineHours,
			Message: "machine has no engine hours; cost per hour is undefined",
		})
		return out
	}
	out.CostPerHour = decimal.NewNullDecimal(out.TotalMaintenance.Div(decimal.NewFromFloat(m.HoursUsed)).Round(2))
	return out
}

// PendingMaintenance returns the records not yet completed, earliest first.
func PendingMaintenance(records []entities.MaintenanceRecord) []entities.MaintenanceRecord {
	out := make([]entities.MaintenanceRecord, 0, len(records))
	for _, r := range records {
		if !r.Completed {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

type FleetSummary struct {
	Machines        int                          `json:"machines"`
	Operational     int                          `json:"operational"`
	HourlyCost      decimal.Decimal              `json:"hourly_cost"` // sum of every machine's cost per hour
	MaintenanceCost decimal.Decimal              `json:"maintenance_cost"`
	Pending         int                          `json:"pending_maintenance"`
	ByType          map[entities.MachineType]int `json:"by_type"`
}

func SummarizeFleet(ms []entities.Machine, records []entities.MaintenanceRecord) FleetSummary {
	s := FleetSummary{
		Machines:        len(ms),
		HourlyCost:      decimal.Zero,
		MaintenanceCost: decimal.Zero,
		ByType:          map[entities.MachineType]int{},
	}
	for _, m := range ms {
		if m.Status == entities.MachineOperational {
			s.Operational++
		}
		s.HourlyCost = s.HourlyCost.Add(decimal.NewFromFloat(m.CostPerHour))
		s.ByType[m.Type]++
	}
	for _, r := range records {
		s.MaintenanceCost = s.MaintenanceCost.Add(decimal.NewFromFloat(r.Cost))
		if !r.Completed {
			s.Pending++
		}
	}
	return s
}
