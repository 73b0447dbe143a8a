package service

import (
	"context"

	"cropplan/entities"
	"cropplan/pkg/analytics"
)

type NewMachine struct {
	Name            string                 `json:"name"`
	Model           string                 `json:"model"`
	Type            entities.MachineType   `json:"type"` // default tractor
	Code            string                 `json:"code"`
	HoursUsed       float64                `json:"hours_used"`
	Status          entities.MachineStatus `json:"status"` // default operational
	CostPerHour     float64                `json:"cost_per_hour"`
	PurchaseDate    string                 `json:"purchase_date"` // empty means today
	NextMaintenance string                 `json:"next_maintenance"`
	Implements      []string               `json:"implements"`
	Notes           string                 `json:"notes"`
}

type NewMaintenance struct {
	MachineID   string                     `json:"machine_id"`
	Date        string                     `json:"date"` // empty means today
	Type        entities.MaintenanceType   `json:"type"` // default preventive
	Description string                     `json:"description"`
	Cost        float64                    `json:"cost"`
	Technician  string                     `json:"technician"`
	Parts       []entities.MaintenancePart `json:"parts"`
}

// Detail is the machine card: the machine, its maintenance history and
// what that history cost.
type Detail struct {
	Machine     entities.Machine             `json:"machine"`
	Maintenance []entities.MaintenanceRecord `json:"maintenance"`
	Costs       analytics.MachineCosts       `json:"costs"`
}

type ScheduledMaintenance struct {
	entities.MaintenanceRecord
	MachineName string `json:"machine_name"` // empty when the machine is gone
}

type MachineService interface {
	Create(ctx context.Context, in NewMachine) (*entities.Machine, error)
	List(ctx context.Context, machineType string) ([]entities.Machine, error)
	Get(ctx context.Context, id string) (Detail, error)
	Summary(ctx context.Context) (analytics.FleetSummary, error)
	Update(ctx context.Context, id string, in NewMachine) (*entities.Machine, error)
	UploadImage(ctx context.Context, id string, image []byte) error
	LogActivity(ctx context.Context, id string) error
	ExportReport(ctx context.Context, id string) ([]byte, error)

	ScheduleMaintenance(ctx context.Context, in NewMaintenance) (*entities.MaintenanceRecord, error)
	Pending(ctx context.Context) ([]ScheduledMaintenance, error)
}
