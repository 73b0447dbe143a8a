package repository

import (
	"context"

	"cropplan/entities"
)

type MachineRepository interface {
	Create(ctx context.Context, m *entities.Machine) error
	FindByID(ctx context.Context, id string) (*entities.Machine, error)
	List(ctx context.Context) ([]entities.Machine, error)

	CreateMaintenance(ctx context.Context, r *entities.MaintenanceRecord) error
	// ListMaintenance returns every record when machineID is empty.
	ListMaintenance(ctx context.Context, machineID string) ([]entities.MaintenanceRecord, error)
}
