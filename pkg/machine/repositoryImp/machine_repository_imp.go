package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"cropplan/entities"
	"cropplan/pkg/machine/repository"
)

type machineRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MachineRepository { return &machineRepo{db} }

func (r *machineRepo) Create(ctx context.Context, m *entities.Machine) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *machineRepo) FindByID(ctx context.Context, id string) (*entities.Machine, error) {
	var m entities.Machine
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *machineRepo) List(ctx context.Context) ([]entities.Machine, error) {
	var out []entities.Machine
	if err := r.db.WithContext(ctx).Order("rowid ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *machineRepo) CreateMaintenance(ctx context.Context, rec *entities.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *machineRepo) ListMaintenance(ctx context.Context, machineID string) ([]entities.MaintenanceRecord, error) {
	q := r.db.WithContext(ctx).Order("date DESC, rowid ASC")
	if machineID != "" {
		q = q.Where("machine_id = ?", machineID)
	}
	var out []entities.MaintenanceRecord
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
