package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"cropplan/entities"
	"cropplan/pkg/rainfall/repository"
)

type rainfallRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RainfallRepository { return &rainfallRepo{db} }

func (r *rainfallRepo) Create(ctx context.Context, rec *entities.RainRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *rainfallRepo) Since(ctx context.Context, from time.Time) ([]entities.RainRecord, error) {
	q := r.db.WithContext(ctx).Order("date DESC, rowid ASC")
	if !from.IsZero() {
		q = q.Where("date >= ?", from)
	}
	var out []entities.RainRecord
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
