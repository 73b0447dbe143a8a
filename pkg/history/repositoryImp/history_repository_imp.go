package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"cropplan/entities"
	"cropplan/pkg/analytics"
	"cropplan/pkg/history/repository"
)

type historyRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HistoryRepository { return &historyRepo{db} }

func (r *historyRepo) Create(ctx context.Context, rec *entities.HistoryRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *historyRepo) List(ctx context.Context, fieldID string) ([]entities.HistoryRecord, error) {
	q := r.db.WithContext(ctx).Order("rowid ASC")
	if fieldID != "" && fieldID != analytics.AllFields {
		q = q.Where("field_id = ?", fieldID)
	}
	var out []entities.HistoryRecord
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
