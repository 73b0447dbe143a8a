package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"cropplan/entities"
	"cropplan/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Create(ctx context.Context, p *entities.CropPlan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *cropRepo) FindByID(ctx context.Context, id string) (*entities.CropPlan, error) {
	var p entities.CropPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *cropRepo) List(ctx context.Context) ([]entities.CropPlan, error) {
	var ps []entities.CropPlan
	if err := r.db.WithContext(ctx).Order("rowid ASC").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *cropRepo) Save(ctx context.Context, p *entities.CropPlan) error {
	return r.db.WithContext(ctx).Save(p).Error
}
