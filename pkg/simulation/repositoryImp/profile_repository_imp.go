package repositoryImp

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cropplan/entities"
	"cropplan/pkg/simulation/repository"
)

type profileRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProfileRepository { return &profileRepo{db} }

func (r *profileRepo) List(ctx context.Context) ([]entities.CropSimulationProfile, error) {
	var out []entities.CropSimulationProfile
	if err := r.db.WithContext(ctx).Order("rowid ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *profileRepo) FindByName(ctx context.Context, crop string) (*entities.CropSimulationProfile, error) {
	var p entities.CropSimulationProfile
	if err := r.db.WithContext(ctx).Where("crop_name = ?", crop).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert relies on ON CONFLICT DO UPDATE so the row keeps its rowid.
func (r *profileRepo) Upsert(ctx context.Context, p *entities.CropSimulationProfile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "crop_name"}},
		UpdateAll: true,
	}).Create(p).Error
}
