package repositoryImp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cropplan/entities"
	"cropplan/pkg/plot"
	"cropplan/pkg/plot/repository"
)

type kvPlotStore struct {
	db  *gorm.DB
	key string
}

func New(db *gorm.DB) repository.PlotStore { return &kvPlotStore{db: db, key: plot.StorageKey} }

func (s *kvPlotStore) Load(ctx context.Context) ([]entities.Plot, bool, error) {
	var kv entities.KVEntry
	err := s.db.WithContext(ctx).Where("`key` = ?", s.key).First(&kv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var plots []entities.Plot
	if err := json.Unmarshal(kv.Value, &plots); err != nil {
		return nil, true, fmt.Errorf("decode %s: %w", s.key, err)
	}
	return plots, true, nil
}

func (s *kvPlotStore) Save(ctx context.Context, plots []entities.Plot) error {
	if plots == nil {
		plots = []entities.Plot{}
	}
	b, err := json.Marshal(plots)
	if err != nil {
		return err
	}
	kv := entities.KVEntry{Key: s.key, Value: datatypes.JSON(b), UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kv).Error
}
