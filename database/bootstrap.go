package database

import (
	"fmt"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"cropplan/entities"
	"cropplan/pkg/analytics"
	"cropplan/pkg/seed"
)

// Open connects to the sqlite file at path and brings the schema up to
// date. Seeding is left to the caller.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.CropPlan{},
		&entities.HistoryRecord{},
		&entities.CropSimulationProfile{},
		&entities.RainRecord{},
		&entities.KVEntry{},
		&entities.Machine{},
		&entities.MaintenanceRecord{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	// must run after AutoMigrate: older files may predate the cycle column
	if err := backfillCycleDays(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// backfillCycleDays fills cycle_days for plans stored before it was
// persisted. Rows with an explicit cycle are left alone.
func backfillCycleDays(db *gorm.DB) error {
	var stale []entities.CropPlan
	if err := db.Where("cycle_days = 0 OR cycle_days IS NULL").Find(&stale).Error; err != nil {
		return fmt.Errorf("find stale plans: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, p := range stale {
			if p.PlantingDate.IsZero() || p.HarvestDate.IsZero() {
				continue
			}
			n := analytics.ComputeCycleDays(p.PlantingDate, p.HarvestDate)
			if err := tx.Model(&entities.CropPlan{}).Where("id = ?", p.ID).
				UpdateColumn("cycle_days", n).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

type SeedOptions struct {
	ProfilesFile string // optional CSV/XLSX/YAML
	HistoryFile  string
	Now          time.Time // dates the sample rain log; zero means time.Now()
}

// SeedIfEmpty loads the sample dataset into every table that has no rows.
// A seed file that cannot be read falls back to the built-in samples.
func SeedIfEmpty(db *gorm.DB, log zerolog.Logger, opts SeedOptions) error {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	profiles := seed.Profiles()
	if opts.ProfilesFile != "" {
		got, skipped, err := seed.LoadProfiles(opts.ProfilesFile)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("file", opts.ProfilesFile).Msg("[seed] profiles file unusable, using samples")
		default:
			for _, s := range skipped {
				log.Warn().Str("file", opts.ProfilesFile).Int("row", s.Row).Str("reason", s.Reason).Msg("[seed] profile row skipped")
			}
			if len(got) > 0 {
				profiles = got
			}
		}
	}
	history := seed.History()
	if opts.HistoryFile != "" {
		got, skipped, err := seed.LoadHistory(opts.HistoryFile)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("file", opts.HistoryFile).Msg("[seed] history file unusable, using samples")
		default:
			for _, s := range skipped {
				log.Warn().Str("file", opts.HistoryFile).Int("row", s.Row).Str("reason", s.Reason).Msg("[seed] history row skipped")
			}
			if len(got) > 0 {
				history = got
			}
		}
	}

	if err := seedTable(db, log, "crop_plans", &entities.CropPlan{}, seed.CropPlans()); err != nil {
		return err
	}
	if err := seedTable(db, log, "history_records", &entities.HistoryRecord{}, history); err != nil {
		return err
	}
	if err := seedTable(db, log, "crop_simulation_profiles", &entities.CropSimulationProfile{}, profiles); err != nil {
		return err
	}
	if err := seedTable(db, log, "rain_records", &entities.RainRecord{}, seed.RainRecords(opts.Now.Year())); err != nil {
		return err
	}
	if err := seedTable(db, log, "machines", &entities.Machine{}, seed.Machines()); err != nil {
		return err
	}
	return seedTable(db, log, "maintenance_records", &entities.MaintenanceRecord{}, seed.Maintenance())
}

func seedTable[T any](db *gorm.DB, log zerolog.Logger, table string, model *T, rows []T) error {
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		return fmt.Errorf("count %s: %w", table, err)
	}
	if n > 0 || len(rows) == 0 {
		return nil
	}
	// rows colliding on a key are dropped instead of failing the batch
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("seed %s: %w", table, res.Error)
	}
	if int(res.RowsAffected) < len(rows) {
		log.Warn().Str("table", table).Int("dropped", len(rows)-int(res.RowsAffected)).Msg("[seed] conflicting rows dropped")
	}
	log.Info().Str("table", table).Int64("rows", res.RowsAffected).Msg("[seed] inserted samples")
	return nil
}
