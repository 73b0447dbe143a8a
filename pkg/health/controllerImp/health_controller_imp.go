package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropplan/entities"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Health pings the database and reports row counts of the main tables.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := check{OK: true}
	counts := map[string]int64{}
	switch {
	case h.db == nil:
		db = check{Err: "gorm db is nil"}
	default:
		sqlDB, err := h.db.DB()
		if err != nil {
			db = check{Err: "db.DB(): " + err.Error()}
			break
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			db = check{Err: "ping: " + err.Error()}
			break
		}
		for name, model := range map[string]any{
			"crop_plans":               &entities.CropPlan{},
			"history_records":          &entities.HistoryRecord{},
			"crop_simulation_profiles": &entities.CropSimulationProfile{},
			"rain_records":             &entities.RainRecord{},
			"machines":                 &entities.Machine{},
			"maintenance_records":      &entities.MaintenanceRecord{},
		} {
			var n int64
			if err := h.db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
				db = check{Err: "count " + name + ": " + err.Error()}
				break
			}
			counts[name] = n
		}
	}

	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": db.OK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     map[string]any{"database": db},
		"records":    counts,
		"time":       time.Now().Format(time.RFC3339),
	})
}
