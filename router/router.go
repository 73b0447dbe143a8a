package router

import (
	"github.com/labstack/echo/v4"

	cropCtrl "cropplan/pkg/crop/controller"
	healthCtrl "cropplan/pkg/health/controller"
	historyCtrl "cropplan/pkg/history/controller"
	machineCtrl "cropplan/pkg/machine/controller"
	plotCtrl "cropplan/pkg/plot/controller"
	rainCtrl "cropplan/pkg/rainfall/controller"
	simCtrl "cropplan/pkg/simulation/controller"
)

type Controllers struct {
	Crop       cropCtrl.CropController
	History    historyCtrl.HistoryController
	Simulation simCtrl.SimulationController
	Plot       plotCtrl.PlotController
	Rainfall   rainCtrl.RainfallController
	Machine    machineCtrl.MachineController
	Health     healthCtrl.HealthController
}

func New(e *echo.Echo, h Controllers) *echo.Echo {
	e.GET("/health", h.Health.Health)

	api := e.Group("")

	api.POST("/crops", h.Crop.Create)
	api.GET("/crops", h.Crop.List)
	api.GET("/crops/summary", h.Crop.Summary)
	api.GET("/crops/:id", h.Crop.Get)
	api.PATCH("/crops/:id/dates", h.Crop.UpdateDates)
	api.PATCH("/crops/:id/status", h.Crop.UpdateStatus)
	api.DELETE("/crops/:id", h.Crop.Delete)
	api.POST("/cycle", h.Crop.Cycle)
	api.POST("/cycles/labels", h.Crop.CycleLabel)

	api.POST("/history", h.History.Create)
	api.GET("/history", h.History.List)
	api.GET("/history/stats", h.History.Stats)
	api.GET("/history/fields", h.History.Fields)

	sim := api.Group("/simulations")
	sim.GET("/profiles", h.Simulation.Profiles)
	sim.PUT("/profiles/:crop", h.Simulation.UpsertProfile)
	sim.GET("/compare", h.Simulation.Compare)
	sim.POST("/compare", h.Simulation.Compare)
	sim.GET("/:crop", h.Simulation.Simulate)

	api.GET("/plots", h.Plot.List)
	api.POST("/plots", h.Plot.Create)
	api.PUT("/plots/:id", h.Plot.Update)
	api.DELETE("/plots/:id", h.Plot.Delete)

	api.POST("/rainfall", h.Rainfall.Create)
	api.GET("/rainfall", h.Rainfall.List)
	api.GET("/rainfall/summary", h.Rainfall.Summary)
	api.GET("/rainfall/export", h.Rainfall.Export)

	api.GET("/machines", h.Machine.List)
	api.POST("/machines", h.Machine.Create)
	api.GET("/machines/summary", h.Machine.Summary)
	api.GET("/machines/:id", h.Machine.Get)
	api.PUT("/machines/:id", h.Machine.Update)
	api.POST("/machines/:id/image", h.Machine.UploadImage)
	api.POST("/machines/:id/activities", h.Machine.LogActivity)
	api.GET("/machines/:id/report", h.Machine.ExportReport)
	api.GET("/maintenance", h.Machine.Pending)
	api.POST("/maintenance", h.Machine.ScheduleMaintenance)
	return e
}
