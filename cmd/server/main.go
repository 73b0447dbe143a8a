package main

import (
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"cropplan/config"
	"cropplan/database"
	"cropplan/pkg/analytics"
	"cropplan/pkg/logging"
	"cropplan/pkg/middleware"
	"cropplan/pkg/seed"
	"cropplan/router"

	// Crop
	cropCtrlImp "cropplan/pkg/crop/controllerImp"
	cropRepoImp "cropplan/pkg/crop/repositoryImp"
	cropSvcImp "cropplan/pkg/crop/serviceImp"

	// History
	histCtrlImp "cropplan/pkg/history/controllerImp"
	histRepoImp "cropplan/pkg/history/repositoryImp"
	histSvcImp "cropplan/pkg/history/serviceImp"

	// Simulation
	simCtrlImp "cropplan/pkg/simulation/controllerImp"
	simRepoImp "cropplan/pkg/simulation/repositoryImp"
	simSvcImp "cropplan/pkg/simulation/serviceImp"

	// Plot
	plotCtrlImp "cropplan/pkg/plot/controllerImp"
	plotRepoImp "cropplan/pkg/plot/repositoryImp"
	plotSvcImp "cropplan/pkg/plot/serviceImp"

	// Rainfall
	rainCtrlImp "cropplan/pkg/rainfall/controllerImp"
	rainRepoImp "cropplan/pkg/rainfall/repositoryImp"
	rainSvcImp "cropplan/pkg/rainfall/serviceImp"

	// Machines
	machineCtrlImp "cropplan/pkg/machine/controllerImp"
	machineRepoImp "cropplan/pkg/machine/repositoryImp"
	machineSvcImp "cropplan/pkg/machine/serviceImp"

	// Health
	healthCtrlImp "cropplan/pkg/health/controllerImp"
)

func main() {
	// 1) Config; a bootstrap logger covers .env loading
	boot := logging.New(logging.DefaultLogConfig())
	cfg := config.Load(boot)

	lc := logging.DefaultLogConfig()
	lc.Level, lc.FilePath = cfg.LogLevel, cfg.LogFile
	log := logging.New(lc)
	zerolog.DefaultContextLogger = &log

	// 2) DB (sqlite) + migrations + samples
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("[db] open failed")
	}
	if cfg.SeedOnStart {
		if err := database.SeedIfEmpty(db, log, database.SeedOptions{
			ProfilesFile: cfg.SeedProfiles,
			HistoryFile:  cfg.SeedHistory,
		}); err != nil {
			log.Fatal().Err(err).Msg("[db] seed failed")
		}
	}

	// 3) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))

	// 4) Repos/Services/Controllers
	cycle := analytics.NewCycleCalculator(analytics.ParseOrdering(cfg.CycleOrdering))
	cropSvc := cropSvcImp.NewCropService(cropRepoImp.New(db), cycle, log)
	histSvc := histSvcImp.NewHistoryService(histRepoImp.New(db), log)
	simSvc := simSvcImp.NewSimulationService(simRepoImp.New(db), cfg.DefaultArea, log)
	plotSvc := plotSvcImp.NewPlotService(plotRepoImp.New(db), seed.Plots, log)
	rainSvc := rainSvcImp.NewRainfallService(rainRepoImp.New(db), cfg.Location(), nil, log)
	machineSvc := machineSvcImp.NewMachineService(machineRepoImp.New(db), nil, log)

	r := router.New(e, router.Controllers{
		Crop:       cropCtrlImp.New(cropSvc),
		History:    histCtrlImp.New(histSvc),
		Simulation: simCtrlImp.New(simSvc),
		Plot:       plotCtrlImp.New(plotSvc),
		Rainfall:   rainCtrlImp.New(rainSvc),
		Machine:    machineCtrlImp.New(machineSvc),
		Health:     healthCtrlImp.NewHealthCtrl(db),
	})

	// 5) Start
	log.Info().Str("port", cfg.Port).Str("ordering", string(cycle.Ordering)).Msg("listening")
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
