package app

import (
	"context"

	"postbox/config"
	"postbox/internal/controllers"
	"postbox/internal/database"
	"postbox/internal/events"
	"postbox/internal/handlers/middleware"
	"postbox/internal/jobs"
	"postbox/internal/listview"
	"postbox/internal/logger"
	"postbox/internal/repositories"
	"postbox/internal/services"
	"postbox/internal/websockets"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Websocket  *websockets.Manager
	EventBus   *events.EventBus
	Config     config.Config

	// Services
	TransactionService *services.TransactionService
	SchedulerService   *services.SchedulerService
	StorageService     *services.StorageService

	// Repositories
	Repos repositories.Repository

	// Controllers
	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	eventBus := events.New(db.Cache.Events, config)

	repos := repositories.New(db)

	service, err := services.New(db, config)
	if err != nil {
		return &App{}, log.Err("failed to create services", err)
	}

	websocket, err := websockets.New(db, eventBus, config)
	if err != nil {
		return &App{}, log.Err("failed to create websocket manager", err)
	}

	middleware := middleware.New(db, eventBus, config)
	ctrls := controllers.New(service, repos, eventBus, config, db)

	if config.SchedulerEnabled {
		// Overdue scan runs at 2:00 AM UTC daily
		overdueScanJob := jobs.NewOverdueScanJob(
			repos,
			service.Transaction,
			listview.New(config.OverdueThresholdDays, config.ListPageSize),
			db,
			services.Daily,
		)
		if err := service.Scheduler.AddJob(overdueScanJob); err != nil {
			return &App{}, log.Err("failed to register overdue scan job", err)
		}
		log.Info("Registered overdue scan job with scheduler")
	}

	app := &App{
		Database:           db,
		Config:             config,
		Middleware:         middleware,
		TransactionService: service.Transaction,
		SchedulerService:   service.Scheduler,
		StorageService:     service.Storage,
		Repos:              repos,
		Controllers:        ctrls,
		Websocket:          websocket,
		EventBus:           eventBus,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Websocket,
		a.EventBus,
		a.TransactionService,
		a.SchedulerService,
		a.StorageService,
		a.Controllers.Mailbox,
		a.Controllers.Cleaning,
		a.Controllers.Dashboard,
		a.Repos.Mailbox,
		a.Repos.Cleaning,
		a.Repos.Snapshot,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.EventBus != nil {
		if closeErr := a.EventBus.Close(); closeErr != nil {
			err = closeErr
		}
	}

	if a.SchedulerService != nil {
		if closeErr := a.SchedulerService.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
