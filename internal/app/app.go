package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	internalhttp "appliance-analytics/internal/http"
	"appliance-analytics/internal/rollups"
	"appliance-analytics/internal/schedulers"
	"appliance-analytics/internal/shared/configs"
	"appliance-analytics/internal/shared/loggers"
	"appliance-analytics/internal/stores"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	redisClient *redis.Client
	pgPool      *pgxpool.Pool

	cronScheduler schedulers.CronScheduler
	dailyTrigger  *schedulers.DailyTrigger
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "appliance-analytics").
		Logger()

	// Counter snapshot cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})

	// Durable rollup store
	pgPool, err := pgxpool.New(context.Background(), config.Postgres.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres pool: %w", err)
	}

	snapshotStore := stores.NewSnapshotStore(redisClient, config.Rollup.SnapshotTTLDays)
	rollupStore := stores.NewRollupStore(pgPool)
	deviceStore := stores.NewDeviceStore(pgPool)

	// Rollup engine
	rollupDeriver := rollups.NewRollupDeriver()
	rollupService := rollups.NewRollupService(rollupDeriver, snapshotStore, rollupStore)

	// Batch scheduler and daily trigger
	schedulerLogger := appLogger.With().Str(loggers.FieldComponent, "scheduler").Logger()
	batchRunner := schedulers.NewBatchRunner(
		deviceStore,
		rollupStore,
		rollupService,
		config.Rollup.RetentionDays,
		config.Rollup.Workers,
		schedulerLogger,
	)
	cronScheduler := schedulers.NewCronScheduler()
	dailyTrigger := schedulers.NewDailyTrigger(cronScheduler, batchRunner, schedulerLogger)

	// Operator/dashboard HTTP surface
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(batchRunner, rollupStore, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		server:        server,
		redisClient:   redisClient,
		pgPool:        pgPool,
		cronScheduler: cronScheduler,
		dailyTrigger:  dailyTrigger,
	}, nil
}

// Start registers the daily rollup trigger and starts the HTTP server in a
// blocking manner. A trigger registration failure aborts startup: a silently
// unregistered rollup job is worse than a crashed process.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting appliance-analytics service on port %d (log_level=%s, retention_days=%d, workers=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Rollup.RetentionDays,
			app.config.Rollup.Workers)

	if err := app.dailyTrigger.Start(); err != nil {
		return fmt.Errorf("failed to start daily rollup trigger: %w", err)
	}

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown HTTP server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Stop the trigger; an in-flight run is not interrupted
	app.dailyTrigger.Stop()
	app.cronScheduler.Stop()
	app.appLogger.Info().Msg("Daily rollup trigger stopped")

	// 3) Close store clients
	app.pgPool.Close()
	if err := app.redisClient.Close(); err != nil {
		return fmt.Errorf("redis client close failed: %w", err)
	}
	app.appLogger.Info().Msg("Store clients closed")

	return nil
}
