package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/analytics"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/config"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/database"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/handler"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/middleware"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/repository"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	gin.SetMode(cfg.GinMode)

	provider, closeProvider := newProvider(cfg)
	defer closeProvider()

	engine := analytics.NewEngine(
		analytics.WithKPIWindow(cfg.KPIWindowDays),
		analytics.WithTransactionLimit(cfg.TransactionListLimit),
	)
	dashboardService := service.NewDashboardService(provider, engine)
	sessionService := service.NewSessionService(provider)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	handler.RegisterRoutes(router, dashboardService, sessionService, cfg.DataSource)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("base_path", handler.BasePath).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for running := true; running; {
		select {
		case <-reload:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if _, err := dashboardService.Reload(ctx); err != nil {
				log.Error().Err(err).Msg("snapshot reload failed, keeping previous snapshot")
			}
			cancel()
		case <-quit:
			running = false
		}
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

// newProvider wires the configured data source. For Postgres it connects,
// optionally migrates and seeds from the JSON file, and returns a closer
// for the pool.
func newProvider(cfg *config.Config) (repository.Provider, func()) {
	if cfg.DataSource == config.SourceFile {
		log.Info().Str("path", cfg.DataPath).Msg("serving snapshot from file")
		return repository.NewFileRepository(cfg.DataPath), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if cfg.AutoMigrate {
		migrateAndSeed(cfg, pool)
	}
	return repository.NewPostgresRepository(pool), pool.Close
}

func migrateAndSeed(cfg *config.Config, pool *pgxpool.Pool) {
	database.MigrationsDir = cfg.MigrationsDir
	if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	seed, err := repository.NewFileRepository(cfg.DataPath).Snapshot(context.Background())
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.DataPath).Msg("no seed snapshot, skipping seed")
		return
	}
	if err := database.SeedSnapshot(context.Background(), pool, seed); err != nil {
		log.Fatal().Err(err).Msg("failed to seed data")
	}
}
