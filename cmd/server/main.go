package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/devconnector/adapters/event"
	"github.com/khoahotran/devconnector/adapters/persistence"
	"github.com/khoahotran/devconnector/adapters/persistence/memory"
	"github.com/khoahotran/devconnector/internal/app"
	"github.com/khoahotran/devconnector/internal/application/service"
	accountUC "github.com/khoahotran/devconnector/internal/application/usecase/account"
	"github.com/khoahotran/devconnector/internal/config"
	"github.com/khoahotran/devconnector/pkg/logger"
	"github.com/khoahotran/devconnector/pkg/tracing"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Start devconnector API Server...", zap.String("env", cfg.App.Env))

	if cfg.Auth.JWTSecret == "" {
		appLogger.Fatal("JWT secret is not configured", errors.New("auth.jwt_secret is empty"))
	}

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "devconnector-api")
	if err != nil {
		appLogger.Fatal("cannot init tracing", err)
	}
	defer tp.Shutdown(context.Background())

	// Repositories
	var repos app.Repositories
	switch cfg.DB.Driver {
	case config.DriverMemory:
		appLogger.Warn("Using in-memory storage, data is lost on restart")
		repos = app.NewMemoryRepositories()
	default:
		dbPool, err := persistence.NewPostgresPool(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Postgres", err)
		}
		defer dbPool.Close()

		if err := persistence.Migrate(ctx, dbPool, appLogger); err != nil {
			appLogger.Fatal("cannot migrate database", err)
		}
		repos = app.NewPostgresRepositories(dbPool)
	}

	// Events
	var publisher service.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	} else {
		appLogger.Warn("Kafka brokers not configured, purging account content in process")
		purge := accountUC.NewPurgeAccountContentUseCase(repos.Posts, memory.NewDeduplicator(), appLogger)
		publisher = event.NewLogPublisher(appLogger, purge.Execute)
	}

	router := app.NewRouter(cfg, repos, publisher, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
