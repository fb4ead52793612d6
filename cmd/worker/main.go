package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/khoahotran/devconnector/adapters/event"
	"github.com/khoahotran/devconnector/adapters/persistence"
	accountUC "github.com/khoahotran/devconnector/internal/application/usecase/account"
	"github.com/khoahotran/devconnector/internal/config"
	"github.com/khoahotran/devconnector/pkg/logger"
	"github.com/khoahotran/devconnector/pkg/tracing"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Starting devconnector Worker...", zap.Strings("brokers", cfg.Kafka.Brokers))

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "devconnector-worker")
	if err != nil {
		appLogger.Fatal("cannot init tracing", err)
	}
	defer tp.Shutdown(context.Background())

	// Database
	dbPool, err := persistence.NewPostgresPool(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Redis
	redisClient, err := persistence.NewRedisClient(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	// Worker Use Case
	purgeUseCase := accountUC.NewPurgeAccountContentUseCase(
		persistence.NewPostgresPostRepo(dbPool),
		persistence.NewRedisEventDeduplicator(redisClient),
		appLogger,
	)

	// Kafka Consumer
	consumer, err := event.NewAccountEventConsumer(cfg, purgeUseCase.Execute, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Kafka consumer", err)
	}
	defer consumer.Close()

	if err := consumer.Run(ctx); err != nil {
		appLogger.Error("Worker stopped", err)
	}
	appLogger.Info("Worker stopped")
}
