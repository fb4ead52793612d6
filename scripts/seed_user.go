package main

import (
	"context"
	"errors"
	"os"

	"go.uber.org/zap"

	"github.com/khoahotran/devconnector/adapters/persistence"
	authUC "github.com/khoahotran/devconnector/internal/application/usecase/auth"
	"github.com/khoahotran/devconnector/internal/config"
	"github.com/khoahotran/devconnector/pkg/apperror"
	"github.com/khoahotran/devconnector/pkg/auth"
	"github.com/khoahotran/devconnector/pkg/logger"
)

// Registers a demo account from SEED_NAME, SEED_EMAIL and SEED_PASSWORD.
func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}
	log := logger.NewZapLogger(cfg.App.Env)
	defer log.Sync()

	pool, err := persistence.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal("cannot connect DB", err)
	}
	defer pool.Close()

	if err := persistence.Migrate(ctx, pool, log); err != nil {
		log.Fatal("cannot migrate DB", err)
	}

	register := authUC.NewRegisterUseCase(
		persistence.NewPostgresUserRepo(pool),
		auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan),
		log,
	)

	email := os.Getenv("SEED_EMAIL")
	out, err := register.Execute(ctx, authUC.RegisterInput{
		Name:     os.Getenv("SEED_NAME"),
		Email:    email,
		Password: os.Getenv("SEED_PASSWORD"),
	})
	if errors.Is(err, apperror.ErrConflict) {
		log.Info("seed user already exists", zap.String("email", email))
		return
	}
	if err != nil {
		log.Fatal("cannot add user", err)
	}

	log.Info("seed user added", zap.String("email", email), zap.String("user_id", out.UserID.String()))
}
