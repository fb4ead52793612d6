package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/khoahotran/devconnector/internal/domain/user"
	"github.com/khoahotran/devconnector/pkg/apperror"
	"github.com/khoahotran/devconnector/pkg/logger"
)

type CurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Logger
}

func NewCurrentUserUseCase(repo user.Repository, log logger.Logger) *CurrentUserUseCase {
	return &CurrentUserUseCase{userRepo: repo, logger: log}
}

func (uc *CurrentUserUseCase) Execute(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewNotFound("user not found", userID.String())
		}
		uc.logger.Error("Failed to load current user", err)
		return nil, apperror.NewInternal("failed to load user", err)
	}
	return u, nil
}
