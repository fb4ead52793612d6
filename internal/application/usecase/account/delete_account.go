package account

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/devconnector/internal/application/service"
	"github.com/khoahotran/devconnector/internal/domain/account"
	"github.com/khoahotran/devconnector/pkg/apperror"
	"github.com/khoahotran/devconnector/pkg/logger"
)

var tracer = otel.Tracer("account_usecase")

// DeleteAccountUseCase removes the profile and the user in one transaction,
// then announces the removal so the worker can purge the user's posts.
type DeleteAccountUseCase struct {
	remover   account.Remover
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewDeleteAccountUseCase(remover account.Remover, publisher service.EventPublisher, log logger.Logger) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		remover:   remover,
		publisher: publisher,
		logger:    log,
	}
}

func (uc *DeleteAccountUseCase) Execute(ctx context.Context, userID uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "DeleteAccount")
	defer span.End()

	if err := uc.remover.DeleteAccount(ctx, userID); err != nil {
		uc.logger.Error("Failed to delete account", err, zap.String("user_id", userID.String()))
		return apperror.NewInternal("failed to delete account", err)
	}

	// Published synchronously: a lost event leaves orphaned posts behind.
	err := uc.publisher.PublishAccountEvent(ctx, service.AccountEventPayload{
		EventID:    uuid.New(),
		EventType:  service.AccountEventTypeDeleted,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		uc.logger.Error("Failed to publish 'account.deleted' event", err, zap.String("user_id", userID.String()))
	}

	uc.logger.Info("Account deleted", zap.String("user_id", userID.String()))
	return nil
}
