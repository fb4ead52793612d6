package account

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/devconnector/internal/application/service"
	"github.com/khoahotran/devconnector/internal/domain/post"
	"github.com/khoahotran/devconnector/pkg/logger"
)

// PurgeAccountContentUseCase runs in the worker and deletes the posts of a
// removed account. Redelivered events are skipped.
type PurgeAccountContentUseCase struct {
	postRepo post.Repository
	dedup    service.EventDeduplicator
	logger   logger.Logger
}

func NewPurgeAccountContentUseCase(pRepo post.Repository, dedup service.EventDeduplicator, log logger.Logger) *PurgeAccountContentUseCase {
	return &PurgeAccountContentUseCase{
		postRepo: pRepo,
		dedup:    dedup,
		logger:   log,
	}
}

func (uc *PurgeAccountContentUseCase) Execute(ctx context.Context, payload service.AccountEventPayload) error {
	ctx, span := tracer.Start(ctx, "PurgeAccountContent")
	defer span.End()

	log := uc.logger.With(zap.String("event_id", payload.EventID.String()), zap.String("user_id", payload.UserID.String()))

	if payload.EventType != service.AccountEventTypeDeleted {
		log.Debug("Ignoring account event", zap.String("event_type", string(payload.EventType)))
		return nil
	}

	first, err := uc.dedup.MarkProcessed(ctx, payload.EventID)
	if err != nil {
		return fmt.Errorf("mark event processed failed: %w", err)
	}
	if !first {
		log.Info("Event already processed, skip.")
		return nil
	}

	removed, err := uc.postRepo.DeleteByUserID(ctx, payload.UserID)
	if err != nil {
		// let a redelivery retry the purge
		if forgetErr := uc.dedup.Forget(ctx, payload.EventID); forgetErr != nil {
			log.Error("Failed to release dedup marker", forgetErr)
		}
		return fmt.Errorf("delete posts of user %s failed: %w", payload.UserID, err)
	}

	log.Info("Purged posts of deleted account", zap.Int64("posts_removed", removed))
	return nil
}
