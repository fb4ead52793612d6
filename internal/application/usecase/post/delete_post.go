package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/devconnector/internal/application/service"
	"github.com/khoahotran/devconnector/internal/domain/post"
	"github.com/khoahotran/devconnector/pkg/apperror"
	"github.com/khoahotran/devconnector/pkg/logger"
)

type DeletePostUseCase struct {
	postRepo  post.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewDeletePostUseCase(pRepo post.Repository, publisher service.EventPublisher, log logger.Logger) *DeletePostUseCase {
	return &DeletePostUseCase{
		postRepo:  pRepo,
		publisher: publisher,
		logger:    log,
	}
}

type DeletePostInput struct {
	PostID uuid.UUID
	UserID uuid.UUID
}

func (uc *DeletePostUseCase) Execute(ctx context.Context, input DeletePostInput) error {
	ctx, span := tracer.Start(ctx, "DeletePost")
	defer span.End()

	p, err := findPost(ctx, uc.postRepo, uc.logger, input.PostID)
	if err != nil {
		return err
	}
	if !p.IsAuthor(input.UserID) {
		return apperror.NewPermissionDenied("user not authorized", "only the author can delete a post")
	}

	if err := uc.postRepo.Delete(ctx, input.PostID); err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return apperror.NewNotFound("post not found", input.PostID.String())
		}
		uc.logger.Error("Failed to delete post", err, zap.String("post_id", input.PostID.String()))
		return apperror.NewInternal("failed to delete post", err)
	}

	go func() {
		err := uc.publisher.PublishPostEvent(context.Background(), service.PostEventPayload{
			EventID:    uuid.New(),
			EventType:  service.PostEventTypeDeleted,
			PostID:     input.PostID,
			UserID:     input.UserID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Error("Failed to publish 'post.deleted' event", err, zap.String("post_id", input.PostID.String()))
		}
	}()

	return nil
}
