package post

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/devconnector/internal/application/service"
	"github.com/khoahotran/devconnector/internal/domain/post"
	"github.com/khoahotran/devconnector/internal/domain/user"
	"github.com/khoahotran/devconnector/pkg/apperror"
	"github.com/khoahotran/devconnector/pkg/logger"
)

var tracer = otel.Tracer("post_usecase")

type CreatePostUseCase struct {
	postRepo  post.Repository
	userRepo  user.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewCreatePostUseCase(pRepo post.Repository, uRepo user.Repository, publisher service.EventPublisher, log logger.Logger) *CreatePostUseCase {
	return &CreatePostUseCase{
		postRepo:  pRepo,
		userRepo:  uRepo,
		publisher: publisher,
		logger:    log,
	}
}

type CreatePostInput struct {
	UserID uuid.UUID
	Text   string
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, input CreatePostInput) (*post.Post, error) {
	ctx, span := tracer.Start(ctx, "CreatePost")
	defer span.End()

	if strings.TrimSpace(input.Text) == "" {
		return nil, apperror.NewValidation(apperror.FieldError{Param: "text", Msg: "text is needed"})
	}

	author, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewNotFound("user not found", input.UserID.String())
		}
		uc.logger.Error("Failed to load post author", err, zap.String("user_id", input.UserID.String()))
		return nil, apperror.NewInternal("failed to load author", err)
	}

	newPost := post.New(author.ID, input.Text, author.Name, author.Avatar, time.Now().UTC())

	if err := uc.postRepo.Save(ctx, newPost); err != nil {
		uc.logger.Error("Failed to save post", err, zap.String("user_id", input.UserID.String()))
		return nil, apperror.NewInternal("failed to save post", err)
	}

	go func() {
		err := uc.publisher.PublishPostEvent(context.Background(), service.PostEventPayload{
			EventID:    uuid.New(),
			EventType:  service.PostEventTypeCreated,
			PostID:     newPost.ID,
			UserID:     newPost.UserID,
			OccurredAt: newPost.CreatedAt,
		})
		if err != nil {
			uc.logger.Error("Failed to publish 'post.created' event", err, zap.String("post_id", newPost.ID.String()))
		}
	}()

	return newPost, nil
}
