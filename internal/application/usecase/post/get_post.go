package post

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/devconnector/internal/domain/post"
	"github.com/khoahotran/devconnector/pkg/apperror"
	"github.com/khoahotran/devconnector/pkg/logger"
)

type GetPostUseCase struct {
	postRepo post.Repository
	logger   logger.Logger
}

func NewGetPostUseCase(pRepo post.Repository, log logger.Logger) *GetPostUseCase {
	return &GetPostUseCase{
		postRepo: pRepo,
		logger:   log,
	}
}

func (uc *GetPostUseCase) Execute(ctx context.Context, postID uuid.UUID) (*post.Post, error) {
	ctx, span := tracer.Start(ctx, "GetPost")
	defer span.End()

	return findPost(ctx, uc.postRepo, uc.logger, postID)
}

func findPost(ctx context.Context, repo post.Repository, log logger.Logger, postID uuid.UUID) (*post.Post, error) {
	p, err := repo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, apperror.NewNotFound("post not found", postID.String())
		}
		log.Error("Failed to load post", err, zap.String("post_id", postID.String()))
		return nil, apperror.NewInternal("failed to load post", err)
	}
	return p, nil
}

// savePost persists embedded list changes.
func savePost(ctx context.Context, repo post.Repository, log logger.Logger, p *post.Post) error {
	if err := repo.Update(ctx, p); err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return apperror.NewNotFound("post not found", p.ID.String())
		}
		log.Error("Failed to update post", err, zap.String("post_id", p.ID.String()))
		return apperror.NewInternal("failed to update post", err)
	}
	return nil
}
