package post

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/devconnector/internal/domain/post"
	"github.com/khoahotran/devconnector/pkg/apperror"
	"github.com/khoahotran/devconnector/pkg/logger"
)

// LikePostUseCase toggles the caller's like. Concurrent writers to the same
// post are last-write-wins.
type LikePostUseCase struct {
	postRepo post.Repository
	logger   logger.Logger
}

func NewLikePostUseCase(pRepo post.Repository, log logger.Logger) *LikePostUseCase {
	return &LikePostUseCase{
		postRepo: pRepo,
		logger:   log,
	}
}

type LikeInput struct {
	PostID uuid.UUID
	UserID uuid.UUID
}

func (uc *LikePostUseCase) Like(ctx context.Context, input LikeInput) ([]post.Like, error) {
	ctx, span := tracer.Start(ctx, "LikePost")
	defer span.End()

	p, err := findPost(ctx, uc.postRepo, uc.logger, input.PostID)
	if err != nil {
		return nil, err
	}
	if err := p.Like(input.UserID); err != nil {
		return nil, apperror.NewConflict(err.Error(), input.PostID.String())
	}
	if err := savePost(ctx, uc.postRepo, uc.logger, p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

func (uc *LikePostUseCase) Unlike(ctx context.Context, input LikeInput) ([]post.Like, error) {
	ctx, span := tracer.Start(ctx, "UnlikePost")
	defer span.End()

	p, err := findPost(ctx, uc.postRepo, uc.logger, input.PostID)
	if err != nil {
		return nil, err
	}
	if err := p.Unlike(input.UserID); err != nil {
		return nil, apperror.NewConflict(err.Error(), input.PostID.String())
	}
	if err := savePost(ctx, uc.postRepo, uc.logger, p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}
