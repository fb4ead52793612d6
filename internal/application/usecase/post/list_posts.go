package post

import (
	"context"

	"github.com/khoahotran/devconnector/internal/domain/post"
	"github.com/khoahotran/devconnector/pkg/apperror"
	"github.com/khoahotran/devconnector/pkg/logger"
)

type ListPostsUseCase struct {
	postRepo post.Repository
	logger   logger.Logger
}

func NewListPostsUseCase(pRepo post.Repository, log logger.Logger) *ListPostsUseCase {
	return &ListPostsUseCase{
		postRepo: pRepo,
		logger:   log,
	}
}

func (uc *ListPostsUseCase) Execute(ctx context.Context) ([]*post.Post, error) {
	ctx, span := tracer.Start(ctx, "ListPosts")
	defer span.End()

	posts, err := uc.postRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list posts", err)
		return nil, apperror.NewInternal("failed to list posts", err)
	}
	return posts, nil
}
