package post

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/devconnector/internal/domain/post"
	"github.com/khoahotran/devconnector/internal/domain/user"
	"github.com/khoahotran/devconnector/pkg/apperror"
	"github.com/khoahotran/devconnector/pkg/logger"
)

type CommentUseCase struct {
	postRepo post.Repository
	userRepo user.Repository
	logger   logger.Logger
}

func NewCommentUseCase(pRepo post.Repository, uRepo user.Repository, log logger.Logger) *CommentUseCase {
	return &CommentUseCase{
		postRepo: pRepo,
		userRepo: uRepo,
		logger:   log,
	}
}

type AddCommentInput struct {
	PostID uuid.UUID
	UserID uuid.UUID
	Text   string
}

func (uc *CommentUseCase) Add(ctx context.Context, input AddCommentInput) ([]post.Comment, error) {
	ctx, span := tracer.Start(ctx, "AddComment")
	defer span.End()

	if strings.TrimSpace(input.Text) == "" {
		return nil, apperror.NewValidation(apperror.FieldError{Param: "text", Msg: "text is needed"})
	}

	author, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewNotFound("user not found", input.UserID.String())
		}
		uc.logger.Error("Failed to load comment author", err, zap.String("user_id", input.UserID.String()))
		return nil, apperror.NewInternal("failed to load author", err)
	}

	p, err := findPost(ctx, uc.postRepo, uc.logger, input.PostID)
	if err != nil {
		return nil, err
	}
	p.AddComment(author.ID, input.Text, author.Name, author.Avatar, time.Now().UTC())

	if err := savePost(ctx, uc.postRepo, uc.logger, p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

type DeleteCommentInput struct {
	PostID    uuid.UUID
	CommentID uuid.UUID
	UserID    uuid.UUID
}

func (uc *CommentUseCase) Delete(ctx context.Context, input DeleteCommentInput) ([]post.Comment, error) {
	ctx, span := tracer.Start(ctx, "DeleteComment")
	defer span.End()

	p, err := findPost(ctx, uc.postRepo, uc.logger, input.PostID)
	if err != nil {
		return nil, err
	}

	switch err := p.RemoveComment(input.CommentID, input.UserID); {
	case errors.Is(err, post.ErrCommentNotFound):
		return nil, apperror.NewNotFound(err.Error(), input.CommentID.String())
	case errors.Is(err, post.ErrNotCommentAuthor):
		return nil, apperror.NewPermissionDenied(err.Error(), "only the comment author can delete it")
	case err != nil:
		return nil, apperror.NewInternal("failed to remove comment", err)
	}

	if err := savePost(ctx, uc.postRepo, uc.logger, p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}
