package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/devconnector/adapters/persistence/memory"
	"github.com/khoahotran/devconnector/internal/application/service"
	"github.com/khoahotran/devconnector/internal/domain/post"
	"github.com/khoahotran/devconnector/internal/domain/profile"
	"github.com/khoahotran/devconnector/internal/domain/user"
	"github.com/khoahotran/devconnector/pkg/logger"
)

type capturePublisher struct {
	accounts []service.AccountEventPayload
	err      error
}

func (p *capturePublisher) PublishAccountEvent(_ context.Context, payload service.AccountEventPayload) error {
	p.accounts = append(p.accounts, payload)
	return p.err
}

func (p *capturePublisher) PublishPostEvent(context.Context, service.PostEventPayload) error {
	return nil
}

type failingPosts struct {
	post.Repository
}

func (failingPosts) DeleteByUserID(context.Context, uuid.UUID) (int64, error) {
	return 0, errors.New("connection reset")
}

type AccountUseCaseTestSuite struct {
	suite.Suite
	store     *memory.Store
	publisher *capturePublisher
	dedup     *memory.Deduplicator
	user      *user.User
}

func (s *AccountUseCaseTestSuite) SetupTest() {
	ctx := context.Background()
	s.store = memory.NewStore()
	s.publisher = &capturePublisher{}
	s.dedup = memory.NewDeduplicator()

	s.user = &user.User{ID: uuid.New(), Name: "Gone", Email: "gone@x.com"}
	s.Require().NoError(s.store.Users().Create(ctx, s.user))

	now := time.Now()
	p := profile.New(s.user.ID, now)
	p.Apply(profile.Fields{Status: "Dev", Skills: []string{"go"}}, now)
	s.Require().NoError(s.store.Profiles().Upsert(ctx, p))

	s.Require().NoError(s.store.Posts().Save(ctx, post.New(s.user.ID, "bye", s.user.Name, "", now)))
	s.Require().NoError(s.store.Posts().Save(ctx, post.New(uuid.New(), "stay", "Other", "", now)))
}

func TestAccountUseCase(t *testing.T) {
	suite.Run(t, new(AccountUseCaseTestSuite))
}

func (s *AccountUseCaseTestSuite) Test_DeleteAccount_RemovesUserAndProfile() {
	ctx := context.Background()
	uc := NewDeleteAccountUseCase(s.store.Accounts(), s.publisher, logger.NewNopLogger())

	s.Require().NoError(uc.Execute(ctx, s.user.ID))

	_, err := s.store.Users().FindByID(ctx, s.user.ID)
	s.ErrorIs(err, user.ErrUserNotFound)
	_, err = s.store.Profiles().GetByUserID(ctx, s.user.ID)
	s.ErrorIs(err, profile.ErrProfileNotFound)

	s.Require().Len(s.publisher.accounts, 1)
	s.Equal(service.AccountEventTypeDeleted, s.publisher.accounts[0].EventType)
	s.Equal(s.user.ID, s.publisher.accounts[0].UserID)
}

func (s *AccountUseCaseTestSuite) Test_DeleteAccount_PublishFailureIsNotFatal() {
	s.publisher.err = errors.New("broker down")
	uc := NewDeleteAccountUseCase(s.store.Accounts(), s.publisher, logger.NewNopLogger())

	s.NoError(uc.Execute(context.Background(), s.user.ID))
}

func (s *AccountUseCaseTestSuite) Test_Purge_DeletesOnlyAuthorPostsOnce() {
	ctx := context.Background()
	uc := NewPurgeAccountContentUseCase(s.store.Posts(), s.dedup, logger.NewNopLogger())
	event := service.AccountEventPayload{EventID: uuid.New(), EventType: service.AccountEventTypeDeleted, UserID: s.user.ID}

	s.Require().NoError(uc.Execute(ctx, event))
	posts, err := s.store.Posts().List(ctx)
	s.Require().NoError(err)
	s.Require().Len(posts, 1)
	s.Equal("stay", posts[0].Text)

	// redelivery is a no-op
	s.Require().NoError(s.store.Posts().Save(ctx, post.New(s.user.ID, "late", s.user.Name, "", time.Now())))
	s.Require().NoError(uc.Execute(ctx, event))
	posts, err = s.store.Posts().List(ctx)
	s.Require().NoError(err)
	s.Len(posts, 2)
}

func (s *AccountUseCaseTestSuite) Test_Purge_FailureReleasesMarker() {
	ctx := context.Background()
	event := service.AccountEventPayload{EventID: uuid.New(), EventType: service.AccountEventTypeDeleted, UserID: s.user.ID}

	failing := NewPurgeAccountContentUseCase(failingPosts{s.store.Posts()}, s.dedup, logger.NewNopLogger())
	s.Error(failing.Execute(ctx, event))

	first, err := s.dedup.MarkProcessed(ctx, event.EventID)
	s.Require().NoError(err)
	s.True(first)
}
