package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/khoahotran/devconnector/internal/domain/account"
	"github.com/khoahotran/devconnector/internal/domain/post"
	"github.com/khoahotran/devconnector/internal/domain/profile"
	"github.com/khoahotran/devconnector/internal/domain/user"
	"github.com/khoahotran/devconnector/pkg/logger"
)

type PostgresIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	userRepo    user.Repository
	profileRepo profile.Repository
	postRepo    post.Repository
	accountRepo account.Remover
}

func (s *PostgresIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	if err := Migrate(ctx, pool, logger.NewNopLogger()); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	s.userRepo = NewPostgresUserRepo(pool)
	s.profileRepo = NewPostgresProfileRepo(pool)
	s.postRepo = NewPostgresPostRepo(pool)
	s.accountRepo = NewPostgresAccountRepo(pool)
}

func (s *PostgresIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestPostgresIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(PostgresIntegrationTestSuite))
}

func (s *PostgresIntegrationTestSuite) seedUser(email string) *user.User {
	u := &user.User{
		ID:           uuid.New(),
		Name:         "Tester",
		Email:        email,
		PasswordHash: "hashedpassword",
		Avatar:       "//www.gravatar.com/avatar/x",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
	s.Require().NoError(s.userRepo.Create(context.Background(), u))
	return u
}

func (s *PostgresIntegrationTestSuite) Test_User_DuplicateEmail() {
	ctx := context.Background()
	u := s.seedUser("dup@example.com")

	found, err := s.userRepo.FindByEmail(ctx, "dup@example.com")
	s.NoError(err)
	s.Equal(u.ID, found.ID)

	again := *u
	again.ID = uuid.New()
	s.ErrorIs(s.userRepo.Create(ctx, &again), user.ErrEmailTaken)

	_, err = s.userRepo.FindByID(ctx, uuid.New())
	s.ErrorIs(err, user.ErrUserNotFound)
}

func (s *PostgresIntegrationTestSuite) Test_Profile_UpsertKeepsOnePerUser() {
	ctx := context.Background()
	u := s.seedUser("profile@example.com")
	now := time.Now().UTC()

	first := profile.New(u.ID, now)
	first.Apply(profile.Fields{Status: "Developer", Skills: []string{"go"}}, now)
	first.AddExperience(profile.Experience{Title: "Dev", Company: "Acme", From: now})
	s.NoError(s.profileRepo.Upsert(ctx, first))

	second := profile.New(u.ID, now)
	second.Apply(profile.Fields{Status: "Senior Developer", Skills: []string{"go", "sql"}}, now)
	s.NoError(s.profileRepo.Upsert(ctx, second))
	s.Equal(first.ID, second.ID)

	got, err := s.profileRepo.GetByUserID(ctx, u.ID)
	s.NoError(err)
	s.Equal("Senior Developer", got.Status)
	s.Equal([]string{"go", "sql"}, got.Skills)

	all, err := s.profileRepo.List(ctx)
	s.NoError(err)
	count := 0
	for _, p := range all {
		if p.UserID == u.ID {
			count++
		}
	}
	s.Equal(1, count)
}

func (s *PostgresIntegrationTestSuite) Test_Post_ThreadRoundTrip() {
	ctx := context.Background()
	u := s.seedUser("post@example.com")

	older := post.New(u.ID, "first", u.Name, u.Avatar, time.Now().UTC().Add(-time.Minute))
	newer := post.New(u.ID, "second", u.Name, u.Avatar, time.Now().UTC())
	s.NoError(s.postRepo.Save(ctx, older))
	s.NoError(s.postRepo.Save(ctx, newer))

	s.NoError(newer.Like(u.ID))
	newer.AddComment(u.ID, "nice", u.Name, u.Avatar, time.Now().UTC())
	s.NoError(s.postRepo.Update(ctx, newer))

	got, err := s.postRepo.FindByID(ctx, newer.ID)
	s.NoError(err)
	s.Len(got.Likes, 1)
	s.Len(got.Comments, 1)
	s.Equal("nice", got.Comments[0].Text)

	list, err := s.postRepo.List(ctx)
	s.NoError(err)
	s.GreaterOrEqual(len(list), 2)
	s.Equal(newer.ID, list[0].ID)

	n, err := s.postRepo.DeleteByUserID(ctx, u.ID)
	s.NoError(err)
	s.EqualValues(2, n)

	s.ErrorIs(s.postRepo.Delete(ctx, newer.ID), post.ErrPostNotFound)
}

func (s *PostgresIntegrationTestSuite) Test_Account_DeleteRemovesProfileAndUser() {
	ctx := context.Background()
	u := s.seedUser("gone@example.com")
	now := time.Now().UTC()
	p := profile.New(u.ID, now)
	p.Apply(profile.Fields{Status: "Student", Skills: []string{"c"}}, now)
	s.NoError(s.profileRepo.Upsert(ctx, p))

	s.NoError(s.accountRepo.DeleteAccount(ctx, u.ID))

	_, err := s.userRepo.FindByID(ctx, u.ID)
	s.ErrorIs(err, user.ErrUserNotFound)
	_, err = s.profileRepo.GetByUserID(ctx, u.ID)
	s.ErrorIs(err, profile.ErrProfileNotFound)
}
