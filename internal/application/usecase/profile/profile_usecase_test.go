package profile

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/devconnector/adapters/persistence/memory"
	"github.com/khoahotran/devconnector/internal/domain/profile"
	"github.com/khoahotran/devconnector/internal/domain/user"
	"github.com/khoahotran/devconnector/pkg/apperror"
	"github.com/khoahotran/devconnector/pkg/logger"
)

type ProfileUseCaseTestSuite struct {
	suite.Suite
	uc    *ProfileUseCase
	owner *user.User
}

func (s *ProfileUseCaseTestSuite) SetupTest() {
	store := memory.NewStore()
	s.owner = &user.User{ID: uuid.New(), Name: "Dev", Email: "dev@x.com", Avatar: "//avatar", CreatedAt: time.Now()}
	s.Require().NoError(store.Users().Create(context.Background(), s.owner))
	s.uc = NewProfileUseCase(store.Profiles(), store.Users(), logger.NewNopLogger())
}

func TestProfileUseCase(t *testing.T) {
	suite.Run(t, new(ProfileUseCaseTestSuite))
}

func strPtr(v string) *string { return &v }

func (s *ProfileUseCaseTestSuite) Test_Upsert_OverwritesAndKeepsOne() {
	ctx := context.Background()

	first, err := s.uc.ExecuteUpsertProfile(ctx, UpsertProfileInput{
		UserID: s.owner.ID, Status: "Developer", Skills: "go,sql", Company: strPtr("Acme"),
	})
	s.Require().NoError(err)

	second, err := s.uc.ExecuteUpsertProfile(ctx, UpsertProfileInput{
		UserID: s.owner.ID, Status: "Manager", Skills: "people",
	})
	s.Require().NoError(err)
	s.Equal(first.Profile.ID, second.Profile.ID)
	s.Equal("Manager", second.Profile.Status)
	s.Equal("Acme", second.Profile.Company)
	s.Equal("Dev", second.Owner.Name)

	all, err := s.uc.ExecuteListProfiles(ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *ProfileUseCaseTestSuite) Test_Upsert_KeepsSocialLinksNotSent() {
	ctx := context.Background()

	_, err := s.uc.ExecuteUpsertProfile(ctx, UpsertProfileInput{
		UserID: s.owner.ID, Status: "dev", Skills: "go", Bio: strPtr("hi"),
		Social: profile.SocialLinks{Twitter: strPtr("tw"), YouTube: strPtr("yt")},
	})
	s.Require().NoError(err)

	second, err := s.uc.ExecuteUpsertProfile(ctx, UpsertProfileInput{UserID: s.owner.ID, Status: "lead", Skills: "go"})
	s.Require().NoError(err)
	s.Equal("hi", second.Profile.Bio)
	s.Equal("tw", second.Profile.Social.Twitter)
	s.Equal("yt", second.Profile.Social.YouTube)

	third, err := s.uc.ExecuteUpsertProfile(ctx, UpsertProfileInput{
		UserID: s.owner.ID, Status: "lead", Skills: "go",
		Social: profile.SocialLinks{YouTube: strPtr("")},
	})
	s.Require().NoError(err)
	s.Equal("tw", third.Profile.Social.Twitter)
	s.Empty(third.Profile.Social.YouTube)
}

func (s *ProfileUseCaseTestSuite) Test_Upsert_RequiresStatusAndSkills() {
	_, err := s.uc.ExecuteUpsertProfile(context.Background(), UpsertProfileInput{UserID: s.owner.ID, Skills: " , "})
	s.Require().ErrorIs(err, apperror.ErrInvalidInput)

	var appErr *apperror.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Len(appErr.Fields, 2)
	s.Equal("status is a must have", appErr.Message)
}

func (s *ProfileUseCaseTestSuite) Test_Experience_DeleteMiddleKeepsOrder() {
	ctx := context.Background()
	_, err := s.uc.ExecuteUpsertProfile(ctx, UpsertProfileInput{UserID: s.owner.ID, Status: "Dev", Skills: "go"})
	s.Require().NoError(err)

	var view *ProfileView
	for _, title := range []string{"one", "two", "three"} {
		view, err = s.uc.ExecuteAddExperience(ctx, AddExperienceInput{
			UserID: s.owner.ID, Title: title, Company: "Acme", From: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		s.Require().NoError(err)
	}
	s.Require().Len(view.Profile.Experience, 3)
	middle := view.Profile.Experience[1].ID

	view, err = s.uc.ExecuteDeleteExperience(ctx, DeleteEntryInput{UserID: s.owner.ID, EntryID: middle})
	s.Require().NoError(err)
	s.Require().Len(view.Profile.Experience, 2)
	s.Equal("three", view.Profile.Experience[0].Title)
	s.Equal("one", view.Profile.Experience[1].Title)

	_, err = s.uc.ExecuteDeleteExperience(ctx, DeleteEntryInput{UserID: s.owner.ID, EntryID: middle})
	s.ErrorIs(err, apperror.ErrNotFound)

	got, err := s.uc.ExecuteGetProfile(ctx, GetProfileInput{UserID: s.owner.ID})
	s.Require().NoError(err)
	s.Len(got.Profile.Experience, 2)
}

func (s *ProfileUseCaseTestSuite) Test_Education() {
	ctx := context.Background()
	in := AddEducationInput{
		UserID: s.owner.ID, School: "MIT", Degree: "BSc", FieldOfStudy: "CS",
		From: time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := s.uc.ExecuteAddEducation(ctx, in)
	s.ErrorIs(err, apperror.ErrNotFound)

	_, err = s.uc.ExecuteUpsertProfile(ctx, UpsertProfileInput{UserID: s.owner.ID, Status: "Dev", Skills: "go"})
	s.Require().NoError(err)

	view, err := s.uc.ExecuteAddEducation(ctx, in)
	s.Require().NoError(err)
	s.Require().Len(view.Profile.Education, 1)

	view, err = s.uc.ExecuteDeleteEducation(ctx, DeleteEntryInput{UserID: s.owner.ID, EntryID: view.Profile.Education[0].ID})
	s.Require().NoError(err)
	s.Empty(view.Profile.Education)

	_, err = s.uc.ExecuteAddEducation(ctx, AddEducationInput{UserID: s.owner.ID})
	s.ErrorIs(err, apperror.ErrInvalidInput)
}

func (s *ProfileUseCaseTestSuite) Test_GetByUserID_Missing() {
	_, err := s.uc.ExecuteGetByUserID(context.Background(), uuid.New())
	s.ErrorIs(err, apperror.ErrNotFound)
}
