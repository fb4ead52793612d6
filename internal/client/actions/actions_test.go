package actions_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/devconnector/adapters/event"
	"github.com/khoahotran/devconnector/internal/app"
	"github.com/khoahotran/devconnector/internal/client/actions"
	"github.com/khoahotran/devconnector/internal/client/api"
	"github.com/khoahotran/devconnector/internal/client/nav"
	"github.com/khoahotran/devconnector/internal/client/state"
	"github.com/khoahotran/devconnector/internal/config"
	"github.com/khoahotran/devconnector/pkg/logger"
)

type ActionsTestSuite struct {
	suite.Suite
	srv     *httptest.Server
	client  *api.Client
	store   *state.Store
	creator *actions.Creators
	ctx     context.Context
}

func TestActionsSuite(t *testing.T) {
	suite.Run(t, new(ActionsTestSuite))
}

func (s *ActionsTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	var cfg config.Config
	cfg.Auth.JWTSecret = "actions-secret"
	cfg.Auth.TokenLifespan = time.Hour
	cfg.Auth.Header = api.DefaultAuthHeader

	log := logger.NewNopLogger()
	s.srv = httptest.NewServer(app.NewRouter(cfg, app.NewMemoryRepositories(), event.NewLogPublisher(log), log))

	s.ctx = context.Background()
	s.client = api.New(s.srv.URL)
	s.store = state.NewStore(state.Initial(""))
	s.creator = actions.NewCreators(s.client, s.store, state.NewAlerter(s.store))
}

func (s *ActionsTestSuite) TearDownTest() {
	s.srv.Close()
}

func (s *ActionsTestSuite) alertMsgs() []string {
	var msgs []string
	for _, a := range s.store.GetState().Alerts {
		msgs = append(msgs, a.Msg)
	}
	return msgs
}

func (s *ActionsTestSuite) Test_RegisterLoadsUser() {
	s.Require().NoError(s.creator.Register(s.ctx, "Ann", "ann@x.com", "secret1"))

	st := s.store.GetState()
	s.True(st.Auth.IsAuthenticated)
	s.False(st.Auth.Loading)
	s.NotEmpty(st.Auth.Token)
	s.Equal(st.Auth.Token, s.client.Token())
	s.Require().NotNil(st.Auth.User)
	s.Equal("ann@x.com", st.Auth.User.Email)
}

func (s *ActionsTestSuite) Test_RegisterFailurePushesAlerts() {
	err := s.creator.Register(s.ctx, "", "bad", "1")
	s.Require().Error(err)

	st := s.store.GetState()
	s.False(st.Auth.IsAuthenticated)
	s.Equal([]string{"Name is required", "need valid email", "min length 6"}, s.alertMsgs())
	for _, a := range st.Alerts {
		s.Equal(state.AlertDanger, a.Type)
	}
}

func (s *ActionsTestSuite) Test_LoginAndLogout() {
	s.Require().NoError(s.creator.Register(s.ctx, "Ann", "ann@x.com", "secret1"))
	s.creator.Logout()
	s.False(s.store.GetState().Auth.IsAuthenticated)
	s.Empty(s.client.Token())

	s.Require().Error(s.creator.Login(s.ctx, "ann@x.com", "wrong-password"))
	s.False(s.store.GetState().Auth.IsAuthenticated)
	s.Len(s.alertMsgs(), 1)

	s.Require().NoError(s.creator.Login(s.ctx, "ann@x.com", "secret1"))
	st := s.store.GetState()
	s.True(st.Auth.IsAuthenticated)
	s.Require().NotNil(st.Auth.User)
	s.Equal("Ann", st.Auth.User.Name)
}

func (s *ActionsTestSuite) Test_LoadUserWithoutToken() {
	s.Require().Error(s.creator.LoadUser(s.ctx))

	st := s.store.GetState()
	s.False(st.Auth.IsAuthenticated)
	s.False(st.Auth.Loading)
	s.Nil(st.Auth.User)
}

func (s *ActionsTestSuite) Test_ProfileFlow() {
	s.Require().NoError(s.creator.Register(s.ctx, "Dev", "dev@x.com", "secret1"))

	s.Require().Error(s.creator.GetCurrentProfile(s.ctx))
	st := s.store.GetState()
	s.Require().NotNil(st.Profile.Error)
	s.Equal(http.StatusNotFound, st.Profile.Error.Status)
	s.Empty(st.Alerts)

	next, err := s.creator.CreateProfile(s.ctx, api.ProfileForm{Status: "Developer", Skills: "go, sql"}, false)
	s.Require().NoError(err)
	s.Equal(nav.Navigate{To: nav.RouteDashboard}, next)
	s.Require().NotNil(s.store.GetState().Profile.Profile)
	s.Equal([]string{"go", "sql"}, s.store.GetState().Profile.Profile.Skills)

	next, err = s.creator.CreateProfile(s.ctx, api.ProfileForm{Status: "Lead", Skills: "go"}, true)
	s.Require().NoError(err)
	s.Equal(nav.NoAction{}, next)
	s.Equal("Lead", s.store.GetState().Profile.Profile.Status)

	next, err = s.creator.AddExperience(s.ctx, api.ExperienceForm{Title: "Dev", Company: "Acme", From: "2020-01-01"})
	s.Require().NoError(err)
	s.Equal(nav.Navigate{To: nav.RouteDashboard}, next)
	exp := s.store.GetState().Profile.Profile.Experience
	s.Require().Len(exp, 1)

	s.Require().NoError(s.creator.DeleteExperience(s.ctx, exp[0].ID))
	s.Empty(s.store.GetState().Profile.Profile.Experience)

	_, err = s.creator.AddEducation(s.ctx, api.EducationForm{School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2015-09-01"})
	s.Require().NoError(err)
	edu := s.store.GetState().Profile.Profile.Education
	s.Require().Len(edu, 1)
	s.Require().NoError(s.creator.DeleteEducation(s.ctx, edu[0].ID))

	s.Equal([]string{
		"profile created", "profile updated",
		"experience added", "experience deleted",
		"education added", "education deleted",
	}, s.alertMsgs())

	s.Require().NoError(s.creator.GetProfiles(s.ctx))
	st = s.store.GetState()
	s.Len(st.Profile.Profiles, 1)
	s.Nil(st.Profile.Profile)

	s.Require().NoError(s.creator.GetProfileByID(s.ctx, st.Profile.Profiles[0].User.ID))
	s.Require().NotNil(s.store.GetState().Profile.Profile)
}

func (s *ActionsTestSuite) Test_CreateProfileValidation() {
	s.Require().NoError(s.creator.Register(s.ctx, "Dev", "dev@x.com", "secret1"))

	next, err := s.creator.CreateProfile(s.ctx, api.ProfileForm{}, false)
	s.Require().Error(err)
	s.Equal(nav.NoAction{}, next)
	s.Equal([]string{"status is a must have", "you need skills"}, s.alertMsgs())

	st := s.store.GetState()
	s.Require().NotNil(st.Profile.Error)
	s.Equal(http.StatusBadRequest, st.Profile.Error.Status)
}

func (s *ActionsTestSuite) Test_DeleteAccount() {
	s.Require().NoError(s.creator.Register(s.ctx, "Dev", "dev@x.com", "secret1"))
	_, err := s.creator.CreateProfile(s.ctx, api.ProfileForm{Status: "Developer", Skills: "go"}, false)
	s.Require().NoError(err)

	s.Require().NoError(s.creator.DeleteAccount(s.ctx))

	st := s.store.GetState()
	s.False(st.Auth.IsAuthenticated)
	s.Nil(st.Profile.Profile)
	s.Empty(s.client.Token())
	s.Contains(s.alertMsgs(), "account deleted")

	s.Require().Error(s.creator.Login(s.ctx, "dev@x.com", "secret1"))
}
