package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/devconnector/adapters/event"
	"github.com/khoahotran/devconnector/internal/app"
	"github.com/khoahotran/devconnector/internal/client/api"
	"github.com/khoahotran/devconnector/internal/config"
	"github.com/khoahotran/devconnector/pkg/logger"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var cfg config.Config
	cfg.Auth.JWTSecret = "client-secret"
	cfg.Auth.TokenLifespan = time.Hour
	cfg.Auth.Header = api.DefaultAuthHeader

	log := logger.NewNopLogger()
	srv := httptest.NewServer(app.NewRouter(cfg, app.NewMemoryRepositories(), event.NewLogPublisher(log), log))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_PostFlow(t *testing.T) {
	ctx := context.Background()
	c := api.New(newServer(t).URL)

	token, err := c.Register(ctx, "A", "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, err = c.Posts(ctx)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "no token", apiErr.Msg)

	c.SetToken(token)
	me, err := c.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", me.Email)

	p, err := c.CreatePost(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", p.Text)
	assert.Empty(t, p.Likes)

	likes, err := c.Like(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 1)

	_, err = c.Like(ctx, p.ID)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "post already liked", apiErr.Msg)

	comments, err := c.AddComment(ctx, p.ID, "nice")
	require.NoError(t, err)
	require.Len(t, comments, 1)

	comments, err = c.DeleteComment(ctx, p.ID, comments[0].ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	posts, err := c.Posts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	require.NoError(t, c.DeletePost(ctx, p.ID))
	_, err = c.Post(ctx, p.ID)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestClient_ValidationMessages(t *testing.T) {
	c := api.New(newServer(t).URL)

	_, err := c.Register(context.Background(), "", "bad", "1")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"Name is required", "need valid email", "min length 6"}, apiErr.Messages())
}

func TestClient_ProfileFlow(t *testing.T) {
	ctx := context.Background()
	c := api.New(newServer(t).URL)

	token, err := c.Register(ctx, "Dev", "dev@x.com", "secret1")
	require.NoError(t, err)
	c.SetToken(token)

	company, twitter := "Acme", "@dev"
	prof, err := c.UpsertProfile(ctx, api.ProfileForm{Status: "Developer", Skills: "go, sql", Company: &company, Twitter: &twitter})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql"}, prof.Skills)
	assert.Equal(t, "@dev", prof.Social.Twitter)
	assert.Equal(t, "Dev", prof.User.Name)

	prof, err = c.AddExperience(ctx, api.ExperienceForm{Title: "Dev", Company: "Acme", From: "2019-05-01"})
	require.NoError(t, err)
	require.Len(t, prof.Experience, 1)

	prof, err = c.AddEducation(ctx, api.EducationForm{School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2015-09-01"})
	require.NoError(t, err)
	require.Len(t, prof.Education, 1)

	prof, err = c.DeleteEducation(ctx, prof.Education[0].ID)
	require.NoError(t, err)
	assert.Empty(t, prof.Education)

	prof, err = c.DeleteExperience(ctx, prof.Experience[0].ID)
	require.NoError(t, err)
	assert.Empty(t, prof.Experience)

	all, err := c.Profiles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	byUser, err := c.ProfileByUser(ctx, all[0].User.ID)
	require.NoError(t, err)
	assert.Equal(t, prof.ID, byUser.ID)

	require.NoError(t, c.DeleteAccount(ctx))
	_, err = c.MyProfile(ctx)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestClient_CustomHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok", r.Header.Get("X-Auth"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","name":"A","email":"a@x.com"}`))
	}))
	defer srv.Close()

	c := api.New(srv.URL, api.WithAuthHeader("X-Auth"))
	c.SetToken("tok")
	u, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A", u.Name)
}
