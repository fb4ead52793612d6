package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/devconnector/internal/domain/post"
	"github.com/khoahotran/devconnector/internal/domain/profile"
	"github.com/khoahotran/devconnector/internal/domain/user"
)

func TestUsers_EmailUnique(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	require.NoError(t, users.Create(ctx, &user.User{ID: uuid.New(), Email: "a@x.com"}))
	err := users.Create(ctx, &user.User{ID: uuid.New(), Email: "a@x.com"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestPosts_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	posts := NewStore().Posts()
	author := uuid.New()

	p := post.New(author, "hello", "A", "", time.Now())
	require.NoError(t, posts.Save(ctx, p))

	got, err := posts.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.NoError(t, got.Like(author))

	again, err := posts.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Likes)
}

func TestProfiles_EntryDatesAreCopies(t *testing.T) {
	ctx := context.Background()
	profiles := NewStore().Profiles()
	userID := uuid.New()
	from := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	p := profile.New(userID, time.Now())
	p.AddExperience(profile.Experience{Title: "Dev", Company: "Acme", From: from, To: &to})
	p.AddEducation(profile.Education{School: "MIT", From: from, To: &to})
	require.NoError(t, profiles.Upsert(ctx, p))

	to = to.AddDate(5, 0, 0)

	got, err := profiles.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, got.Experience[0].To)
	assert.Equal(t, 2020, got.Experience[0].To.Year())

	*got.Experience[0].To = got.Experience[0].To.AddDate(1, 0, 0)
	*got.Education[0].To = got.Education[0].To.AddDate(1, 0, 0)

	again, err := profiles.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2020, again.Experience[0].To.Year())
	assert.Equal(t, 2020, again.Education[0].To.Year())
}

func TestPosts_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	posts := NewStore().Posts()
	author := uuid.New()
	now := time.Now()

	older := post.New(author, "one", "A", "", now.Add(-time.Hour))
	newer := post.New(author, "two", "A", "", now)
	require.NoError(t, posts.Save(ctx, older))
	require.NoError(t, posts.Save(ctx, newer))

	list, err := posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)

	n, err := posts.DeleteByUserID(ctx, author)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestDeduplicator(t *testing.T) {
	ctx := context.Background()
	d := NewDeduplicator()
	id := uuid.New()

	first, _ := d.MarkProcessed(ctx, id)
	second, _ := d.MarkProcessed(ctx, id)
	assert.True(t, first)
	assert.False(t, second)

	require.NoError(t, d.Forget(ctx, id))
	third, _ := d.MarkProcessed(ctx, id)
	assert.True(t, third)
}
