// Package memory keeps users, profiles and posts in process memory. Every
// read and write copies the document so callers never share state with the
// store.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/devconnector/internal/domain/account"
	"github.com/khoahotran/devconnector/internal/domain/post"
	"github.com/khoahotran/devconnector/internal/domain/profile"
	"github.com/khoahotran/devconnector/internal/domain/user"
)

type Store struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]user.User
	profiles map[uuid.UUID]profile.Profile // keyed by owner
	posts    map[uuid.UUID]post.Post
}

func NewStore() *Store {
	return &Store{
		users:    make(map[uuid.UUID]user.User),
		profiles: make(map[uuid.UUID]profile.Profile),
		posts:    make(map[uuid.UUID]post.Post),
	}
}

func (s *Store) Users() user.Repository       { return userRepo{s} }
func (s *Store) Profiles() profile.Repository { return profileRepo{s} }
func (s *Store) Posts() post.Repository       { return postRepo{s} }
func (s *Store) Accounts() account.Remover    { return accountRepo{s} }

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r userRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

type profileRepo struct{ s *Store }

func cloneProfile(p profile.Profile) *profile.Profile {
	p.Skills = slices.Clone(p.Skills)
	p.Experience = slices.Clone(p.Experience)
	for i := range p.Experience {
		p.Experience[i].To = cloneTime(p.Experience[i].To)
	}
	p.Education = slices.Clone(p.Education)
	for i := range p.Education {
		p.Education[i].To = cloneTime(p.Education[i].To)
	}
	return &p
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func (r profileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	return cloneProfile(p), nil
}

func (r profileRepo) List(_ context.Context) ([]*profile.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*profile.Profile, 0, len(r.s.profiles))
	for _, p := range r.s.profiles {
		out = append(out, cloneProfile(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r profileRepo) Upsert(_ context.Context, p *profile.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing, ok := r.s.profiles[p.UserID]; ok {
		// the owner key is unique; keep the original document identity
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	}
	r.s.profiles[p.UserID] = *cloneProfile(*p)
	return nil
}

type postRepo struct{ s *Store }

func clonePost(p post.Post) *post.Post {
	p.Likes = slices.Clone(p.Likes)
	p.Comments = slices.Clone(p.Comments)
	return &p
}

func (r postRepo) Save(_ context.Context, p *post.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.posts[p.ID] = *clonePost(*p)
	return nil
}

func (r postRepo) Update(_ context.Context, p *post.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.posts[p.ID]
	if !ok {
		return post.ErrPostNotFound
	}
	stored.Likes = slices.Clone(p.Likes)
	stored.Comments = slices.Clone(p.Comments)
	r.s.posts[p.ID] = stored
	return nil
}

func (r postRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[id]; !ok {
		return post.ErrPostNotFound
	}
	delete(r.s.posts, id)
	return nil
}

func (r postRepo) FindByID(_ context.Context, id uuid.UUID) (*post.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	return clonePost(p), nil
}

func (r postRepo) List(_ context.Context) ([]*post.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*post.Post, 0, len(r.s.posts))
	for _, p := range r.s.posts {
		out = append(out, clonePost(p))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r postRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, p := range r.s.posts {
		if p.UserID == userID {
			delete(r.s.posts, id)
			n++
		}
	}
	return n, nil
}

type accountRepo struct{ s *Store }

// DeleteAccount drops profile and user under one lock.
func (r accountRepo) DeleteAccount(_ context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.profiles, userID)
	delete(r.s.users, userID)
	return nil
}
