package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrAlreadyLiked     = errors.New("post already liked")
	ErrNotLiked         = errors.New("post has not been liked")
	ErrCommentNotFound  = errors.New("comment does not exist")
	ErrNotCommentAuthor = errors.New("user not authorized")
)

type Like struct {
	UserID uuid.UUID `json:"user"`
}

type Comment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

// Post keeps a snapshot of the author's name and avatar taken at creation.
type Post struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"date"`
}

func New(authorID uuid.UUID, text, name, avatar string, now time.Time) *Post {
	return &Post{
		ID:        uuid.New(),
		UserID:    authorID,
		Text:      text,
		Name:      name,
		Avatar:    avatar,
		Likes:     []Like{},
		Comments:  []Comment{},
		CreatedAt: now,
	}
}

func (p *Post) IsAuthor(userID uuid.UUID) bool {
	return p.UserID == userID
}

func (p *Post) LikedBy(userID uuid.UUID) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// Like puts the caller's like first. One like per user.
func (p *Post) Like(userID uuid.UUID) error {
	if p.LikedBy(userID) {
		return ErrAlreadyLiked
	}
	p.Likes = append([]Like{{UserID: userID}}, p.Likes...)
	return nil
}

func (p *Post) Unlike(userID uuid.UUID) error {
	if !p.LikedBy(userID) {
		return ErrNotLiked
	}
	kept := make([]Like, 0, len(p.Likes)-1)
	for _, l := range p.Likes {
		if l.UserID != userID {
			kept = append(kept, l)
		}
	}
	p.Likes = kept
	return nil
}

func (p *Post) AddComment(authorID uuid.UUID, text, name, avatar string, now time.Time) Comment {
	c := Comment{
		ID:        uuid.New(),
		UserID:    authorID,
		Text:      text,
		Name:      name,
		Avatar:    avatar,
		CreatedAt: now,
	}
	p.Comments = append(p.Comments, c)
	return c
}

// RemoveComment deletes a comment written by userID.
func (p *Post) RemoveComment(commentID, userID uuid.UUID) error {
	for i := range p.Comments {
		if p.Comments[i].ID != commentID {
			continue
		}
		if p.Comments[i].UserID != userID {
			return ErrNotCommentAuthor
		}
		p.Comments = append(p.Comments[:i:i], p.Comments[i+1:]...)
		return nil
	}
	return ErrCommentNotFound
}

type Repository interface {
	Save(ctx context.Context, p *Post) error
	// Update persists the embedded likes and comments.
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)
	// List returns every post, newest first.
	List(ctx context.Context) ([]*Post, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
