package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/devconnector/internal/domain/post"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var postColumns = []string{"id", "user_id", "text", "name", "avatar", "likes", "comments", "created_at"}

type postgresPostRepo struct {
	db *pgxpool.Pool
}

func NewPostgresPostRepo(db *pgxpool.Pool) post.Repository {
	return &postgresPostRepo{db: db}
}

func scanPost(row pgx.Row) (*post.Post, error) {
	p := &post.Post{}
	var likes, comments []byte

	err := row.Scan(&p.ID, &p.UserID, &p.Text, &p.Name, &p.Avatar, &likes, &comments, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to scan post row: %w", err)
	}

	if err := json.Unmarshal(likes, &p.Likes); err != nil {
		return nil, fmt.Errorf("failed to decode post likes: %w", err)
	}
	if err := json.Unmarshal(comments, &p.Comments); err != nil {
		return nil, fmt.Errorf("failed to decode post comments: %w", err)
	}
	return p, nil
}

func scanPosts(rows pgx.Rows) ([]*post.Post, error) {
	posts := make([]*post.Post, 0)
	defer rows.Close()

	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}
	return posts, nil
}

func marshalThread(p *post.Post) (likes, comments []byte, err error) {
	likes, err = json.Marshal(p.Likes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal post likes: %w", err)
	}
	comments, err = json.Marshal(p.Comments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal post comments: %w", err)
	}
	return likes, comments, nil
}

func (r *postgresPostRepo) Save(ctx context.Context, p *post.Post) error {
	likes, comments, err := marshalThread(p)
	if err != nil {
		return err
	}

	query, args, err := psql.Insert("posts").
		Columns(postColumns...).
		Values(p.ID, p.UserID, p.Text, p.Name, p.Avatar, likes, comments, p.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build post insert: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

func (r *postgresPostRepo) Update(ctx context.Context, p *post.Post) error {
	likes, comments, err := marshalThread(p)
	if err != nil {
		return err
	}

	query := `UPDATE posts SET likes = $2, comments = $3 WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, p.ID, likes, comments)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func (r *postgresPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func (r *postgresPostRepo) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	query, args, err := psql.Select(postColumns...).From("posts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build post query: %w", err)
	}
	return scanPost(r.db.QueryRow(ctx, query, args...))
}

func (r *postgresPostRepo) List(ctx context.Context) ([]*post.Post, error) {
	query, args, err := psql.Select(postColumns...).From("posts").OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build post list query: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	return scanPosts(rows)
}

func (r *postgresPostRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete posts of user: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
