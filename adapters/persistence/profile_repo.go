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

	"github.com/khoahotran/devconnector/internal/domain/profile"
)

var profileColumns = []string{
	"id", "user_id", "company", "website", "location", "status", "skills", "bio",
	"github_username", "experience", "education", "social", "created_at", "updated_at",
}

type postgresProfileRepo struct {
	db *pgxpool.Pool
}

func NewPostgresProfileRepo(db *pgxpool.Pool) profile.Repository {
	return &postgresProfileRepo{db: db}
}

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	var skills, experience, education, social []byte

	err := row.Scan(
		&p.ID, &p.UserID, &p.Company, &p.Website, &p.Location, &p.Status, &skills, &p.Bio,
		&p.GithubUsername, &experience, &education, &social, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to scan profile row: %w", err)
	}

	if err := json.Unmarshal(skills, &p.Skills); err != nil {
		return nil, fmt.Errorf("failed to decode profile skills: %w", err)
	}
	if err := json.Unmarshal(experience, &p.Experience); err != nil {
		return nil, fmt.Errorf("failed to decode profile experience: %w", err)
	}
	if err := json.Unmarshal(education, &p.Education); err != nil {
		return nil, fmt.Errorf("failed to decode profile education: %w", err)
	}
	if err := json.Unmarshal(social, &p.Social); err != nil {
		return nil, fmt.Errorf("failed to decode profile social: %w", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	query, args, err := psql.Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build profile query: %w", err)
	}
	return scanProfile(r.db.QueryRow(ctx, query, args...))
}

func (r *postgresProfileRepo) List(ctx context.Context) ([]*profile.Profile, error) {
	query, args, err := psql.Select(profileColumns...).
		From("profiles").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build profile list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]*profile.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}
	return profiles, nil
}

// Upsert writes the whole document. user_id is unique, so a second profile
// for the same user replaces the first and keeps its id.
func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	skills, err := json.Marshal(p.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal profile skills: %w", err)
	}
	experience, err := json.Marshal(p.Experience)
	if err != nil {
		return fmt.Errorf("failed to marshal profile experience: %w", err)
	}
	education, err := json.Marshal(p.Education)
	if err != nil {
		return fmt.Errorf("failed to marshal profile education: %w", err)
	}
	social, err := json.Marshal(p.Social)
	if err != nil {
		return fmt.Errorf("failed to marshal profile social: %w", err)
	}

	query := `
		INSERT INTO profiles (id, user_id, company, website, location, status, skills, bio,
			github_username, experience, education, social, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id) DO UPDATE SET
			company = EXCLUDED.company, website = EXCLUDED.website, location = EXCLUDED.location,
			status = EXCLUDED.status, skills = EXCLUDED.skills, bio = EXCLUDED.bio,
			github_username = EXCLUDED.github_username, experience = EXCLUDED.experience,
			education = EXCLUDED.education, social = EXCLUDED.social, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`
	err = r.db.QueryRow(ctx, query,
		p.ID, p.UserID, p.Company, p.Website, p.Location, p.Status, skills, p.Bio,
		p.GithubUsername, experience, education, social, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
