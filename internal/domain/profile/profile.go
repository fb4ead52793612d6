package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound    = errors.New("no profile")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrEducationNotFound  = errors.New("education not found")
)

type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type Education struct {
	ID           uuid.UUID  `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

type Social struct {
	YouTube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// SocialLinks is a partial social update. Nil links keep their stored value.
type SocialLinks struct {
	YouTube   *string
	Twitter   *string
	Facebook  *string
	LinkedIn  *string
	Instagram *string
}

func (l SocialLinks) applyTo(s *Social) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&s.YouTube, l.YouTube)
	set(&s.Twitter, l.Twitter)
	set(&s.Facebook, l.Facebook)
	set(&s.LinkedIn, l.LinkedIn)
	set(&s.Instagram, l.Instagram)
}

type Profile struct {
	ID             uuid.UUID    `json:"id"`
	UserID         uuid.UUID    `json:"user_id"`
	Company        string       `json:"company"`
	Website        string       `json:"website"`
	Location       string       `json:"location"`
	Status         string       `json:"status"`
	Skills         []string     `json:"skills"`
	Bio            string       `json:"bio"`
	GithubUsername string       `json:"githubusername"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Social         Social       `json:"social"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Fields is a create-or-update request. Nil pointers leave the stored value
// untouched; Status and Skills are always applied.
type Fields struct {
	Status         string
	Skills         []string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Social         SocialLinks
}

// New creates an empty profile owned by userID.
func New(userID uuid.UUID, now time.Time) *Profile {
	return &Profile{
		ID:         uuid.New(),
		UserID:     userID,
		Skills:     []string{},
		Experience: []Experience{},
		Education:  []Education{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (p *Profile) Apply(f Fields, now time.Time) {
	p.Status = f.Status
	p.Skills = f.Skills
	if f.Company != nil {
		p.Company = *f.Company
	}
	if f.Website != nil {
		p.Website = *f.Website
	}
	if f.Location != nil {
		p.Location = *f.Location
	}
	if f.Bio != nil {
		p.Bio = *f.Bio
	}
	if f.GithubUsername != nil {
		p.GithubUsername = *f.GithubUsername
	}
	f.Social.applyTo(&p.Social)
	p.UpdatedAt = now
}

// AddExperience assigns an id and puts the entry first.
func (p *Profile) AddExperience(e Experience) Experience {
	e.ID = uuid.New()
	p.Experience = append([]Experience{e}, p.Experience...)
	return e
}

func (p *Profile) RemoveExperience(id uuid.UUID) error {
	for i := range p.Experience {
		if p.Experience[i].ID == id {
			p.Experience = append(p.Experience[:i:i], p.Experience[i+1:]...)
			return nil
		}
	}
	return ErrExperienceNotFound
}

func (p *Profile) AddEducation(e Education) Education {
	e.ID = uuid.New()
	p.Education = append([]Education{e}, p.Education...)
	return e
}

func (p *Profile) RemoveEducation(id uuid.UUID) error {
	for i := range p.Education {
		if p.Education[i].ID == id {
			p.Education = append(p.Education[:i:i], p.Education[i+1:]...)
			return nil
		}
	}
	return ErrEducationNotFound
}

// ParseSkills splits "go, sql ,docker" into trimmed, non-empty items.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}
