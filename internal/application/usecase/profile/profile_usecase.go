package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/devconnector/internal/domain/profile"
	"github.com/khoahotran/devconnector/internal/domain/user"
	"github.com/khoahotran/devconnector/pkg/apperror"
	"github.com/khoahotran/devconnector/pkg/logger"
)

var tracer = otel.Tracer("profile_usecase")

type ProfileUseCase struct {
	profileRepo profile.Repository
	userRepo    user.Repository
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, userRepo user.Repository, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		userRepo:    userRepo,
		logger:      log,
	}
}

// ProfileView is a profile with its owner's public name and avatar.
type ProfileView struct {
	Profile *profile.Profile
	Owner   *user.User
}

func (uc *ProfileUseCase) view(ctx context.Context, p *profile.Profile) (*ProfileView, error) {
	owner, err := uc.userRepo.FindByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// owner removed between the two reads
			return &ProfileView{Profile: p}, nil
		}
		return nil, uc.internal("failed to populate profile owner", err, p.UserID)
	}
	return &ProfileView{Profile: p, Owner: owner}, nil
}

func (uc *ProfileUseCase) internal(details string, err error, userID uuid.UUID) error {
	uc.logger.Error(details, err, zap.String("user_id", userID.String()))
	return apperror.NewInternal(details, err)
}

// load fetches the caller's profile, translating absence to NotFound.
func (uc *ProfileUseCase) load(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("no profile", userID.String())
		}
		return nil, uc.internal("failed to query profile", err, userID)
	}
	return p, nil
}

type GetProfileInput struct {
	UserID uuid.UUID
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*ProfileView, error) {
	ctx, span := tracer.Start(ctx, "GetProfile")
	defer span.End()

	p, err := uc.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return uc.view(ctx, p)
}

func (uc *ProfileUseCase) ExecuteListProfiles(ctx context.Context) ([]*ProfileView, error) {
	ctx, span := tracer.Start(ctx, "ListProfiles")
	defer span.End()

	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list profiles", err)
		return nil, apperror.NewInternal("failed to list profiles", err)
	}

	views := make([]*ProfileView, 0, len(profiles))
	for _, p := range profiles {
		v, err := uc.view(ctx, p)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

type UpsertProfileInput struct {
	UserID         uuid.UUID
	Status         string
	Skills         string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Social         profile.SocialLinks
}

func (in UpsertProfileInput) validate() error {
	var fields []apperror.FieldError
	if strings.TrimSpace(in.Status) == "" {
		fields = append(fields, apperror.FieldError{Param: "status", Msg: "status is a must have"})
	}
	if len(profile.ParseSkills(in.Skills)) == 0 {
		fields = append(fields, apperror.FieldError{Param: "skills", Msg: "you need skills"})
	}
	if len(fields) > 0 {
		return apperror.NewValidation(fields...)
	}
	return nil
}

// ExecuteUpsertProfile creates the caller's profile or overwrites the supplied
// fields of the existing one.
func (uc *ProfileUseCase) ExecuteUpsertProfile(ctx context.Context, input UpsertProfileInput) (*ProfileView, error) {
	ctx, span := tracer.Start(ctx, "UpsertProfile")
	defer span.End()

	if err := input.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	switch {
	case errors.Is(err, profile.ErrProfileNotFound):
		p = profile.New(input.UserID, now)
	case err != nil:
		return nil, uc.internal("failed to query profile", err, input.UserID)
	}

	p.Apply(profile.Fields{
		Status:         strings.TrimSpace(input.Status),
		Skills:         profile.ParseSkills(input.Skills),
		Company:        input.Company,
		Website:        input.Website,
		Location:       input.Location,
		Bio:            input.Bio,
		GithubUsername: input.GithubUsername,
		Social:         input.Social,
	}, now)

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, uc.internal("failed to upsert profile", err, input.UserID)
	}
	return uc.view(ctx, p)
}

type AddExperienceInput struct {
	UserID      uuid.UUID
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

func (in AddExperienceInput) validate() error {
	var fields []apperror.FieldError
	if strings.TrimSpace(in.Title) == "" {
		fields = append(fields, apperror.FieldError{Param: "title", Msg: "title is a must have"})
	}
	if strings.TrimSpace(in.Company) == "" {
		fields = append(fields, apperror.FieldError{Param: "company", Msg: "company is a must have"})
	}
	if in.From.IsZero() {
		fields = append(fields, apperror.FieldError{Param: "from", Msg: "from date is a must have"})
	}
	if len(fields) > 0 {
		return apperror.NewValidation(fields...)
	}
	return nil
}

func (uc *ProfileUseCase) ExecuteAddExperience(ctx context.Context, input AddExperienceInput) (*ProfileView, error) {
	ctx, span := tracer.Start(ctx, "AddExperience")
	defer span.End()

	if err := input.validate(); err != nil {
		return nil, err
	}
	p, err := uc.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	p.AddExperience(profile.Experience{
		Title:       strings.TrimSpace(input.Title),
		Company:     strings.TrimSpace(input.Company),
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	})
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, uc.internal("failed to save experience", err, input.UserID)
	}
	return uc.view(ctx, p)
}

type DeleteEntryInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
}

func (uc *ProfileUseCase) ExecuteDeleteExperience(ctx context.Context, input DeleteEntryInput) (*ProfileView, error) {
	ctx, span := tracer.Start(ctx, "DeleteExperience")
	defer span.End()

	p, err := uc.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if err := p.RemoveExperience(input.EntryID); err != nil {
		return nil, apperror.NewNotFound("experience not found", input.EntryID.String())
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, uc.internal("failed to delete experience", err, input.UserID)
	}
	return uc.view(ctx, p)
}

type AddEducationInput struct {
	UserID       uuid.UUID
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

func (in AddEducationInput) validate() error {
	var fields []apperror.FieldError
	if strings.TrimSpace(in.School) == "" {
		fields = append(fields, apperror.FieldError{Param: "school", Msg: "school is a must have"})
	}
	if strings.TrimSpace(in.Degree) == "" {
		fields = append(fields, apperror.FieldError{Param: "degree", Msg: "degree is a must have"})
	}
	if strings.TrimSpace(in.FieldOfStudy) == "" {
		fields = append(fields, apperror.FieldError{Param: "fieldofstudy", Msg: "field of study is a must have"})
	}
	if in.From.IsZero() {
		fields = append(fields, apperror.FieldError{Param: "from", Msg: "from date is a must have"})
	}
	if len(fields) > 0 {
		return apperror.NewValidation(fields...)
	}
	return nil
}

func (uc *ProfileUseCase) ExecuteAddEducation(ctx context.Context, input AddEducationInput) (*ProfileView, error) {
	ctx, span := tracer.Start(ctx, "AddEducation")
	defer span.End()

	if err := input.validate(); err != nil {
		return nil, err
	}
	p, err := uc.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	p.AddEducation(profile.Education{
		School:       strings.TrimSpace(input.School),
		Degree:       strings.TrimSpace(input.Degree),
		FieldOfStudy: strings.TrimSpace(input.FieldOfStudy),
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	})
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, uc.internal("failed to save education", err, input.UserID)
	}
	return uc.view(ctx, p)
}

func (uc *ProfileUseCase) ExecuteDeleteEducation(ctx context.Context, input DeleteEntryInput) (*ProfileView, error) {
	ctx, span := tracer.Start(ctx, "DeleteEducation")
	defer span.End()

	p, err := uc.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if err := p.RemoveEducation(input.EntryID); err != nil {
		return nil, apperror.NewNotFound("education not found", input.EntryID.String())
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, uc.internal("failed to delete education", err, input.UserID)
	}
	return uc.view(ctx, p)
}
