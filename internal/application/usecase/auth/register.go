package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/devconnector/internal/domain/user"
	"github.com/khoahotran/devconnector/pkg/apperror"
	"github.com/khoahotran/devconnector/pkg/auth"
	"github.com/khoahotran/devconnector/pkg/logger"
)

// validate backs the checks for callers that bypass HTTP binding.
var validate = validator.New()

type RegisterUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewRegisterUseCase(repo user.Repository, jwtSvc *auth.JWTService, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: repo,
		jwtSvc:   jwtSvc,
		logger:   log,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterOutput struct {
	UserID uuid.UUID
	Token  string
}

func validateRegistration(in RegisterInput) error {
	var fields []apperror.FieldError
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, apperror.FieldError{Param: "name", Msg: "Name is required"})
	}
	if validate.Var(strings.TrimSpace(in.Email), "required,email") != nil {
		fields = append(fields, apperror.FieldError{Param: "email", Msg: "need valid email"})
	}
	if validate.Var(in.Password, "required,min=6") != nil {
		fields = append(fields, apperror.FieldError{Param: "password", Msg: "min length 6"})
	}
	if len(fields) > 0 {
		return apperror.NewValidation(fields...)
	}
	return nil
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	ctx, span := tracer.Start(ctx, "Register")
	defer span.End()

	if err := validateRegistration(input); err != nil {
		span.RecordError(err)
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := uc.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, userExists(email)
	case !errors.Is(err, user.ErrUserNotFound):
		uc.logger.Error("Failed to check existing user", err)
		return nil, apperror.NewInternal("failed to look up user", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	u := &user.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Avatar:       auth.GravatarURL(email),
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return nil, userExists(email)
		}
		uc.logger.Error("Failed to create user", err)
		return nil, apperror.NewInternal("failed to create user", err)
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("user_id", u.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	uc.logger.Info("User registered", zap.String("user_id", u.ID.String()))
	return &RegisterOutput{UserID: u.ID, Token: token}, nil
}

func userExists(email string) error {
	e := apperror.NewConflict("user already exist", "email "+email+" is registered")
	e.Fields = []apperror.FieldError{{Param: "email", Msg: "user already exist"}}
	return e
}
