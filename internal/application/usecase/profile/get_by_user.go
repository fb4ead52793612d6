package profile

import (
	"context"

	"github.com/google/uuid"
)

// ExecuteGetByUserID is the public lookup behind /profile/user/:user_id.
func (uc *ProfileUseCase) ExecuteGetByUserID(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	ctx, span := tracer.Start(ctx, "GetProfileByUserID")
	defer span.End()

	p, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.view(ctx, p)
}
