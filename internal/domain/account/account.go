package account

import (
	"context"

	"github.com/google/uuid"
)

// Remover deletes a user together with the profile it owns. Implementations
// must remove both or neither.
type Remover interface {
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
