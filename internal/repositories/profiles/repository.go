package profiles

import (
	"context"

	"github.com/align-mind/accounts/internal/models"
	"github.com/google/uuid"
)

// Repository is the profile_users table contract. Implementations map a
// missing row to common.ErrorNotFound.
type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	Update(ctx context.Context, profileID uuid.UUID, upd models.ProfileUpdate) error
	Delete(ctx context.Context, profileID uuid.UUID) error
}
