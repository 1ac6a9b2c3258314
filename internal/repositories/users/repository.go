package users

import (
	"context"

	"github.com/align-mind/accounts/internal/models"
	"github.com/google/uuid"
)

// Repository is the users table contract. Implementations map a missing row
// to common.ErrorNotFound.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, upd models.UserUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
