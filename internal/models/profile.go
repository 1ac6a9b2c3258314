package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the non-credential account details, one row per user by
// convention. Nothing at this layer enforces that uniqueness.
type Profile struct {
	ProfileID uuid.UUID
	UserID    uuid.UUID
	FirstName string
	LastName  string
	PhotoURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileUpdate is a partial update of a Profile. Nil fields are left
// untouched. UpdatedAt is stamped by the service on every update.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	PhotoURL  *string
	UpdatedAt *time.Time
}
