// Package models contains the domain entities shared by the repository and
// service layers.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the root account record. Password always holds a bcrypt hash;
// plaintext never reaches the repositories.
type User struct {
	UserID            uuid.UUID
	Username          string
	Email             string
	Password          string
	ChangedPasswordAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UserUpdate is a partial update of a User. Nil fields are left untouched.
//
// Password carries plaintext on input; the service replaces it with a bcrypt
// hash and stamps ChangedPasswordAt before the update is persisted.
// UpdatedAt is stamped by the service on every update.
type UserUpdate struct {
	Username          *string
	Email             *string
	Password          *string
	ChangedPasswordAt *time.Time
	UpdatedAt         *time.Time
}
