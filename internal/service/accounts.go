// Package service contains the account business logic. This file implements
// AccountService, which handles user/profile lookups, email validation,
// password hashing, and the cascading account delete.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/align-mind/accounts/internal/common"
	"github.com/align-mind/accounts/internal/config"
	"github.com/align-mind/accounts/internal/dbx"
	"github.com/align-mind/accounts/internal/models"
	"github.com/align-mind/accounts/internal/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AccountService provides the account lifecycle operations:
// - GetUser / GetUserByEmail / GetUserProfile: lookups
// - VerifyNewEmail: format plus uniqueness validation
// - CreateProfile / UpdateUser / UpdateProfile: writes
// - DeleteUserWithProfile: cascading delete of a user and its profile
//
// Every multi-step operation runs inside a single transaction, so existence
// checks and the dependent writes observe the same state and partial effects
// are never committed. Absent records surface as common.ErrorNotFound;
// storage failures are returned wrapped and are retryable by the caller.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	bcryptCost  int
}

// NewAccountService constructs an AccountService over a shared connection
// pool and a repository manager.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		bcryptCost:  cfg.BcryptCost,
	}
}

// GetUser returns the user with the given id.
func (s *AccountService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return user, nil
}

// GetUserByEmail returns the user with exactly the given email. No case
// normalization is applied.
func (s *AccountService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching user by email: %w", err)
	}
	return user, nil
}

// GetUserProfile resolves the user first and only then fetches its profile.
// A missing user short-circuits without touching the profile table.
func (s *AccountService) GetUserProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Profiles(s.db)
	profile, err := repo.GetByUserID(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching profile: %w", err)
	}
	return profile, nil
}

// VerifyNewEmail reports whether email is well-formed and not used by any
// existing account. The check is pure validation; nothing is written.
func (s *AccountService) VerifyNewEmail(ctx context.Context, email string) (bool, error) {
	if !emailPattern.MatchString(email) {
		return false, nil
	}

	repo := s.repomanager.Users(s.db)
	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		// address already taken
		return false, nil
	}
	if errors.Is(err, common.ErrorNotFound) {
		return true, nil
	}
	return false, fmt.Errorf("error checking email: %w", err)
}

// CreateProfile inserts a profile for an existing user. The profile's
// ownership is forced to the resolved user; any caller-supplied UserID is
// ignored. The existence check and the insert share one transaction.
//
// No duplicate check is made: a second call for the same user creates a
// second row unless the schema forbids it.
func (s *AccountService) CreateProfile(ctx context.Context, userID uuid.UUID, profile *models.Profile) (*models.Profile, error) {
	var created *models.Profile

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, err := s.repomanager.Users(tx).GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("error fetching user: %w", err)
		}

		profile.UserID = user.UserID

		created, err = s.repomanager.Profiles(tx).Create(ctx, profile)
		if err != nil {
			return fmt.Errorf("error creating profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateUser applies a partial update to an existing user. A plaintext
// password in upd is replaced by its bcrypt hash and changed_password_at is
// stamped; a hashing failure aborts the operation before anything is
// written. updated_at is stamped on every call.
func (s *AccountService) UpdateUser(ctx context.Context, userID uuid.UUID, upd models.UserUpdate) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("error fetching user: %w", err)
		}

		if upd.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), s.bcryptCost)
			if err != nil {
				return fmt.Errorf("error hashing password: %w", err)
			}
			hashed := string(hash)
			upd.Password = &hashed

			now := time.Now().UTC()
			upd.ChangedPasswordAt = &now
		}

		now := time.Now().UTC()
		upd.UpdatedAt = &now

		if err := repo.Update(ctx, user.UserID, upd); err != nil {
			return fmt.Errorf("error updating user: %w", err)
		}
		return nil
	})
}

// UpdateProfile applies a partial update to the profile of the given user.
// Either a missing user or a missing profile resolves to ErrorNotFound.
// updated_at is stamped on every call.
func (s *AccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, err := s.repomanager.Users(tx).GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("error fetching user: %w", err)
		}

		repo := s.repomanager.Profiles(tx)

		profile, err := repo.GetByUserID(ctx, user.UserID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("error fetching profile: %w", err)
		}

		now := time.Now().UTC()
		upd.UpdatedAt = &now

		if err := repo.Update(ctx, profile.ProfileID, upd); err != nil {
			return fmt.Errorf("error updating profile: %w", err)
		}
		return nil
	})
}

// DeleteUserWithProfile removes a user and its profile as one atomic unit.
// Both lookups happen before either delete, so the profile lookup reflects
// pre-deletion state. A user without a profile deletes cleanly; a profile is
// never left behind once the user row is gone.
func (s *AccountService) DeleteUserWithProfile(ctx context.Context, userID uuid.UUID) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		usersRepo := s.repomanager.Users(tx)
		profilesRepo := s.repomanager.Profiles(tx)

		user, err := usersRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("error fetching user: %w", err)
		}

		profile, err := profilesRepo.GetByUserID(ctx, user.UserID)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error fetching profile: %w", err)
		}

		if err := usersRepo.Delete(ctx, user.UserID); err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}

		if profile != nil {
			if err := profilesRepo.Delete(ctx, profile.ProfileID); err != nil {
				return fmt.Errorf("error deleting profile: %w", err)
			}
		}

		return nil
	})
}
