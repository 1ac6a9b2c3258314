package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/align-mind/accounts/internal/common"
	"github.com/align-mind/accounts/internal/dbx"
	"github.com/align-mind/accounts/internal/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	query :=
		`SELECT profile_id, user_id, first_name, last_name, photo_url, created_at, updated_at
		 FROM profile_users
		 WHERE user_id = $1
		 `

	profile := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.ProfileID,
		&profile.UserID,
		&profile.FirstName,
		&profile.LastName,
		&profile.PhotoURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profile, nil
}

func (r *PostgresRepository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	query :=
		`INSERT INTO profile_users (user_id, first_name, last_name, photo_url)
         VALUES ($1, $2, $3, $4)
		 RETURNING profile_id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		profile.UserID, profile.FirstName, profile.LastName, profile.PhotoURL).
		Scan(&profile.ProfileID, &profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profile, nil
}

// Update applies a partial update keyed by profile_id. Only non-nil fields
// of upd are written.
func (r *PostgresRepository) Update(ctx context.Context, profileID uuid.UUID, upd models.ProfileUpdate) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.FirstName != nil {
		addSet("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		addSet("last_name", *upd.LastName)
	}
	if upd.PhotoURL != nil {
		addSet("photo_url", *upd.PhotoURL)
	}
	if upd.UpdatedAt != nil {
		addSet("updated_at", *upd.UpdatedAt)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, profileID)
	query := fmt.Sprintf(`UPDATE profile_users SET %s WHERE profile_id = $%d`, strings.Join(sets, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, profileID uuid.UUID) error {
	query :=
		`DELETE FROM profile_users
		 WHERE profile_id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, profileID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
