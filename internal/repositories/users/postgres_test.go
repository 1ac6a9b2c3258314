package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/align-mind/accounts/internal/common"
	"github.com/align-mind/accounts/internal/models"
	"github.com/google/uuid"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func userRows(u *models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "username", "email", "password", "changed_password_at", "created_at", "updated_at"}).
		AddRow(u.UserID, u.Username, u.Email, u.Password, u.ChangedPasswordAt, u.CreatedAt, u.UpdatedAt)
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+user_id,\s*username,\s*email,\s*password,\s*changed_password_at,\s*created_at,\s*updated_at\s+FROM\s+users\s+WHERE\s+user_id\s*=\s*\$1\s*$`

	id := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(q).
		WithArgs(id).
		WillReturnRows(userRows(&models.User{UserID: id, Username: "ana", Email: "ana@example.com", Password: "$2a$10$x", CreatedAt: now, UpdatedAt: now}))

	got, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.UserID != id || got.Email != "ana@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.ChangedPasswordAt != nil {
		t.Fatalf("expected nil changed_password_at, got %v", got.ChangedPasswordAt)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM\s+users`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM\s+users`).
		WillReturnError(errors.New("db down"))

	_, err := repo.GetByID(context.Background(), uuid.New())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+user_id,\s*username,\s*email,\s*password,\s*changed_password_at,\s*created_at,\s*updated_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`

	id := uuid.New()
	changed := time.Now().UTC().Add(-time.Hour)
	mock.ExpectQuery(q).
		WithArgs("ana@example.com").
		WillReturnRows(userRows(&models.User{UserID: id, Email: "ana@example.com", ChangedPasswordAt: &changed}))

	got, err := repo.GetByEmail(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.UserID != id || got.ChangedPasswordAt == nil {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM\s+users\s+WHERE\s+email`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_SetsOnlyProvidedColumns(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^UPDATE\s+users\s+SET\s+username\s*=\s*\$1,\s*updated_at\s*=\s*\$2\s+WHERE\s+user_id\s*=\s*\$3$`

	id := uuid.New()
	now := time.Now().UTC()
	mock.ExpectExec(q).
		WithArgs("ana", now, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	username := "ana"
	err := repo.Update(context.Background(), id, models.UserUpdate{Username: &username, UpdatedAt: &now})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdate_PasswordChangeWritesAllStamps(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^UPDATE\s+users\s+SET\s+password\s*=\s*\$1,\s*changed_password_at\s*=\s*\$2,\s*updated_at\s*=\s*\$3\s+WHERE\s+user_id\s*=\s*\$4$`

	id := uuid.New()
	now := time.Now().UTC()
	hash := "$2a$10$hash"
	mock.ExpectExec(q).
		WithArgs(hash, now, now, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), id, models.UserUpdate{
		Password:          &hash,
		ChangedPasswordAt: &now,
		UpdatedAt:         &now,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdate_NoRowsAffected(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+users\s+SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	now := time.Now().UTC()
	err := repo.Update(context.Background(), uuid.New(), models.UserUpdate{UpdatedAt: &now})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_EmptyUpdateIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	if err := repo.Update(context.Background(), uuid.New(), models.UserUpdate{}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no statement may be executed: %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+users\s+WHERE\s+user_id\s*=\s*\$1\s*$`

	id := uuid.New()
	mock.ExpectExec(q).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+users`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+users`).
		WillReturnError(errors.New("db down"))

	err := repo.Delete(context.Background(), uuid.New())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
