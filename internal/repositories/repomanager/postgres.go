package repomanager

import (
	"database/sql"
	"fmt"

	"github.com/align-mind/accounts/internal/config"
	"github.com/align-mind/accounts/internal/dbx"
	"github.com/align-mind/accounts/internal/repositories/profiles"
	"github.com/align-mind/accounts/internal/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresRepositoryManager struct {
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Profiles(db dbx.DBTX) profiles.Repository {
	return profiles.NewPostgresRepository(db)
}

// Open creates the shared connection pool used by every operation. Each call
// into the service borrows a connection from this pool for its duration;
// there is no per-call connection establishment.
func Open(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)

	return db, nil
}
