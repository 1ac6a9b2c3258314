// Package cli implements the accountctl operator console: a small REPL for
// inspecting and mutating user accounts through the account service.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/align-mind/accounts/internal/config"
	"github.com/align-mind/accounts/internal/logging"
	"github.com/align-mind/accounts/internal/repositories/repomanager"
	"github.com/align-mind/accounts/internal/service"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	accounts *service.AccountService
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	l := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(l)

	db, err := repomanager.Open(c)
	if err != nil {
		return nil, err
	}

	accounts := service.NewAccountService(db, repomanager.NewPostgresRepositoryManager(), c)

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		accounts: accounts,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	a.logger.Info(ctx, "accountctl connected", "max_open_conns", a.config.DBMaxOpenConns)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}
