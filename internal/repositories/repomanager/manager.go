// Package repomanager constructs repositories over a DBTX handle, so the
// same repository code runs against the pool or inside a transaction.
package repomanager

import (
	"github.com/align-mind/accounts/internal/dbx"
	"github.com/align-mind/accounts/internal/repositories/profiles"
	"github.com/align-mind/accounts/internal/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
}
