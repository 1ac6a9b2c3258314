package config

import (
	"flag"
	"os"

	"github.com/align-mind/accounts/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-w int      bcrypt work factor for password hashing
//	-m int      max open DB connections
//	-i int      max idle DB connections
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with flags owned elsewhere (e.g. the
// -c/-config flags consumed by the JSON overlay).
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-w", "-m", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.BcryptCost, "w", config.BcryptCost, "bcrypt work factor")
	fs.IntVar(&config.DBMaxOpenConns, "m", config.DBMaxOpenConns, "max open db connections")
	fs.IntVar(&config.DBMaxIdleConns, "i", config.DBMaxIdleConns, "max idle db connections")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
