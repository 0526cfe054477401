package config

import (
	"flag"
	"os"

	"github.com/euks-jp/passkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the database file (default from Config)
//	-k string   16-byte encryption key (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so the CLI's own command flags pass through
// untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "--database", "-k", "--key"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")
	fs.StringVar(&cfg.DatabasePath, "database", cfg.DatabasePath, "path to the database file")
	fs.StringVar(&cfg.EncryptionKey, "k", cfg.EncryptionKey, "16-byte encryption key")
	fs.StringVar(&cfg.EncryptionKey, "key", cfg.EncryptionKey, "16-byte encryption key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
