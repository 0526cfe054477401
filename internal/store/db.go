package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gofrs/flock"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/euks-jp/passkeeper/internal/config"
	"github.com/euks-jp/passkeeper/internal/cryptox"
	"github.com/euks-jp/passkeeper/internal/logging"
	"github.com/euks-jp/passkeeper/internal/migrations"
	"github.com/euks-jp/passkeeper/internal/repositories/entries"
)

// Open acquires an exclusive lock on the database file, opens (creating if
// needed) the sqlite database, applies pending migrations and returns a
// ready Store. A second process holding the lock makes Open fail fast
// instead of risking concurrent writers on the same file.
func Open(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Store, error) {
	cipher, err := cryptox.NewCipher([]byte(cfg.EncryptionKey))
	if err != nil {
		return nil, fmt.Errorf("initializing cipher: %w", err)
	}

	lock := flock.New(cfg.DatabasePath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking database: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("database %s is in use by another process", cfg.DatabasePath)
	}

	db, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		unlock(lock, logger)
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		unlock(lock, logger)
		return nil, err
	}

	logger.Debug(ctx, "store opened", "path", cfg.DatabasePath)

	s := New(entries.NewSQLiteRepository(db), cipher, logger)
	s.db = db
	s.lock = lock
	return s, nil
}

// Close releases the database handle and the file lock. Safe to call on a
// Store built with New; it is a no-op then.
func (s *Store) Close() error {
	var err error
	if s.db != nil {
		err = s.db.Close()
		s.db = nil
	}
	if s.lock != nil {
		if uerr := s.lock.Unlock(); uerr != nil && err == nil {
			err = uerr
		}
		s.lock = nil
	}
	return err
}

func migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

func unlock(lock *flock.Flock, logger logging.Logger) {
	if err := lock.Unlock(); err != nil {
		logger.Warn(context.Background(), "releasing database lock", "error", err)
	}
}
