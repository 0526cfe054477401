// Package store implements the entry store: durable CRUD over credential
// entries with transparent encryption of the secret field. Callers always
// see plaintext secrets; only the persisted representation is ciphertext.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/euks-jp/passkeeper/internal/common"
	"github.com/euks-jp/passkeeper/internal/cryptox"
	"github.com/euks-jp/passkeeper/internal/dedup"
	"github.com/euks-jp/passkeeper/internal/logging"
	"github.com/euks-jp/passkeeper/internal/models"
	"github.com/euks-jp/passkeeper/internal/repositories/entries"
)

// Store composes the entries repository with the cipher. All mutating
// operations are serialized by a mutex so concurrent in-process callers
// (a background import racing a foreground edit) cannot interleave partial
// writes; reads run concurrently on single snapshot-consistent statements.
type Store struct {
	repo   entries.Repository
	cipher *cryptox.Cipher
	logger logging.Logger

	mu sync.Mutex

	// set by Open; nil when the store is built over an existing repo
	db   *sql.DB
	lock *flock.Flock

	now func() time.Time
}

// New builds a Store over an existing repository. Used by Open and by tests;
// most callers want Open.
func New(repo entries.Repository, cipher *cryptox.Cipher, logger logging.Logger) *Store {
	return &Store{repo: repo, cipher: cipher, logger: logger, now: time.Now}
}

// Create validates the entry, applies the name default, stamps both
// timestamps, encrypts the secret and persists a new record. On success the
// generated id and the timestamps are set on the entry.
func (s *Store) Create(ctx context.Context, e *models.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	e.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.cipher.Encrypt(e.Password)
	if err != nil {
		return fmt.Errorf("encrypting secret: %w", err)
	}

	now := s.now()
	rec := *e
	rec.Password = token
	rec.CreatedAt = now
	rec.UpdatedAt = now

	id, err := s.repo.Insert(ctx, &rec)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrorStorageUnavailable, err)
	}

	e.ID = id
	e.CreatedAt = now
	e.UpdatedAt = now
	return nil
}

// Get returns one entry with its secret decrypted.
func (s *Store) Get(ctx context.Context, id int64) (*models.Entry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decryptEntry(ctx, e)
	return e, nil
}

// List returns all entries, secrets decrypted, ordered by url ascending.
// An entry whose token cannot be decrypted comes back with an empty secret;
// the failure is logged and the rest of the listing is unaffected.
func (s *Store) List(ctx context.Context) ([]models.Entry, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorStorageUnavailable, err)
	}
	for i := range rows {
		s.decryptEntry(ctx, &rows[i])
	}
	return rows, nil
}

// Search returns entries whose url or username contains the term as a
// case-insensitive substring, in the same ordering as List.
func (s *Store) Search(ctx context.Context, term string) ([]models.Entry, error) {
	rows, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorStorageUnavailable, err)
	}
	for i := range rows {
		s.decryptEntry(ctx, &rows[i])
	}
	return rows, nil
}

// Update re-encrypts the secret, rewrites all mutable fields and refreshes
// UpdatedAt, leaving CreatedAt untouched. Updating an id that does not
// exist returns ErrorNotFound and changes nothing.
func (s *Store) Update(ctx context.Context, e *models.Entry) error {
	if e.ID == 0 {
		return fmt.Errorf("%w: entry has no id", common.ErrorValidation)
	}
	if err := e.Validate(); err != nil {
		return err
	}
	e.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.cipher.Encrypt(e.Password)
	if err != nil {
		return fmt.Errorf("encrypting secret: %w", err)
	}

	now := s.now()
	rec := *e
	rec.Password = token
	rec.UpdatedAt = now

	affected, err := s.repo.Update(ctx, &rec)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrorStorageUnavailable, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: entry %d", common.ErrorNotFound, e.ID)
	}

	e.UpdatedAt = now
	return nil
}

// Delete removes the entry. Deleting a missing id is a no-op.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", common.ErrorStorageUnavailable, err)
	}
	return nil
}

// BulkDelete deletes each id best-effort: a failure on one id does not stop
// the rest. The returned count is the number of entries actually removed,
// which may be lower than len(ids) when some ids no longer exist.
func (s *Store) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	var firstErr error
	for _, id := range ids {
		affected, err := s.repo.DeleteByID(ctx, id)
		if err != nil {
			s.logger.Warn(ctx, "bulk delete: id failed, continuing", "id", id, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		removed += affected
	}

	if firstErr != nil {
		return removed, fmt.Errorf("%w: %w", common.ErrorStorageUnavailable, firstErr)
	}
	s.logger.Info(ctx, "bulk delete finished", "requested", len(ids), "removed", removed)
	return removed, nil
}

// FindDuplicateGroups reads the full decrypted entry set and returns the
// duplicate plan. The plan is advisory: nothing is deleted until the caller
// confirms and invokes BulkDelete.
func (s *Store) FindDuplicateGroups(ctx context.Context) ([]dedup.Group, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	groups := dedup.FindGroups(all)
	s.logger.Debug(ctx, "duplicate scan finished", "entries", len(all), "groups", len(groups))
	return groups, nil
}

// decryptEntry replaces the stored token with the plaintext secret. On
// failure the secret degrades to the empty string so a single corrupt
// record cannot take down a listing.
func (s *Store) decryptEntry(ctx context.Context, e *models.Entry) {
	plain, err := s.cipher.Decrypt(e.Password)
	if err != nil {
		s.logger.Warn(ctx, "secret unrecoverable, degrading to empty",
			"id", e.ID, "url", e.URL, "error", err)
		e.Password = ""
		return
	}
	e.Password = plain
}
