// Package entries persists credential records. At this layer the Password
// field carries the encrypted token; encryption and decryption happen one
// level up, in the store service.
package entries

import (
	"context"

	"github.com/euks-jp/passkeeper/internal/models"
)

// Repository describes CRUD and query operations for Entry records.
// Implementations are typically backed by a local SQLite database.
type Repository interface {
	// Insert persists a new record and returns the generated id.
	// Ids are monotonically assigned and never reused after deletion.
	Insert(ctx context.Context, entry *models.Entry) (int64, error)

	// GetByID returns a single record, or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.Entry, error)

	// GetAll returns every record ordered by url ascending.
	GetAll(ctx context.Context) ([]models.Entry, error)

	// Search returns records whose url or username contains the term
	// (case-insensitive substring), ordered by url ascending.
	Search(ctx context.Context, term string) ([]models.Entry, error)

	// Update rewrites all mutable columns of the record with the entry's
	// id, leaving created_at untouched. Returns the number of rows
	// affected (0 when the id does not exist).
	Update(ctx context.Context, entry *models.Entry) (int64, error)

	// DeleteByID removes the record. Returns the number of rows affected;
	// deleting a missing id affects 0 rows and is not an error.
	DeleteByID(ctx context.Context, id int64) (int64, error)
}
