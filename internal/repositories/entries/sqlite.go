package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/euks-jp/passkeeper/internal/common"
	"github.com/euks-jp/passkeeper/internal/dbx"
	"github.com/euks-jp/passkeeper/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
// Timestamps are stored as integer unix nanoseconds.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, e *models.Entry) (int64, error) {
	query := `INSERT INTO entries (name, url, username, password, notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		e.Name, e.URL, e.Username, e.Password, e.Notes,
		e.CreatedAt.UnixNano(), e.UpdatedAt.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get generated id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Entry, error) {
	query := `SELECT id, name, url, username, password, notes, created_at, updated_at
			FROM entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: entry %d", common.ErrorNotFound, id)
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return e, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Entry, error) {
	query := `SELECT id, name, url, username, password, notes, created_at, updated_at
			FROM entries ORDER BY url`
	return r.queryEntries(ctx, query)
}

// Search matches a case-insensitive substring of url or username, the
// default LIKE semantics of SQLite for ASCII. The term is used verbatim, so
// '%' and '_' act as LIKE wildcards, matching the behavior of the original
// search box.
func (r *SQLiteRepository) Search(ctx context.Context, term string) ([]models.Entry, error) {
	query := `SELECT id, name, url, username, password, notes, created_at, updated_at
			FROM entries
			WHERE url LIKE ? OR username LIKE ?
			ORDER BY url`
	pattern := "%" + term + "%"
	return r.queryEntries(ctx, query, pattern, pattern)
}

func (r *SQLiteRepository) Update(ctx context.Context, e *models.Entry) (int64, error) {
	query := `UPDATE entries
			SET name = ?, url = ?, username = ?, password = ?, notes = ?, updated_at = ?
			WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Name, e.URL, e.Username, e.Password, e.Notes, e.UpdatedAt.UnixNano(), e.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update entry: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM entries WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entry: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra, nil
}

func (r *SQLiteRepository) queryEntries(ctx context.Context, query string, args ...any) ([]models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []models.Entry
	for rows.Next() {
		item, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*models.Entry, error) {
	e := &models.Entry{}
	var created, updated int64
	if err := s.Scan(&e.ID, &e.Name, &e.URL, &e.Username, &e.Password, &e.Notes, &created, &updated); err != nil {
		return nil, err
	}
	e.CreatedAt = time.Unix(0, created)
	e.UpdatedAt = time.Unix(0, updated)
	return e, nil
}
