package entries

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/euks-jp/passkeeper/internal/common"
	"github.com/euks-jp/passkeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  url TEXT NOT NULL,
  username TEXT NOT NULL DEFAULT '',
  password TEXT NOT NULL,
  notes TEXT NOT NULL DEFAULT '',
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func testEntry(url string) *models.Entry {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &models.Entry{
		Name:      url,
		URL:       url,
		Username:  "alice",
		Password:  "token-not-plaintext",
		Notes:     "",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestInsert_AssignsMonotonicIDs(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id1, err := r.Insert(ctx, testEntry("https://a.com"))
	require.NoError(t, err)
	id2, err := r.Insert(ctx, testEntry("https://b.com"))
	require.NoError(t, err)

	assert.Greater(t, id2, id1)

	// AUTOINCREMENT: a deleted id is never handed out again.
	affected, err := r.DeleteByID(ctx, id2)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	id3, err := r.Insert(ctx, testEntry("https://c.com"))
	require.NoError(t, err)
	assert.Greater(t, id3, id2)
}

func TestGetByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	in := testEntry("https://a.com")
	in.Notes = "some notes"
	id, err := r.Insert(ctx, in)
	require.NoError(t, err)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.URL, got.URL)
	assert.Equal(t, in.Username, got.Username)
	assert.Equal(t, in.Password, got.Password)
	assert.Equal(t, in.Notes, got.Notes)
	assert.True(t, got.CreatedAt.Equal(in.CreatedAt))
	assert.True(t, got.UpdatedAt.Equal(in.UpdatedAt))

	_, err = r.GetByID(ctx, 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetAll_OrderedByURL(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	for _, url := range []string{"https://c.com", "https://a.com", "https://b.com"} {
		_, err := r.Insert(ctx, testEntry(url))
		require.NoError(t, err)
	}

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	urls := []string{got[0].URL, got[1].URL, got[2].URL}
	assert.Equal(t, []string{"https://a.com", "https://b.com", "https://c.com"}, urls)
}

func TestSearch_MatchesURLOrUsername_CaseInsensitive(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	e1 := testEntry("https://github.com")
	e1.Username = "alice"
	e2 := testEntry("https://gitlab.com")
	e2.Username = "bob"
	e3 := testEntry("https://example.com")
	e3.Username = "github-fan"

	for _, e := range []*models.Entry{e1, e2, e3} {
		_, err := r.Insert(ctx, e)
		require.NoError(t, err)
	}

	// Substring of url OR username.
	got, err := r.Search(ctx, "github")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "https://example.com", got[0].URL, "search results keep url ordering")
	assert.Equal(t, "https://github.com", got[1].URL)

	// Case-insensitive.
	got, err = r.Search(ctx, "GITHUB")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// No match.
	got, err = r.Search(ctx, "nosuchterm")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdate_RewritesMutableColumnsOnly(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	in := testEntry("https://a.com")
	id, err := r.Insert(ctx, in)
	require.NoError(t, err)

	upd := *in
	upd.ID = id
	upd.Name = "renamed"
	upd.Password = "new-token"
	upd.UpdatedAt = in.UpdatedAt.Add(time.Hour)
	// A stale CreatedAt on the model must not leak into the row.
	upd.CreatedAt = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)

	affected, err := r.Update(ctx, &upd)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, "new-token", got.Password)
	assert.True(t, got.UpdatedAt.Equal(upd.UpdatedAt))
	assert.True(t, got.CreatedAt.Equal(in.CreatedAt), "created_at is immutable")
}

func TestUpdate_MissingIDAffectsZeroRows(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	e := testEntry("https://a.com")
	e.ID = 12345

	affected, err := r.Update(ctx, e)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}

func TestDeleteByID_Idempotent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id, err := r.Insert(ctx, testEntry("https://a.com"))
	require.NoError(t, err)

	affected, err := r.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = r.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected, "second delete is a no-op, not an error")
}
