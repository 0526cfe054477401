package transfer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euks-jp/passkeeper/internal/common"
	"github.com/euks-jp/passkeeper/internal/logging"
	"github.com/euks-jp/passkeeper/internal/models"
)

// fakeStore records created entries in memory and can be told to fail.
type fakeStore struct {
	entries []models.Entry
	failAll bool
}

func (f *fakeStore) Create(_ context.Context, e *models.Entry) error {
	if f.failAll {
		return fmt.Errorf("%w: database gone", common.ErrorStorageUnavailable)
	}
	if err := e.Validate(); err != nil {
		return err
	}
	e.Normalize()
	e.ID = int64(len(f.entries) + 1)
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeStore) List(_ context.Context) ([]models.Entry, error) {
	if f.failAll {
		return nil, fmt.Errorf("%w: database gone", common.ErrorStorageUnavailable)
	}
	out := make([]models.Entry, len(f.entries))
	copy(out, f.entries)
	return out, nil
}

func TestImport_AcceptsWellFormedRows(t *testing.T) {
	input := strings.Join([]string{
		"name,url,username,password",
		"GitHub,https://github.com,alice,hunter2",
		",https://example.com,bob,secret", // blank name defaults to url
		"With note,https://n.com,carol,pw,remember this",
	}, "\n")

	store := &fakeStore{}
	rep, err := NewImporter(store, logging.NewDiscardLogger()).Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Accepted)
	assert.Equal(t, 0, rep.Skipped)
	require.Len(t, store.entries, 3)
	assert.Equal(t, "https://example.com", store.entries[1].Name)
	assert.Equal(t, "remember this", store.entries[2].Notes)
}

func TestImport_SkipsMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		"name,url,username,password",
		"only,three,fields",              // too few columns
		"NoURL, ,alice,pw",               // blank url fails validation
		"Good,https://ok.com,alice,pw",
	}, "\n")

	store := &fakeStore{}
	rep, err := NewImporter(store, logging.NewDiscardLogger()).Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Accepted)
	assert.Equal(t, 2, rep.Skipped)
	require.Len(t, store.entries, 1)
	assert.Equal(t, "https://ok.com", store.entries[0].URL)
}

func TestImport_QuotedFieldsSurvive(t *testing.T) {
	input := "name,url,username,password\n" +
		`"a, b",https://q.com,alice,"pw""x"` + "\n"

	store := &fakeStore{}
	rep, err := NewImporter(store, logging.NewDiscardLogger()).Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 1, rep.Accepted)
	assert.Equal(t, "a, b", store.entries[0].Name)
	assert.Equal(t, `pw"x`, store.entries[0].Password)
}

func TestImport_StorageFailureAborts(t *testing.T) {
	input := strings.Join([]string{
		"name,url,username,password",
		"a,https://a.com,alice,p1",
		"b,https://b.com,bob,p2",
	}, "\n")

	store := &fakeStore{failAll: true}
	rep, err := NewImporter(store, logging.NewDiscardLogger()).Run(context.Background(), strings.NewReader(input))

	require.ErrorIs(t, err, common.ErrorStorageUnavailable)
	assert.Equal(t, 0, rep.Accepted)
}

func TestImport_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := &fakeStore{}
	_, err := NewImporter(store, logging.NewDiscardLogger()).Run(ctx, strings.NewReader("name,url,username,password\na,https://a.com,x,p\n"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, store.entries)
}

func TestExport_WritesHeaderAndRecords(t *testing.T) {
	store := &fakeStore{entries: []models.Entry{
		{Name: "GitHub", URL: "https://github.com", Username: "alice", Password: "hunter2"},
		{Name: "a, b", URL: "https://q.com", Username: "bob", Password: `pw"x`, Notes: "line1\nline2"},
	}}

	var buf strings.Builder
	n, err := NewExporter(store, logging.NewDiscardLogger()).Run(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, Header+"\n"))
	assert.Contains(t, out, "GitHub,https://github.com,alice,hunter2\n")
	assert.Contains(t, out, `"a, b"`)
	assert.Contains(t, out, `"pw""x"`)
}

func TestExportImport_RoundTrip(t *testing.T) {
	src := &fakeStore{entries: []models.Entry{
		{Name: "plain", URL: "https://a.com", Username: "alice", Password: "p1"},
		{Name: "tricky, name", URL: "https://b.com", Username: "bob", Password: "with\nnewline", Notes: `quote " inside`},
	}}

	var buf strings.Builder
	_, err := NewExporter(src, logging.NewDiscardLogger()).Run(context.Background(), &buf)
	require.NoError(t, err)

	dst := &fakeStore{}
	rep, err := NewImporter(dst, logging.NewDiscardLogger()).Run(context.Background(), strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, 2, rep.Accepted)

	for i := range src.entries {
		assert.Equal(t, src.entries[i].Name, dst.entries[i].Name)
		assert.Equal(t, src.entries[i].URL, dst.entries[i].URL)
		assert.Equal(t, src.entries[i].Username, dst.entries[i].Username)
		assert.Equal(t, src.entries[i].Password, dst.entries[i].Password)
		assert.Equal(t, src.entries[i].Notes, dst.entries[i].Notes)
	}
}
