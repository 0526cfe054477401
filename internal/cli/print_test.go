package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/euks-jp/passkeeper/internal/dedup"
	"github.com/euks-jp/passkeeper/internal/models"
)

func TestPrintEntries_MasksSecrets(t *testing.T) {
	var out strings.Builder
	printEntries(&out, []models.Entry{
		{ID: 1, Name: "GitHub", URL: "https://github.com", Username: "alice", Password: "hunter2"},
	})

	s := out.String()
	assert.Contains(t, s, "GitHub")
	assert.Contains(t, s, "alice")
	assert.NotContains(t, s, "hunter2")
}

func TestPrintEntries_Empty(t *testing.T) {
	var out strings.Builder
	printEntries(&out, nil)
	assert.Contains(t, out.String(), "no entries")
}

func TestPrintEntry_RevealControlsSecret(t *testing.T) {
	e := &models.Entry{
		ID: 7, Name: "x", URL: "https://x.com", Username: "bob", Password: "s3cret",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}

	var masked strings.Builder
	printEntry(&masked, e, false)
	assert.Contains(t, masked.String(), secretMask)
	assert.NotContains(t, masked.String(), "s3cret")

	var revealed strings.Builder
	printEntry(&revealed, e, true)
	assert.Contains(t, revealed.String(), "s3cret")
}

func TestPrintPlan_TagsKeepAndDelete(t *testing.T) {
	old := models.Entry{ID: 1, Name: "a", URL: "https://a.com", Username: "alice", CreatedAt: time.Now().Add(-time.Hour)}
	fresh := models.Entry{ID: 2, Name: "a", URL: "https://a.com", Username: "alice", CreatedAt: time.Now()}

	var out strings.Builder
	printPlan(&out, []dedup.Group{{
		Key: old.DuplicateKey(),
		Members: []dedup.Member{
			{Entry: old, DeleteByDefault: true},
			{Entry: fresh, DeleteByDefault: false},
		},
	}})

	s := out.String()
	assert.Contains(t, s, "DELETE")
	assert.Contains(t, s, "KEEP")
	assert.Contains(t, s, "#1")
	assert.Contains(t, s, "#2")
	assert.Contains(t, s, "2 copies")
}
