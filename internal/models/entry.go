// Package models defines the credential entry entity.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/euks-jp/passkeeper/internal/common"
)

// Entry is one stored credential record. The Password field holds the secret
// in plaintext while in memory; the store persists it only in encrypted form.
//
// ID is assigned by the store on first save and never reused; CreatedAt is
// set once and immutable; UpdatedAt is refreshed on every mutation.
type Entry struct {
	ID        int64
	Name      string // display label, defaults to URL when blank
	URL       string // required, non-empty
	Username  string
	Password  string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate rejects entries that must not reach storage.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.URL) == "" {
		return fmt.Errorf("%w: url must not be empty", common.ErrorValidation)
	}
	return nil
}

// Normalize applies the defaulting rules: a blank name falls back to the URL.
func (e *Entry) Normalize() {
	if strings.TrimSpace(e.Name) == "" {
		e.Name = e.URL
	}
}

// DuplicateKey is the identity tuple used by the duplicate resolver: exact,
// case-sensitive (url, username, secret), absent values as empty strings.
func (e *Entry) DuplicateKey() string {
	return e.URL + "|||" + e.Username + "|||" + e.Password
}

// String renders "url (username)" for logs and prompts. Never the secret.
func (e *Entry) String() string {
	if e.Username != "" {
		return fmt.Sprintf("%s (%s)", e.URL, e.Username)
	}
	return e.URL
}
