// Package dedup implements duplicate detection over the decrypted entry set.
// It is a pure function of its input and never touches storage; the caller
// reviews the returned plan and decides what to delete.
package dedup

import (
	"sort"

	"github.com/euks-jp/passkeeper/internal/models"
)

// Member is one entry inside a duplicate group, tagged with its default
// deletion status.
type Member struct {
	Entry           models.Entry
	DeleteByDefault bool
}

// Group is a set of two or more entries sharing the same identity key,
// ordered oldest to newest by creation time. Every member except the newest
// is a default deletion candidate.
type Group struct {
	Key     string
	Members []Member
}

// FindGroups groups entries by exact (url, username, secret), drops groups
// of one, sorts each surviving group oldest-first and marks all but the last
// member as default deletion candidates.
//
// Group order follows the first appearance of each key in the input, and
// entries with identical creation times keep their input order, so the
// result is deterministic for a given retrieval order.
func FindGroups(entries []models.Entry) []Group {
	byKey := make(map[string][]models.Entry)
	var order []string

	for _, e := range entries {
		key := e.DuplicateKey()
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], e)
	}

	var groups []Group
	for _, key := range order {
		bucket := byKey[key]
		if len(bucket) < 2 {
			continue
		}

		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].CreatedAt.Before(bucket[j].CreatedAt)
		})

		members := make([]Member, len(bucket))
		for i, e := range bucket {
			members[i] = Member{Entry: e, DeleteByDefault: i < len(bucket)-1}
		}
		groups = append(groups, Group{Key: key, Members: members})
	}
	return groups
}

// CandidateIDs collects the ids of every default deletion candidate, in
// group order. The caller confirms this set before handing it to the
// store's bulk delete; nothing here deletes anything.
func CandidateIDs(groups []Group) []int64 {
	var ids []int64
	for _, g := range groups {
		for _, m := range g.Members {
			if m.DeleteByDefault {
				ids = append(ids, m.Entry.ID)
			}
		}
	}
	return ids
}
