// Package catalog holds the searchable in-memory view of the study catalog:
// a snapshot of store rows with a precomputed normalized search key per row,
// plus the time-bounded cache that owns the snapshot's lifetime.
package catalog

import (
	"sort"
	"strings"
	"time"

	"labquote/internal/models"
	"labquote/internal/textnorm"
)

// OriginAll is the sentinel origin filter meaning "no filter".
const OriginAll = "all"

// Entry is one catalog row inside a snapshot, carrying its derived search
// key. The key is recomputed on every snapshot build and never persisted.
type Entry struct {
	models.CatalogItem
	SearchKey string `json:"-"`
}

// Snapshot is the cached, read-only view of the catalog. It is rebuilt
// wholesale, never mutated in place.
type Snapshot struct {
	Entries []Entry
	BuiltAt time.Time
}

// BuildSnapshot computes a snapshot from raw store rows: the search key is
// the normalized name, and the origin tag is folded to a trimmed string so
// filter comparisons stay total (missing origin becomes "").
func BuildSnapshot(items []models.CatalogItem) *Snapshot {
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		item.Origin = strings.TrimSpace(item.Origin)
		entries = append(entries, Entry{
			CatalogItem: item,
			SearchKey:   textnorm.Normalize(item.Name),
		})
	}
	return &Snapshot{
		Entries: entries,
		BuiltAt: time.Now(),
	}
}

// Len returns the number of rows in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.Entries)
}

// Origins returns the sorted distinct origin tags present in the snapshot.
func (s *Snapshot) Origins() []string {
	seen := make(map[string]struct{})
	var origins []string
	for _, e := range s.Entries {
		if _, ok := seen[e.Origin]; ok {
			continue
		}
		seen[e.Origin] = struct{}{}
		origins = append(origins, e.Origin)
	}
	sort.Strings(origins)
	return origins
}

// FilterByOrigin keeps entries whose raw origin tag exactly equals origin.
// The OriginAll sentinel (or an empty filter) returns the input unchanged.
func FilterByOrigin(entries []Entry, origin string) []Entry {
	if origin == "" || origin == OriginAll {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if e.Origin == origin {
			out = append(out, e)
		}
	}
	return out
}

// Search keeps entries whose search key contains the normalized query as a
// substring, preserving order. An empty query returns the input unchanged.
// This is deliberate substring containment, not token or edit-distance
// matching.
func Search(entries []Entry, query string) []Entry {
	q := textnorm.Normalize(query)
	if q == "" {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if strings.Contains(e.SearchKey, q) {
			out = append(out, e)
		}
	}
	return out
}
