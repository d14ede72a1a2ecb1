package services

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/core/ports/driven"
	"github.com/custodia-labs/handbook/internal/core/ports/driving"
	"github.com/custodia-labs/handbook/internal/logger"
)

// Ensure RecentSearches implements the interface.
var _ driving.RecentSearchService = (*RecentSearches)(nil)

// RecentSearches is the bounded, de-duplicated recent-search history.
//
// The list is persisted as a JSON array under domain.RecentSearchesKey.
// Every storage failure is logged and swallowed; the in-memory list keeps
// the intended state for the session. It is meant to be used from a single
// goroutine.
type RecentSearches struct {
	store driven.KVStore
	items []string
}

// NewRecentSearches creates the history and loads it from store.
// A nil store keeps the history in memory only.
func NewRecentSearches(store driven.KVStore) *RecentSearches {
	r := &RecentSearches{store: store}
	r.Load()
	return r
}

// Record puts the trimmed query at the front of the history.
// Queries shorter than domain.MinRecentQueryLen are ignored.
func (r *RecentSearches) Record(query string) {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < domain.MinRecentQueryLen {
		return
	}

	updated := make([]string, 0, domain.MaxRecentSearches)
	updated = append(updated, trimmed)
	for _, s := range r.items {
		if s != trimmed {
			updated = append(updated, s)
		}
	}
	if len(updated) > domain.MaxRecentSearches {
		updated = updated[:domain.MaxRecentSearches]
	}

	r.items = updated
	r.persist()
}

// Remove deletes the entry exactly equal to query.
func (r *RecentSearches) Remove(query string) {
	updated := make([]string, 0, len(r.items))
	for _, s := range r.items {
		if s != query {
			updated = append(updated, s)
		}
	}
	r.items = updated
	r.persist()
}

// Clear empties the history and deletes the backing entry.
func (r *RecentSearches) Clear() {
	r.items = []string{}
	if r.store == nil {
		return
	}
	if err := r.store.Delete(domain.RecentSearchesKey); err != nil {
		logger.Warn("Recent searches: clear failed: %v", err)
	}
}

// Load re-reads the history from storage.
// A missing or corrupted entry yields an empty history. If the store
// cannot be read at all, the in-memory history is kept.
func (r *RecentSearches) Load() []string {
	if r.store == nil {
		return r.List()
	}

	raw, err := r.store.Get(domain.RecentSearchesKey)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		r.items = []string{}
	case err != nil:
		logger.Warn("Recent searches: read failed: %v", err)
	default:
		r.items = decodeRecent(raw)
	}
	return r.List()
}

// List returns a copy of the in-memory history, most recent first.
func (r *RecentSearches) List() []string {
	out := make([]string, len(r.items))
	copy(out, r.items)
	return out
}

func (r *RecentSearches) persist() {
	if r.store == nil {
		return
	}
	data, err := json.Marshal(r.items)
	if err != nil {
		logger.Warn("Recent searches: encode failed: %v", err)
		return
	}
	if err := r.store.Set(domain.RecentSearchesKey, string(data)); err != nil {
		logger.Warn("Recent searches: write failed: %v", err)
	}
}

// decodeRecent parses a stored history, dropping anything that would break
// the list invariants: non-string entries, duplicates and overflow.
func decodeRecent(raw string) []string {
	var values []any
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		logger.Warn("Recent searches: corrupted entry ignored: %v", err)
		return []string{}
	}

	items := make([]string, 0, domain.MaxRecentSearches)
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok || seen[s] {
			continue
		}
		seen[s] = true
		items = append(items, s)
		if len(items) == domain.MaxRecentSearches {
			break
		}
	}
	return items
}
