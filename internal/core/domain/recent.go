package domain

const (
	// RecentSearchesKey is the storage key holding the recent-search list.
	RecentSearchesKey = "cli-handbook-recent-searches"

	// MaxRecentSearches bounds the length of the recent-search list.
	MaxRecentSearches = 6

	// MinRecentQueryLen is the minimum trimmed length of a recordable query.
	MinRecentQueryLen = 2
)
