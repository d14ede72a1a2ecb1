package driving

// RecentSearchService manages the bounded recent-search history.
// None of its methods fail: storage problems degrade to an in-memory list.
type RecentSearchService interface {
	// Record adds query to the front of the history.
	Record(query string)

	// Remove deletes the entry equal to query.
	Remove(query string)

	// Clear empties the history.
	Clear()

	// Load re-reads the history from storage and returns it.
	Load() []string

	// List returns the current in-memory history, most recent first.
	List() []string
}
