// Package services implements the driving port interfaces.
// Services contain the search core and orchestrate calls to driven
// ports (adapters).
//
// The scoring pipeline is Score -> Rank -> Highlight. FuzzyMatch is a
// sub-routine of Score. Controller owns the interactive search state and
// RecentSearches owns the persisted history.
//
// Services are pure Go with no CGO and no I/O of their own.
package services
