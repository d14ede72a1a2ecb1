// Package tui provides an interactive terminal user interface for the handbook.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/handbook/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search ranks queries and serves the corpus.
	Search driving.SearchService

	// Recent holds the recent-search history. Optional.
	Recent driving.RecentSearchService

	// Settings supplies the debounce interval. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.SearchService,
	recent driving.RecentSearchService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Search:   search,
		Recent:   recent,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
