package mcp

import (
	"github.com/custodia-labs/handbook/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides ranking and document lookup.
	Search driving.SearchService

	// Recent exposes the recent-search history. Optional.
	Recent driving.RecentSearchService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
