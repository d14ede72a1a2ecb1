// Package domain defines the core search entities for the handbook.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A handbook page supplied by the corpus provider
//   - ScoredResult: A document with its relevance score and match tags
//   - Segment: A plain or matched span produced by highlighting
//   - KeyAction: A keyboard intent understood by the search controller
//   - Settings: User-tunable configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
