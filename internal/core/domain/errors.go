package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorpusUnavailable indicates the document corpus could not be loaded.
	ErrCorpusUnavailable = errors.New("corpus unavailable")

	// ErrStorageUnavailable indicates the key-value store cannot be reached.
	// The recent-search history degrades to empty when this happens.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
