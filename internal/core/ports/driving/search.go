package driving

import (
	"context"

	"github.com/custodia-labs/handbook/internal/core/domain"
)

// SearchService provides search over the loaded handbook corpus.
type SearchService interface {
	// Search ranks the corpus against query. A blank query returns no results.
	Search(ctx context.Context, query string) ([]domain.ScoredResult, error)

	// Documents returns the corpus in its original order.
	Documents(ctx context.Context) ([]domain.Document, error)

	// Document returns the document at path or domain.ErrNotFound.
	Document(ctx context.Context, path []string) (*domain.Document, error)

	// Suggest returns up to limit titles that loosely resemble query.
	// It is used to offer alternatives when a search has no results.
	Suggest(ctx context.Context, query string, limit int) ([]string, error)
}
