package driven

import (
	"context"

	"github.com/custodia-labs/handbook/internal/core/domain"
)

// CorpusProvider supplies the documents available to search.
// The returned order is the corpus order and breaks ranking ties.
type CorpusProvider interface {
	// Documents returns every document in corpus order.
	Documents(ctx context.Context) ([]domain.Document, error)
}
