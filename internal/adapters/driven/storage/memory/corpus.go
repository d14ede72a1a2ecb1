package memory

import (
	"context"

	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/core/ports/driven"
)

// Ensure Corpus implements the interface.
var _ driven.CorpusProvider = (*Corpus)(nil)

// Corpus is a fixed, in-memory document corpus.
type Corpus struct {
	docs []domain.Document
}

// NewCorpus creates a corpus serving docs in the given order.
func NewCorpus(docs ...domain.Document) *Corpus {
	out := make([]domain.Document, len(docs))
	copy(out, docs)
	return &Corpus{docs: out}
}

// Documents returns the corpus in order.
func (c *Corpus) Documents(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Document, len(c.docs))
	copy(out, c.docs)
	return out, nil
}
