package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/core/ports/driven"
	"github.com/custodia-labs/handbook/internal/core/ports/driving"
	"github.com/custodia-labs/handbook/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService ranks queries against a corpus loaded once per session.
type SearchService struct {
	corpus driven.CorpusProvider

	mu     sync.Mutex
	docs   []domain.Document
	loaded bool
}

// NewSearchService creates a search service over the given corpus provider.
// The corpus is read lazily on first use and then kept for the session.
func NewSearchService(corpus driven.CorpusProvider) *SearchService {
	return &SearchService{corpus: corpus}
}

// load returns the session corpus, reading it from the provider once.
// A failed read is not cached so a later call can retry.
func (s *SearchService) load(ctx context.Context) ([]domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.docs, nil
	}
	if s.corpus == nil {
		return nil, domain.ErrCorpusUnavailable
	}

	docs, err := s.corpus.Documents(ctx)
	if err != nil {
		logger.Warn("Corpus load failed: %v", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrCorpusUnavailable, err)
	}

	s.docs = docs
	s.loaded = true
	logger.Info("Corpus loaded: %d documents", len(docs))
	return s.docs, nil
}

// Search ranks the corpus against query.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.ScoredResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	if strings.TrimSpace(query) == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.ScoredResult{}, nil
	}

	docs, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	results := Rank(docs, query)
	logger.Debug("Ranked %d of %d documents", len(results), len(docs))
	return results, nil
}

// Documents returns the corpus in corpus order.
func (s *SearchService) Documents(ctx context.Context) ([]domain.Document, error) {
	docs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Document, len(docs))
	copy(out, docs)
	return out, nil
}

// Document returns the document with the given path.
func (s *SearchService) Document(ctx context.Context, path []string) (*domain.Document, error) {
	docs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if domain.SamePath(docs[i].Path, path) {
			doc := docs[i]
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Suggest returns up to limit document titles that contain the characters
// of query in order. Better matches come first.
func (s *SearchService) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	query = NormalizeQuery(query)
	if query == "" || limit <= 0 {
		return nil, nil
	}

	docs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	matches := fuzzy.FindFrom(query, documentTitles(docs))
	if len(matches) > limit {
		matches = matches[:limit]
	}

	titles := make([]string, len(matches))
	for i, m := range matches {
		titles[i] = m.Str
	}
	return titles, nil
}

// documentTitles implements fuzzy.Source over document titles.
type documentTitles []domain.Document

func (d documentTitles) String(i int) string {
	return d[i].Title
}

func (d documentTitles) Len() int {
	return len(d)
}
