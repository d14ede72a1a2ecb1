package mcp

import (
	"context"

	"github.com/custodia-labs/handbook/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results     []domain.ScoredResult
	documents   []domain.Document
	suggestions []string
	err         error

	lastPath []string
}

func (m *mockSearchService) Search(_ context.Context, _ string) ([]domain.ScoredResult, error) {
	return m.results, m.err
}

func (m *mockSearchService) Documents(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockSearchService) Document(_ context.Context, path []string) (*domain.Document, error) {
	m.lastPath = path
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.documents {
		if domain.SamePath(m.documents[i].Path, path) {
			doc := m.documents[i]
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockSearchService) Suggest(_ context.Context, _ string, limit int) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.suggestions) > limit {
		return m.suggestions[:limit], nil
	}
	return m.suggestions, nil
}

// mockRecentService is a mock implementation of driving.RecentSearchService.
type mockRecentService struct {
	items []string
}

func (m *mockRecentService) Record(q string) { m.items = append([]string{q}, m.items...) }
func (m *mockRecentService) Remove(_ string) {}
func (m *mockRecentService) Clear() { m.items = nil }
func (m *mockRecentService) Load() []string { return m.items }
func (m *mockRecentService) List() []string { return m.items }
