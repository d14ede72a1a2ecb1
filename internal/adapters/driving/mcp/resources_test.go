package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/handbook/internal/core/domain"
)

func testDocuments() []domain.Document {
	return []domain.Document{
		{
			Path:        []string{"commands", "list-files"},
			Title:       "List Files",
			Category:    "commands",
			Description: "Show directory contents",
			Body:        "# List Files\n\nUse `ls`.",
		},
		{
			Path:     []string{"intro"},
			Title:    "Introduction",
			Category: "intro",
			Body:     "Welcome.",
		},
	}
}

func TestExtractDocumentPath(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected []string
	}{
		{
			name:     "nested path",
			uri:      "handbook://documents/commands/list-files",
			expected: []string{"commands", "list-files"},
		},
		{
			name:     "single segment",
			uri:      "handbook://documents/intro",
			expected: []string{"intro"},
		},
		{
			name:     "trailing slash",
			uri:      "handbook://documents/intro/",
			expected: []string{"intro"},
		},
		{
			name:     "invalid prefix",
			uri:      "file://documents/intro",
			expected: nil,
		},
		{
			name:     "no path",
			uri:      "handbook://documents/",
			expected: nil,
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractDocumentPath(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDocumentURI(t *testing.T) {
	assert.Equal(t, "handbook://documents/commands/list-files", documentURI([]string{"commands", "list-files"}))
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleDocumentsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns documents in corpus order", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{documents: testDocuments()}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("handbook://documents")
		result, err := server.handleDocumentsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var infos []documentInfo
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
		require.Len(t, infos, 2)
		assert.Equal(t, "commands/list-files", infos[0].Path)
		assert.Equal(t, "handbook://documents/commands/list-files", infos[0].URI)
		assert.Equal(t, "Show directory contents", infos[0].Description)
		assert.Equal(t, "intro", infos[1].Path)
	})

	t.Run("handles empty corpus", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{documents: []domain.Document{}}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("handbook://documents")
		result, err := server.handleDocumentsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{err: errors.New("disk error")}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("handbook://documents")
		_, err = server.handleDocumentsResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing documents")
	})
}

func TestServer_handleRecentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil recent service returns empty list", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)

		result, err := server.handleRecentResource(ctx, makeReadResourceRequest("handbook://recent"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns history most recent first", func(t *testing.T) {
		recent := &mockRecentService{items: []string{"git", "ls"}}
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Recent: recent})
		require.NoError(t, err)

		result, err := server.handleRecentResource(ctx, makeReadResourceRequest("handbook://recent"))

		require.NoError(t, err)
		var items []string
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &items))
		assert.Equal(t, []string{"git", "ls"}, items)
	})
}

func TestServer_handleDocumentContentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns markdown body", func(t *testing.T) {
		mockSearch := &mockSearchService{documents: testDocuments()}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		req := makeReadResourceRequest("handbook://documents/commands/list-files")
		result, err := server.handleDocumentContentResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "# List Files\n\nUse `ls`.", result.Contents[0].Text)
		assert.Equal(t, "text/markdown", result.Contents[0].MIMEType)
		assert.Equal(t, []string{"commands", "list-files"}, mockSearch.lastPath)
	})

	t.Run("invalid URI returns not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)

		req := makeReadResourceRequest("handbook://invalid/uri")
		_, err = server.handleDocumentContentResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("unknown page returns not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{documents: testDocuments()}})
		require.NoError(t, err)

		req := makeReadResourceRequest("handbook://documents/missing")
		_, err = server.handleDocumentContentResource(ctx, req)

		require.Error(t, err)
		assert.NotContains(t, err.Error(), "getting document content")
	})

	t.Run("returns error on lookup failure", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{err: domain.ErrCorpusUnavailable}})
		require.NoError(t, err)

		req := makeReadResourceRequest("handbook://documents/intro")
		_, err = server.handleDocumentContentResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "getting document content")
		assert.ErrorIs(t, err, domain.ErrCorpusUnavailable)
	})
}
