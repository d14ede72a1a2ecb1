package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/handbook/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for handbook resources.
	uriScheme = "handbook://"

	documentsURI = uriScheme + "documents"
	recentURI    = uriScheme + "recent"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the contents.
	s.server.AddResource(&mcp.Resource{
		URI:         documentsURI,
		Name:        "documents",
		Description: "All handbook pages in navigation order",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)

	// Static resource for the recent-search history.
	s.server.AddResource(&mcp.Resource{
		URI:         recentURI,
		Name:        "recent-searches",
		Description: "Recently confirmed searches, most recent first",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// Template for page bodies. Paths contain slashes, hence reserved expansion.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: documentsURI + "/{+path}",
		Name:        "document-content",
		Description: "Markdown body of a handbook page",
		MIMEType:    "text/markdown",
	}, s.handleDocumentContentResource)
}

// documentInfo is the listing entry for one page.
type documentInfo struct {
	Path        string `json:"path"`
	URI         string `json:"uri"`
	Title       string `json:"title"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// handleDocumentsResource lists every page in the corpus.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	docs, err := s.ports.Search.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	infos := make([]documentInfo, len(docs))
	for i := range docs {
		infos[i] = documentInfo{
			Path:        docs[i].Key(),
			URI:         documentURI(docs[i].Path),
			Title:       docs[i].Title,
			Category:    docs[i].Category,
			Description: docs[i].Description,
		}
	}

	return jsonResult(req.Params.URI, infos, "documents")
}

// handleRecentResource returns the recent-search history.
func (s *Server) handleRecentResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	items := []string{}
	if s.ports.Recent != nil {
		items = append(items, s.ports.Recent.Load()...)
	}
	return jsonResult(req.Params.URI, items, "recent searches")
}

// handleDocumentContentResource returns the body of one page.
func (s *Server) handleDocumentContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract path from URI: handbook://documents/{path}
	path := extractDocumentPath(req.Params.URI)
	if len(path) == 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Search.Document(ctx, path)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting document content: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     doc.Body,
		}},
	}, nil
}

// jsonResult wraps v as a single JSON resource content.
func jsonResult(uri string, v any, what string) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", what, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// documentURI returns the resource URI for a page path.
func documentURI(path []string) string {
	return documentsURI + "/" + strings.Join(path, "/")
}

// extractDocumentPath extracts the page path from a URI like handbook://documents/{path}.
func extractDocumentPath(uri string) []string {
	const prefix = documentsURI + "/"

	if !strings.HasPrefix(uri, prefix) {
		return nil
	}

	return domain.ParsePath(strings.TrimPrefix(uri, prefix))
}
