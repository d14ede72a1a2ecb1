package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/core/services"
)

// defaultSuggestions is the number of titles the suggest tool returns by default.
const defaultSuggestions = 3

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to rank handbook pages against"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default and maximum 15)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single ranked page.
type SearchResultOutput struct {
	Path        string   `json:"path"`
	URI         string   `json:"uri"`
	Title       string   `json:"title"`
	Marked      string   `json:"marked_title"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	Score       int      `json:"score"`
	MatchedIn   []string `json:"matched_in"`
}

// SuggestInput is the input schema for the suggest tool.
type SuggestInput struct {
	Query string `json:"query" jsonschema:"text to find similar page titles for"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of titles to return (default 3)"`
}

// SuggestOutput is the output schema for the suggest tool.
type SuggestOutput struct {
	Titles []string `json:"titles"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Rank handbook pages by title, category, path and content",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest",
		Description: "Suggest page titles that loosely resemble a query, for queries with no results",
	}, s.handleSuggest)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > domain.MaxResults {
		limit = domain.MaxResults
	}

	results, err := s.ports.Search.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("searching: %w", err)
	}
	if len(results) > limit {
		results = results[:limit]
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		r := &results[i]
		tags := make([]string, len(r.MatchedIn))
		for j, tag := range r.MatchedIn {
			tags[j] = tag.String()
		}
		output.Results[i] = SearchResultOutput{
			Path:        r.Key(),
			URI:         documentURI(r.Path),
			Title:       r.Title,
			Marked:      markSegments(services.Highlight(r.Title, input.Query)),
			Category:    r.Category,
			Description: r.Description,
			Score:       r.Score,
			MatchedIn:   tags,
		}
	}

	return nil, output, nil
}

// handleSuggest handles the suggest tool invocation.
func (s *Server) handleSuggest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultSuggestions
	}

	titles, err := s.ports.Search.Suggest(ctx, input.Query, limit)
	if err != nil {
		return nil, SuggestOutput{}, fmt.Errorf("suggesting: %w", err)
	}
	if titles == nil {
		titles = []string{}
	}
	return nil, SuggestOutput{Titles: titles}, nil
}

// markSegments renders highlighted segments with matched spans in **bold**.
func markSegments(segments []domain.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Matched {
			b.WriteString("**")
			b.WriteString(seg.Text)
			b.WriteString("**")
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}
