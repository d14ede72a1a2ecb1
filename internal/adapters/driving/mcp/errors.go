// Package mcp provides an MCP (Model Context Protocol) server adapter for the handbook.
// It lets AI assistants search the handbook and read its pages.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
