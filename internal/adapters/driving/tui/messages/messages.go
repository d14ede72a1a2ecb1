// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/core/services"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDocuments lists the corpus in navigation order.
	ViewDocuments ViewType = iota
	// ViewSearch is the search surface opened with ctrl+k.
	ViewSearch
	// ViewDocContent shows a single document.
	ViewDocContent
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDocuments:
		return "documents"
	case ViewSearch:
		return "search"
	case ViewDocContent:
		return "doc_content"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// QueryDebounced fires once the typing pause after a keystroke has elapsed.
// Generation identifies the keystroke; stale generations are ignored.
type QueryDebounced struct {
	Generation services.Generation
}

// DocumentsLoaded carries the corpus in navigation order.
type DocumentsLoaded struct {
	Documents []domain.Document
	Err       error
}

// DocumentOpened carries a document resolved from a navigation intent.
type DocumentOpened struct {
	Path     []string
	Document *domain.Document
	Err      error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
