package domain

import "strings"

// Document represents a single handbook page.
// Documents are immutable for the lifetime of a search session.
type Document struct {
	// Path is the ordered list of path segments identifying the page.
	// It is unique within a corpus, e.g. ["commands", "list-files"].
	Path []string

	// Title is the human-readable title.
	Title string

	// Description is an optional one-line summary. It is not scored.
	Description string

	// Category groups related pages, usually the top-level directory.
	Category string

	// Body is the page text.
	Body string
}

// Key returns the path joined with "/", suitable as a map key or URL path.
func (d Document) Key() string {
	return strings.Join(d.Path, "/")
}

// SlugText returns the path segments joined with single spaces.
// This is the text the scorer matches against for slug hits.
func (d Document) SlugText() string {
	return strings.Join(d.Path, " ")
}

// SamePath reports whether two paths have identical segments.
func SamePath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ParsePath splits a slash separated path into segments.
// Leading and trailing slashes are ignored.
func ParsePath(s string) []string {
	s = strings.Trim(s, "/")
	if s == "" {
		return nil
	}
	return strings.Split(s, "/")
}
