package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/logger"
)

// Highlight splits text into plain and matched segments for the terms of query.
//
// Terms are the whitespace-separated words of query longer than one
// character, used as case-insensitive patterns. A segment is matched only
// when it equals a term ignoring case. If no terms remain or the pattern
// does not compile, the whole text comes back as one plain segment.
// Joining the segment texts always reproduces text.
func Highlight(text, query string) []domain.Segment {
	plain := []domain.Segment{{Text: text}}

	terms := highlightTerms(query)
	if len(terms) == 0 {
		return plain
	}

	re, err := regexp.Compile("(?i)(" + strings.Join(terms, "|") + ")")
	if err != nil {
		logger.Debug("highlight: pattern for %q: %v", query, err)
		return plain
	}

	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return plain
	}

	segments := make([]domain.Segment, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start == end {
			continue
		}
		if start > last {
			segments = append(segments, domain.Segment{Text: text[last:start]})
		}
		part := text[start:end]
		segments = append(segments, domain.Segment{Text: part, Matched: equalsAnyFold(part, terms)})
		last = end
	}
	if last < len(text) {
		segments = append(segments, domain.Segment{Text: text[last:]})
	}
	if len(segments) == 0 {
		return plain
	}
	return segments
}

func highlightTerms(query string) []string {
	fields := strings.Fields(query)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) > 1 {
			terms = append(terms, f)
		}
	}
	return terms
}

func equalsAnyFold(s string, terms []string) bool {
	for _, t := range terms {
		if strings.EqualFold(s, t) {
			return true
		}
	}
	return false
}
