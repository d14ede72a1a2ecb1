package services

import (
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/handbook/internal/core/domain"
)

// Scoring rule points.
const (
	pointsExactTitle = 100
	pointsTitleStart = 50
	pointsTitle      = 30
	pointsCategory   = 20
	pointsSlug       = 15
	pointsTitleTerm  = 10
	pointsWordStart  = 15
	pointsPerContent = 2
	maxContentPoints = 20
	pointsFuzzy      = 8

	minTermLen = 2
)

// NormalizeQuery lower-cases and trims a raw query.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// tagSet collects match tags once each, preserving first-fired order.
type tagSet []domain.MatchTag

func (s *tagSet) add(tag domain.MatchTag) {
	for _, t := range *s {
		if t == tag {
			return
		}
	}
	*s = append(*s, tag)
}

// Score computes the relevance of doc for an already normalized query.
// It returns the total points and the de-duplicated match tags.
func Score(doc domain.Document, query string) (int, []domain.MatchTag) {
	if query == "" {
		return 0, nil
	}

	title := strings.ToLower(doc.Title)
	body := strings.ToLower(doc.Body)
	category := strings.ToLower(doc.Category)
	slug := strings.ToLower(doc.SlugText())
	titleWords := strings.Fields(title)

	score := 0
	var tags tagSet

	if title == query {
		score += pointsExactTitle
		tags.add(domain.MatchExactTitle)
	}
	if strings.HasPrefix(title, query) {
		score += pointsTitleStart
		tags.add(domain.MatchTitleStart)
	}
	if strings.Contains(title, query) {
		score += pointsTitle
		tags.add(domain.MatchTitle)
	}
	if strings.Contains(category, query) {
		score += pointsCategory
		tags.add(domain.MatchCategory)
	}
	if strings.Contains(slug, query) {
		score += pointsSlug
		tags.add(domain.MatchSlug)
	}

	for _, term := range strings.Fields(query) {
		if utf8.RuneCountInString(term) < minTermLen {
			continue
		}
		if strings.Contains(title, term) {
			score += pointsTitleTerm
			tags.add(domain.MatchTitleTerm)
		}
		if anyHasPrefix(titleWords, term) {
			score += pointsWordStart
		}
		if n := strings.Count(body, term); n > 0 {
			score += min(n*pointsPerContent, maxContentPoints)
			tags.add(domain.MatchContent)
		}
	}

	for _, word := range titleWords {
		if FuzzyMatch(word, query) {
			score += pointsFuzzy
			tags.add(domain.MatchFuzzy)
		}
	}

	return score, tags
}

func anyHasPrefix(words []string, prefix string) bool {
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}
