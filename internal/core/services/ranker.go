package services

import (
	"sort"

	"github.com/custodia-labs/handbook/internal/core/domain"
)

// Rank scores every document against query and returns the matches,
// best first, capped at domain.MaxResults. Equal scores keep corpus order.
// A blank query returns an empty slice.
func Rank(docs []domain.Document, query string) []domain.ScoredResult {
	query = NormalizeQuery(query)
	if query == "" {
		return []domain.ScoredResult{}
	}

	results := make([]domain.ScoredResult, 0, len(docs))
	for _, doc := range docs {
		score, tags := Score(doc, query)
		if score <= 0 {
			continue
		}
		results = append(results, domain.ScoredResult{
			Document:  doc,
			Score:     score,
			MatchedIn: tags,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > domain.MaxResults {
		results = results[:domain.MaxResults]
	}
	return results
}
