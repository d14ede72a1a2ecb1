package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoredResult_Matched(t *testing.T) {
	r := ScoredResult{MatchedIn: []MatchTag{MatchTitle, MatchContent}}

	assert.True(t, r.Matched(MatchTitle))
	assert.True(t, r.Matched(MatchContent))
	assert.False(t, r.Matched(MatchFuzzy))
}

func TestScoredResult_EmbedsDocument(t *testing.T) {
	r := ScoredResult{Document: Document{Title: "Shell", Path: []string{"core-concepts", "shell"}}}

	assert.Equal(t, "Shell", r.Title)
	assert.Equal(t, "core-concepts/shell", r.Key())
}

func TestMatchTag_String(t *testing.T) {
	assert.Equal(t, "exact-title", MatchExactTitle.String())
	assert.Equal(t, "title-start", MatchTitleStart.String())
	assert.Equal(t, "slug", MatchSlug.String())
	assert.Equal(t, "fuzzy", MatchFuzzy.String())
}

func TestJoinSegments(t *testing.T) {
	segments := []Segment{
		{Text: "List", Matched: true},
		{Text: " Files"},
	}

	assert.Equal(t, "List Files", JoinSegments(segments))
	assert.Equal(t, "", JoinSegments(nil))
}
