package domain

// MaxResults caps the number of ranked results returned for a query.
const MaxResults = 15

// MatchTag labels the scoring rule that fired for a document.
// Tags are informational; ranking only uses the score.
type MatchTag string

// Match-reason tags, in the order the scorer can emit them.
const (
	MatchExactTitle MatchTag = "exact-title"
	MatchTitleStart MatchTag = "title-start"
	MatchTitle      MatchTag = "title"
	MatchCategory   MatchTag = "category"
	MatchSlug       MatchTag = "slug"
	MatchTitleTerm  MatchTag = "title-term"
	MatchContent    MatchTag = "content"
	MatchFuzzy      MatchTag = "fuzzy"
)

// String returns the string representation.
func (t MatchTag) String() string {
	return string(t)
}

// ScoredResult is a document paired with its relevance for one query.
// Results are created per query and never persisted.
type ScoredResult struct {
	Document

	// Score is the sum of all applicable rule points. Never negative.
	Score int

	// MatchedIn holds each triggered tag once, in firing order.
	MatchedIn []MatchTag
}

// Matched reports whether the given tag fired for this result.
func (r ScoredResult) Matched(tag MatchTag) bool {
	for _, t := range r.MatchedIn {
		if t == tag {
			return true
		}
	}
	return false
}

// Segment is one span of highlighted text.
type Segment struct {
	Text    string
	Matched bool
}

// JoinSegments concatenates segment texts back into the original string.
func JoinSegments(segments []Segment) string {
	n := 0
	for _, s := range segments {
		n += len(s.Text)
	}
	buf := make([]byte, 0, n)
	for _, s := range segments {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}
