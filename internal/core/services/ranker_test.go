package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/handbook/internal/core/domain"
)

func TestRank_BlankQuery(t *testing.T) {
	docs := []domain.Document{listFilesDoc(), copyFilesDoc()}

	for _, q := range []string{"", "   ", "\t\n"} {
		results := Rank(docs, q)
		require.NotNil(t, results)
		assert.Empty(t, results)
	}
}

func TestRank_ExcludesZeroScores(t *testing.T) {
	docs := []domain.Document{listFilesDoc(), copyFilesDoc()}

	results := Rank(docs, "list")

	require.Len(t, results, 1)
	assert.Equal(t, "List Files", results[0].Title)
	assert.Equal(t, 130, results[0].Score)
}

func TestRank_NoMatches(t *testing.T) {
	docs := []domain.Document{listFilesDoc(), copyFilesDoc()}

	results := Rank(docs, "xyz123notfound")

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRank_NormalizesQuery(t *testing.T) {
	docs := []domain.Document{listFilesDoc()}

	assert.Equal(t, Rank(docs, "list"), Rank(docs, "  LIST  "))
}

func TestRank_DescendingOrder(t *testing.T) {
	docs := []domain.Document{
		copyFilesDoc(),
		listFilesDoc(),
		{Title: "Files", Path: []string{"files"}},
	}

	results := Rank(docs, "files")

	require.Len(t, results, 3)
	assert.Equal(t, "Files", results[0].Title)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestRank_TiesKeepCorpusOrder(t *testing.T) {
	docs := []domain.Document{
		{Title: "Tar", Path: []string{"a"}},
		{Title: "Tar", Path: []string{"b"}},
		{Title: "Tar", Path: []string{"c"}},
	}

	results := Rank(docs, "tar")

	require.Len(t, results, 3)
	assert.Equal(t, []string{"a"}, results[0].Path)
	assert.Equal(t, []string{"b"}, results[1].Path)
	assert.Equal(t, []string{"c"}, results[2].Path)
	assert.Equal(t, results[0].Score, results[2].Score)
}

func TestRank_CapsResults(t *testing.T) {
	docs := make([]domain.Document, 0, 20)
	for i := range 20 {
		docs = append(docs, domain.Document{
			Title: fmt.Sprintf("Grep %02d", i),
			Path:  []string{"commands", fmt.Sprintf("grep-%02d", i)},
		})
	}

	results := Rank(docs, "grep")

	require.Len(t, results, domain.MaxResults)
	// All scores tie, so the first fifteen corpus entries survive.
	assert.Equal(t, "Grep 00", results[0].Title)
	assert.Equal(t, "Grep 14", results[domain.MaxResults-1].Title)
}

func TestRank_ResultsCarryTags(t *testing.T) {
	results := Rank([]domain.Document{listFilesDoc()}, "list")

	require.Len(t, results, 1)
	assert.True(t, results[0].Matched(domain.MatchTitleStart))
	assert.False(t, results[0].Matched(domain.MatchExactTitle))
}
