package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		name  string
		word  string
		query string
		want  bool
	}{
		{"one dropped letter", "permissions", "permisions", true},
		{"identical", "shell", "shell", true},
		{"empty query", "shell", "", true},
		{"prefix", "extension", "exten", true},
		{"skip within budget", "files", "fles", true},
		{"multibyte runes", "naïve", "naïve", true},
		{"no budget for short query", "list", "lst", false},
		{"budget exceeded", "listing", "lstn", false},
		{"query longer than word", "ls", "lsxyz", false},
		{"trailing mismatch exhausts word", "abcdefgh", "abcdefgx", false},
		{"too many skips", "abcdefgh", "aceg", false},
		{"unrelated", "copy", "list", false},
		{"empty word", "", "ls", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FuzzyMatch(tt.word, tt.query))
		})
	}
}

func TestFuzzyMatch_Asymmetric(t *testing.T) {
	// Extra characters in the word are tolerated, extra characters in the query are not.
	assert.True(t, FuzzyMatch("permissions", "permisions"))
	assert.False(t, FuzzyMatch("permisions", "permissions"))
}
