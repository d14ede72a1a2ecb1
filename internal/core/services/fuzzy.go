package services

// FuzzyMatch reports whether query approximately matches word.
//
// The query must appear in word as a subsequence with at most
// len(query)/4 word characters skipped. Extra characters in word are
// tolerated; extra characters in query are not. An empty query matches.
func FuzzyMatch(word, query string) bool {
	w := []rune(word)
	q := []rune(query)
	budget := len(q) / 4

	skipped := 0
	j := 0
	for _, c := range q {
		for j < len(w) && w[j] != c {
			skipped++
			j++
			if skipped > budget {
				return false
			}
		}
		if j == len(w) {
			return false
		}
		j++
	}
	return true
}
