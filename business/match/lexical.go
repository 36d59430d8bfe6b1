package match

import (
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Candidates whose normalized edit distance exceeds this threshold are
// treated as not matched at all.
const nameMatchThreshold = 0.4

// nameDistance fuzzy-matches the query item name against a candidate name
// and returns a normalized distance in [0, 1], where 0 is a perfect match
// and 1 means no usable match. Matching is case- and diacritic-folding.
//
// An empty query name deterministically scores every non-empty candidate
// as unmatched (distance 1), since the edit distance then equals the full
// candidate length.
func nameDistance(query, candidate string) float64 {
	longer := utf8.RuneCountInString(query)
	if n := utf8.RuneCountInString(candidate); n > longer {
		longer = n
	}
	if longer == 0 {
		return 0
	}

	rank := fuzzy.RankMatchNormalizedFold(query, candidate)
	if rank < 0 {
		return 1
	}

	dist := float64(rank) / float64(longer)
	if dist > nameMatchThreshold {
		return 1
	}

	return dist
}
