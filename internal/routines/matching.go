package routines

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// matchCutoff is the minimum normalized similarity for a fuzzy catalog match.
const matchCutoff = 0.6

// FindProductURL resolves a product name to its purchase URL. Exact catalog
// names resolve directly; otherwise the closest catalog name by normalized
// edit distance wins, provided it clears the cutoff. Returns an empty string
// when no catalog entry is close enough.
func FindProductURL(name string) string {
	if url, ok := productLinks[name]; ok {
		return url
	}

	var (
		bestURL   string
		bestScore float64
	)
	for candidate, url := range productLinks {
		if score := similarity(name, candidate); score > bestScore {
			bestScore = score
			bestURL = url
		}
	}

	if bestScore >= matchCutoff {
		return bestURL
	}
	return ""
}

// similarity computes 1 - distance/maxLen over runes, yielding a score in
// [0, 1] where 1 is an exact match.
func similarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}

	distance := levenshtein.ComputeDistance(a, b)
	return 1 - float64(distance)/float64(longest)
}
