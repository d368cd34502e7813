package match

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-character edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return len(b)
	case b == "":
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity returns 1 - distance/max(len(a), len(b)); 1.0 means identical.
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(max(len(a), len(b)))
}

// NameSimilarity compares two identifiers after NormalizeIdent.
func NameSimilarity(a, b string) float64 {
	return Similarity(NormalizeIdent(a), NormalizeIdent(b))
}
