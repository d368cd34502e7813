package match

import (
	"slices"
	"strings"
)

// MinSimilarity is the lowest NameSimilarity reported by Suggest.
const MinSimilarity = 0.6

type scored struct {
	name  string
	score float64
}

// Suggest ranks candidates by similarity to name and returns up to limit of
// them, best first. Qualified names ("org.example.GetMapping") are compared
// by their last segment. Exact matches are skipped.
func Suggest(name string, candidates []string, limit int) []string {
	if name == "" || limit <= 0 {
		return nil
	}

	want := lastSegment(name)

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := NameSimilarity(want, lastSegment(c))
		if score < MinSimilarity {
			continue
		}

		ranked = append(ranked, scored{name: c, score: score})
	}

	// Sort by score (descending); stable keeps candidate order on ties
	slices.SortStableFunc(ranked, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, s := range ranked[:min(limit, len(ranked))] {
		out = append(out, s.name)
	}

	return out
}

func lastSegment(s string) string {
	if i := strings.LastIndexAny(s, "./"); i >= 0 {
		return s[i+1:]
	}

	return s
}
