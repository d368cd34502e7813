package match

import (
	"strings"
	"unicode"
)

// boundaries end a word. Besides the usual separators this covers the
// qualifiers found in annotation and element names: package dots, path
// slashes, nested types (Outer$Inner) and members (Owner#member).
const boundaries = "._-/$# "

// NormalizeIdent folds a name to its lower-cased words with every boundary
// removed, so "org.x.GetMapping", "get_mapping" and "GETMapping" compare
// on their letters alone.
func NormalizeIdent(s string) string {
	return strings.ToLower(strings.Join(Words(s), ""))
}

// Words splits a name into words at boundaries and case changes:
//
//	"org.example.GetMapping"      -> [org example Get Mapping]
//	"Outer$Inner#requestURL"      -> [Outer Inner request URL]
//	"XMLHttpRequest"              -> [XML Http Request]
func Words(name string) []string {
	runes := []rune(name)

	var words []string

	start := -1
	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}

		start = -1
	}

	for i, r := range runes {
		if isBoundary(r) {
			flush(i)
			continue
		}

		if start >= 0 && caseBreak(runes, i) {
			flush(i)
		}

		if start < 0 {
			start = i
		}
	}

	flush(len(runes))

	return words
}

func isBoundary(r rune) bool {
	return strings.ContainsRune(boundaries, r)
}

// caseBreak reports whether runes[i] opens a new word inside a run of
// non-boundary runes. runes[i-1] is part of the current word.
func caseBreak(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	// "requestID": lower or digit followed by upper
	if !unicode.IsUpper(runes[i-1]) {
		return true
	}

	// "XMLParser": the last upper of an acronym starts the next word
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
