package common

import (
	"strings"
	"unicode"
)

// UnknownStr is the String() fallback for out-of-range enum values.
const UnknownStr = "unknown"

// LowerFirst returns s with its first rune lower-cased ("Path" -> "path").
// A leading acronym is lowered as a whole ("URLPattern" -> "urlPattern").
func LowerFirst(s string) string {
	runes := []rune(s)

	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}

	if n == 0 {
		return s
	}

	// keep the last upper rune of an acronym as the start of the next word
	if n > 1 && n < len(runes) {
		n--
	}

	return strings.ToLower(string(runes[:n])) + string(runes[n:])
}
