package common

import (
	"strings"
)

// SplitQualified splits "a/b/pkg.Name" or "com.example.Name" at the last dot.
// Returns ("", s) when s carries no qualifier.
func SplitQualified(s string) (qualifier, name string) {
	i := strings.LastIndex(s, ".")
	if i < 0 {
		return "", s
	}

	return s[:i], s[i+1:]
}
