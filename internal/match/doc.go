// Package match provides name normalization, Levenshtein distance calculation,
// and ranked "did you mean" suggestions for annotation type and attribute
// names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names against a misspelled one
package match
