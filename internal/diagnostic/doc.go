// Package diagnostic provides structured errors, warnings, and infos
// reported while loading and checking annotation models.
//
// Key capabilities:
//   - Duplicate declaration errors
//   - Unresolvable alias target warnings with "did you mean" suggestions
//   - Undeclared attribute reports for annotation instances
package diagnostic
