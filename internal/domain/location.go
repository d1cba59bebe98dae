package domain

import "strings"

// NormalizeArea prepares a state/zone code for the alerts endpoint:
// surrounding whitespace is dropped and the code is upper-cased. Returns ""
// for empty or whitespace-only input.
func NormalizeArea(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NormalizeCity trims surrounding whitespace only. City names keep their
// case and are percent-escaped when the request URL is built, not here.
func NormalizeCity(raw string) string {
	return strings.TrimSpace(raw)
}
