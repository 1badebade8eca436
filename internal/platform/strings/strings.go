// Package strings holds small string and slice helpers
package strings

import "unicode/utf8"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// Ptr returns a pointer to s. Unlike a nil pointer, Ptr("") means "present but empty"
func Ptr(s string) *string { return &s }

// Deref returns "" if ps is nil, else *ps
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}

// Truncate cuts s to at most n runes, appending "…" when something was dropped
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos] + "…"
		}
		i++
	}
	return s
}
