// Package token scans text for word runs. A word rune is a letter, number,
// combining mark (Mn) or connector punctuation (Pc, e.g. underscore); every
// other rune is a boundary
package token

import (
	"unicode"
	"unicode/utf8"
)

// IsWord reports whether r belongs to a word run
func IsWord(r rune) bool {
	if r == utf8.RuneError || r == 0 {
		return false
	}
	return unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.In(r, unicode.Mn, unicode.Pc)
}

// Spans returns the [start,end) byte offsets of every word run in s
func Spans(s string) [][2]int {
	var out [][2]int
	start := -1
	for i, r := range s {
		if IsWord(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, [2]int{start, i})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, [2]int{start, len(s)})
	}
	return out
}

// Words returns the word runs of s in order
func Words(s string) []string {
	sp := Spans(s)
	if len(sp) == 0 {
		return nil
	}
	out := make([]string, len(sp))
	for i, p := range sp {
		out[i] = s[p[0]:p[1]]
	}
	return out
}

// Count returns the number of word runs in s without allocating spans
func Count(s string) int {
	n := 0
	in := false
	for _, r := range s {
		w := IsWord(r)
		if w && !in {
			n++
		}
		in = w
	}
	return n
}

// Bounded reports whether s is non-empty and both its first and last rune are word runes.
// Only such keys can be reached by a whole-word match
func Bounded(s string) bool {
	if s == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	return IsWord(first) && IsWord(last)
}

// BoundaryAt reports whether [start,end) in s sits on word boundaries,
// i.e. the runes just outside the span are not word runes (or are the string edges)
func BoundaryAt(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if IsWord(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if IsWord(r) {
			return false
		}
	}
	return true
}
