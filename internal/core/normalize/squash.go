package normalize

import (
	"strings"
	"unicode"
)

// squashRuns keeps at most max consecutive copies of any rune
func squashRuns(s string, max int) string {
	if s == "" || max < 1 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	var prev rune = -1
	count := 0
	for _, r := range s {
		if r == prev {
			count++
			if count > max {
				continue
			}
		} else {
			prev, count = r, 1
		}
		b.WriteRune(r)
	}
	return b.String()
}

// collapseSpaces turns every whitespace run, line breaks included, into one ASCII space and trims the edges
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
