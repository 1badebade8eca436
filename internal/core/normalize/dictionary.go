package normalize

import (
	"strings"
	"unicode/utf8"

	"jejenorm/internal/core/ruleset"
	"jejenorm/internal/core/token"
)

// dictionaryPass substitutes in one left to right sweep. At each word it tries the
// longest literal span of up to MaxWords word runs, separators included, and
// emits the replacement on a hit. Emitted replacements are never looked at again
func dictionaryPass(s string, d *ruleset.Dataset) string {
	maxw := d.MaxWords()
	if s == "" || maxw == 0 {
		return s
	}
	spans := token.Spans(s)
	if len(spans) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	last := 0
	for i := 0; i < len(spans); {
		width := min(maxw, len(spans)-i)
		hit := 0
		var repl string
		for k := width; k >= 1; k-- {
			if v, ok := d.Lookup(s[spans[i][0]:spans[i+k-1][1]]); ok {
				hit, repl = k, v
				break
			}
		}
		if hit == 0 {
			i++
			continue
		}
		start, end := spans[i][0], spans[i+hit-1][1]
		b.WriteString(s[last:start])
		b.WriteString(repl)
		last = end
		i += hit
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// cascadePass replaces each rule's key everywhere it stands as a whole word, one rule
// at a time in dataset order. Output of one rule is input to the next
func cascadePass(s string, d *ruleset.Dataset) string {
	for _, r := range d.Rules() {
		if r.Identity() {
			continue
		}
		s = replaceWord(s, r.Slang, r.Norm)
	}
	return s
}

// replaceWord replaces non-overlapping whole-word occurrences of key, scanning left to right
func replaceWord(s, key, repl string) string {
	if key == "" || !strings.Contains(s, key) {
		return s
	}
	var b strings.Builder
	last, pos := 0, 0
	for pos <= len(s)-len(key) {
		j := strings.Index(s[pos:], key)
		if j < 0 {
			break
		}
		start := pos + j
		end := start + len(key)
		if token.BoundaryAt(s, start, end) {
			b.WriteString(s[last:start])
			b.WriteString(repl)
			last, pos = end, end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		pos = start + size
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}
