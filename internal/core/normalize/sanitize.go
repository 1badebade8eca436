package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// blankRune reports control runes Sanitize turns into a space: NUL, C0, DEL and C1.
// Whitespace controls (\t \n \v \f \r, U+0085) pass through for collapseSpaces
func blankRune(r rune) bool {
	if unicode.IsSpace(r) {
		return false
	}
	return r < 0x20 || r == 0x7F || (r >= 0x80 && r <= 0x9F)
}

// Sanitize drops invalid UTF-8 bytes and replaces other control runes with a space,
// so they still separate words. Clean input is returned as-is without allocating
func Sanitize(s string) string {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || blankRune(r) {
			break
		}
		i += size
	}
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
		case blankRune(r):
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}
