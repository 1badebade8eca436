package normalize

import (
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// chains are stateful, reset before going back to the pool
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)), // ZWJ ZWNJ ZWSP FEFF
			width.Fold,
		)
	},
}

// unicodeFold maps compatibility forms to their plain letters. Combining marks are kept,
// they are part of words
func unicodeFold(s string) string {
	tr := foldPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	foldPool.Put(tr)
	if err != nil {
		return s
	}
	return out
}
