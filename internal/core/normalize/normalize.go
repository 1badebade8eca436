// Package normalize rewrites jejemon (Filipino/English internet slang) text into
// standard word forms.
//
// Pipeline order
// 0 Sanitize drop invalid UTF-8, blank NUL, DEL and non-whitespace control runes
// 1 Optional unicode fold NFKC, strip format runes, fullwidth to ASCII
// 2 Lowercase
// 3 Leet folding, blind and not word aware (see LeetMap)
// 4 Optional repeat squash
// 5 Dictionary substitution on whole words
// 6 Collapse whitespace runs to a single space and trim
package normalize

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"jejenorm/internal/core/ruleset"
)

// Normalizer is immutable after New and safe for concurrent use
type Normalizer struct {
	data    *ruleset.Dataset
	cascade bool
	squash  int
	fold    bool
}

// Option configures a Normalizer
type Option func(*Normalizer)

// WithDataset swaps the embedded dictionary for d. A nil d keeps the default
func WithDataset(d *ruleset.Dataset) Option {
	return func(n *Normalizer) {
		if d != nil {
			n.data = d
		}
	}
}

// WithCascade applies rules one after another over the whole string in dataset order,
// so a later rule can rewrite an earlier rule's output. Off by default
func WithCascade() Option {
	return func(n *Normalizer) { n.cascade = true }
}

// WithSquashRepeats cuts runs of one rune longer than max down to max before the
// dictionary pass ("poooo" -> "poo" with max 2). max < 1 disables it
func WithSquashRepeats(max int) Option {
	return func(n *Normalizer) {
		if max < 1 {
			max = 0
		}
		n.squash = max
	}
}

// WithUnicodeFold runs NFKC, drops format runes (ZWJ, ZWSP, BOM) and folds fullwidth
// forms before lowercasing, so "Ｈ3Ｙ" reads as "hey"
func WithUnicodeFold() Option {
	return func(n *Normalizer) { n.fold = true }
}

// New constructs a Normalizer. Without WithDataset it uses ruleset.Default()
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, o := range opts {
		if o != nil {
			o(n)
		}
	}
	if n.data == nil {
		n.data = ruleset.Default()
	}
	return n
}

// Dataset returns the dictionary in use
func (n *Normalizer) Dataset() *ruleset.Dataset { return n.data }

// Cascade reports whether legacy cascading substitution is on
func (n *Normalizer) Cascade() bool { return n.cascade }

// casers are stateful, so each call borrows one
var lowerPool = sync.Pool{
	New: func() any { return cases.Lower(language.Und) },
}

func lower(s string) string {
	c := lowerPool.Get().(cases.Caser)
	out := c.String(s)
	c.Reset()
	lowerPool.Put(c)
	return out
}

// Normalize returns the normalized form of s. It never fails; "" maps to ""
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = Sanitize(s)
	if n.fold {
		s = unicodeFold(s)
	}
	s = lower(s)
	s = leetFold(s)
	if n.squash > 0 {
		s = squashRuns(s, n.squash)
	}
	if n.cascade {
		s = cascadePass(s, n.data)
	} else {
		s = dictionaryPass(s, n.data)
	}
	return collapseSpaces(s)
}

var (
	defOnce sync.Once
	def     *Normalizer
)

// Default returns the shared Normalizer over the embedded dataset
func Default() *Normalizer {
	defOnce.Do(func() { def = New() })
	return def
}

// Normalize runs the default Normalizer
func Normalize(s string) string { return Default().Normalize(s) }
