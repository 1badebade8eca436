// Package sentiment classifies text as positive or negative by counting keyword hits.
//
// The text is lowercased and split into word runs (letters, digits, underscore).
// Each run found in the positive or negative keyword set adds one to that side,
// repeats included. Negative wins only when it has strictly more hits, so ties and
// keyword-free text come out positive. There is no neutral label.
//
// Analysis runs on raw text, not on normalizer output. Safe for concurrent use.
package sentiment

import (
	"fmt"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"jejenorm/internal/core/token"
)

// Label is the binary sentiment class
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
)

// Valid reports whether l is one of the two labels
func (l Label) Valid() bool { return l == Positive || l == Negative }

// ParseLabel converts a wire value back into a Label
func ParseLabel(s string) (Label, error) {
	l := Label(s)
	if !l.Valid() {
		return "", fmt.Errorf("sentiment: unknown label %q", s)
	}
	return l, nil
}

// Result holds the counts behind a label
type Result struct {
	Label    Label `json:"label"`
	Positive int   `json:"positive"` // positive keyword hits
	Negative int   `json:"negative"` // negative keyword hits
	Total    int   `json:"total"`    // word runs scanned
}

// String returns a debug representation of the result
func (r Result) String() string {
	return fmt.Sprintf("%s(pos=%d, neg=%d, total=%d)", r.Label, r.Positive, r.Negative, r.Total)
}

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

// Analyze counts keyword hits in text and picks the label
func Analyze(text string) Result {
	r := Result{Label: Positive}
	if text == "" {
		return r
	}
	for _, w := range token.Words(lower(text)) {
		r.Total++
		if _, ok := positiveWords[w]; ok {
			r.Positive++
		}
		if _, ok := negativeWords[w]; ok {
			r.Negative++
		}
	}
	if r.Negative > r.Positive {
		r.Label = Negative
	}
	return r
}

// Detect returns only the label of Analyze
func Detect(text string) Label { return Analyze(text).Label }

// Keywords returns sorted copies of the positive and negative keyword sets
func Keywords() (positive, negative []string) {
	return sortedKeys(positiveWords), sortedKeys(negativeWords)
}
