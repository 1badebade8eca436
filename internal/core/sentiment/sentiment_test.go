package sentiment

import (
	"encoding/json"
	"testing"

	"jejenorm/internal/core/token"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Label
	}{
		{"positive sentence", "I love you", Positive},
		{"negative sentence", "I hate this, terrible and sad", Negative},
		{"tie resolves positive", "love hate", Positive},
		{"empty", "", Positive},
		{"no keywords", "the quick brown fox", Positive},
		{"case insensitive", "HATE", Negative},
		{"filipino negative", "nakakainis, badtrip ako", Negative},
		{"filipino positive", "salamat po, ang ganda", Positive},
		{"slang spelling", "luv u", Positive},
		{"duplicates count", "sad sad happy", Negative},
		{"leet is not decoded", "h4te", Positive},
		{"word runs only", "lovehate", Positive},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.in); got != tc.want {
				t.Fatalf("Detect(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestAnalyzeCounts(t *testing.T) {
	r := Analyze("I hate this, terrible and sad")
	if r.Positive != 0 || r.Negative != 3 || r.Total != 6 || r.Label != Negative {
		t.Fatalf("Analyze = %s", r)
	}
	r = Analyze("love love hate_it hate")
	if r.Positive != 2 || r.Negative != 1 || r.Total != 4 || r.Label != Positive {
		t.Fatalf("Analyze = %s", r)
	}
	if got := Analyze("").String(); got != "positive(pos=0, neg=0, total=0)" {
		t.Fatalf("empty result = %q", got)
	}
}

func TestKeywordSets(t *testing.T) {
	pos, neg := Keywords()
	if len(pos) == 0 || len(neg) == 0 {
		t.Fatalf("keyword sets must not be empty")
	}
	for _, w := range pos {
		if _, ok := negativeWords[w]; ok {
			t.Fatalf("%q is both positive and negative", w)
		}
	}
	for _, w := range append(pos, neg...) {
		if lower(w) != w {
			t.Fatalf("keyword %q is not lowercase", w)
		}
		if ws := token.Words(w); len(ws) != 1 || ws[0] != w {
			t.Fatalf("keyword %q is not a single word run", w)
		}
	}
	// function words would bias every sentence
	for _, w := range []string{"i", "this", "and", "you", "ako", "ikaw"} {
		if _, ok := positiveWords[w]; ok {
			t.Fatalf("%q should not be a positive keyword", w)
		}
		if _, ok := negativeWords[w]; ok {
			t.Fatalf("%q should not be a negative keyword", w)
		}
	}
}

func TestLabel(t *testing.T) {
	b, err := json.Marshal(Result{Label: Negative})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"label":"negative","positive":0,"negative":0,"total":0}` {
		t.Fatalf("json = %s", b)
	}
	if l, err := ParseLabel("positive"); err != nil || l != Positive {
		t.Fatalf("ParseLabel(positive) = %q, %v", l, err)
	}
	if _, err := ParseLabel("neutral"); err == nil {
		t.Fatalf("neutral is not a label")
	}
}
