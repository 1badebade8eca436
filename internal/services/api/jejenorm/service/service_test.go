package service

import (
	"context"
	"strconv"
	"testing"

	"jejenorm/internal/core/ruleset"
	"jejenorm/internal/core/sentiment"
	perr "jejenorm/internal/platform/errors"
	pstrings "jejenorm/internal/platform/strings"
	"jejenorm/internal/services/api/jejenorm/domain"
)

func TestProcess(t *testing.T) {
	s := New(nil, Config{})

	cases := []struct {
		in      string
		want    string
		label   sentiment.Label
		origLen int
		normLen int
	}{
		{"u r luv", "you are love", sentiment.Positive, 7, 12},
		{"i h8 u, sad", "i hb you, sad", sentiment.Negative, 11, 13},
		{"", "", sentiment.Positive, 0, 0},
		{"tnx u poh", "thank you po", sentiment.Positive, 9, 12},
		{"Aq p0h ay m4h4l k1t4", "ako po ay mahal kita", sentiment.Positive, 20, 20},
		{"hello    world  ", "hello world", sentiment.Positive, 16, 11},
		{"ñ ñ", "ñ ñ", sentiment.Positive, 3, 3},
	}
	for _, tc := range cases {
		got := s.Process(tc.in)
		if got.Normalized != tc.want || got.Sentiment != tc.label {
			t.Fatalf("Process(%q) = %+v, want %q/%s", tc.in, got, tc.want, tc.label)
		}
		if got.OriginalLength != tc.origLen || got.NormalizedLength != tc.normLen {
			t.Fatalf("Process(%q) lengths = %d/%d, want %d/%d",
				tc.in, got.OriginalLength, got.NormalizedLength, tc.origLen, tc.normLen)
		}
	}
}

func TestNormalize_RequiresText(t *testing.T) {
	s := New(nil, Config{})

	_, err := s.Normalize(context.Background(), domain.NormalizeInput{})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	out, err := s.Normalize(context.Background(), domain.NormalizeInput{Text: pstrings.Ptr("")})
	if err != nil || out.Normalized != "" || out.Sentiment != sentiment.Positive {
		t.Fatalf("empty text: %+v %v", out, err)
	}
}

func TestNormalize_CancelledContext(t *testing.T) {
	s := New(nil, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Normalize(ctx, domain.NormalizeInput{Text: pstrings.Ptr("u")})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestNormalizeBatch(t *testing.T) {
	s := New(nil, Config{Workers: 4})

	texts := make([]string, 0, domain.MaxBatch)
	for i := 0; i < domain.MaxBatch; i++ {
		texts = append(texts, "u r "+strconv.Itoa(i))
	}
	out, err := s.NormalizeBatch(context.Background(), domain.BatchInput{Texts: texts})
	if err != nil {
		t.Fatalf("NormalizeBatch: %v", err)
	}
	if len(out.Results) != len(texts) {
		t.Fatalf("got %d results", len(out.Results))
	}
	for i, r := range out.Results {
		// leet folding applies to digits too
		want := s.Process(texts[i]).Normalized
		if r.Normalized != want {
			t.Fatalf("result %d = %q, want %q", i, r.Normalized, want)
		}
	}

	for _, n := range []int{0, domain.MaxBatch + 1} {
		_, err := s.NormalizeBatch(context.Background(), domain.BatchInput{Texts: make([]string, n)})
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("batch of %d: expected validation error, got %v", n, err)
		}
	}
}

func TestModesAndStats(t *testing.T) {
	ds, err := ruleset.FromRules([]ruleset.Rule{{Slang: "u", Norm: "you"}, {Slang: "you", Norm: "ya"}})
	if err != nil {
		t.Fatalf("FromRules: %v", err)
	}

	single := New(ds, Config{})
	cascade := New(ds, Config{Cascade: true})
	if got := single.Process("u").Normalized; got != "you" {
		t.Fatalf("single pass = %q", got)
	}
	if got := cascade.Process("u").Normalized; got != "ya" {
		t.Fatalf("cascade = %q", got)
	}

	st := cascade.Stats()
	if st.Rules != 2 || st.Mode != "cascade" || st.LeetPairs != 9 || st.MaxWords != 1 {
		t.Fatalf("unexpected stats %+v", st)
	}
	if st := single.Stats(); st.Mode != "single-pass" {
		t.Fatalf("default mode = %q", st.Mode)
	}
	if New(nil, Config{}).Stats().Rules != ruleset.Default().Len() {
		t.Fatal("nil dataset should fall back to the embedded rules")
	}
}

func TestSquashAndFold(t *testing.T) {
	s := New(nil, Config{Squash: 2, Fold: true})
	if got := s.Process("Ｈ3Ｙ").Normalized; got != "hey" {
		t.Fatalf("fold: got %q", got)
	}
	if got := s.Process("grabeeeee").Normalized; got != "grabee" {
		t.Fatalf("squash: got %q", got)
	}
	if s.Config().Workers < 1 {
		t.Fatal("workers should be clamped")
	}
}

func TestCheck(t *testing.T) {
	s := New(nil, Config{})
	if s.CheckName() != "rules" {
		t.Fatalf("CheckName = %q", s.CheckName())
	}
	if err := s.Check(context.Background()); err != nil {
		t.Fatalf("Check: %v", err)
	}

	empty, err := ruleset.FromRules(nil)
	if err != nil {
		t.Fatalf("FromRules(nil): %v", err)
	}
	if err := New(empty, Config{}).Check(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable for empty dataset, got %v", err)
	}
}
