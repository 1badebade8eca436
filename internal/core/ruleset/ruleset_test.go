package ruleset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jejenorm/internal/core/token"
)

func TestLoad(t *testing.T) {
	d, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if d.Version != supportedVersion {
		t.Fatalf("version = %d, want %d", d.Version, supportedVersion)
	}
	if d.Len() < 300 {
		t.Fatalf("expected hundreds of rules, got %d", d.Len())
	}
	if d.MaxWords() < 2 {
		t.Fatalf("expected at least one phrase key, MaxWords = %d", d.MaxWords())
	}
	if d.Identities() == 0 {
		t.Fatalf("expected keep-as-is rules")
	}

	for k, want := range map[string]string{
		"u":        "you",
		"r":        "are",
		"luv":      "love",
		"ur":       "your",
		"c":        "see",
		"2":        "to",
		"hey":      "hey",
		"by d way": "by the way",
	} {
		got, ok := d.Lookup(k)
		if !ok || got != want {
			t.Fatalf("Lookup(%q) = %q,%v want %q", k, got, ok, want)
		}
	}
	if _, ok := d.Lookup("not-a-slang-word"); ok {
		t.Fatalf("unexpected lookup hit")
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	b, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if a == b {
		t.Fatalf("expected fresh datasets per call")
	}
	if !a.Equal(b) {
		t.Fatalf("Load() returned different datasets")
	}
	if !a.Equal(Default()) || Default() != Default() {
		t.Fatalf("Default() should be a single instance equal to Load()")
	}
}

func TestEqualComparesVersion(t *testing.T) {
	doc := []byte(`{"version":1,"rules":[{"slang":"q","norm":"ko"}]}`)
	a, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("same document should be equal")
	}

	b.Version = 2
	if a.Equal(b) || b.Equal(a) {
		t.Fatalf("datasets with versions 1 and 2 compared equal")
	}

	// FromRules leaves the version unset
	c, err := FromRules([]Rule{{Slang: "q", Norm: "ko"}})
	if err != nil {
		t.Fatalf("FromRules: %v", err)
	}
	if a.Equal(c) {
		t.Fatalf("versioned and unversioned datasets compared equal")
	}

	var nilSet *Dataset
	if !nilSet.Equal(nil) {
		t.Fatalf("nil datasets should be equal")
	}
}

// leet digits are rewritten before the dictionary pass, so keys holding them can never match
func TestKeysReachableAfterLeet(t *testing.T) {
	for _, r := range Default().Rules() {
		if strings.ContainsAny(r.Slang, "01345789@") {
			t.Fatalf("key %q contains a leet character and can never match", r.Slang)
		}
		if strings.ContainsAny(r.Norm, "0123456789") {
			t.Fatalf("replacement %q for %q contains digits", r.Norm, r.Slang)
		}
		if !token.Bounded(r.Slang) {
			t.Fatalf("key %q is not word bounded", r.Slang)
		}
	}
}

func TestRulesAndMapAreCopies(t *testing.T) {
	d := Default()
	rs := d.Rules()
	rs[0].Norm = "mutated"
	m := d.Map()
	m["u"] = "mutated"
	if got, _ := d.Lookup("u"); got != "you" {
		t.Fatalf("dataset mutated through copy: %q", got)
	}
	if d.Rules()[0].Norm == "mutated" {
		t.Fatalf("rules mutated through copy")
	}
	if len(m) != d.Len() {
		t.Fatalf("Map len = %d, want %d", len(m), d.Len())
	}
}

func TestFromRulesValidation(t *testing.T) {
	tests := []struct {
		name    string
		rules   []Rule
		wantErr string
	}{
		{"empty key", []Rule{{Slang: " ", Norm: "x"}}, "empty slang key"},
		{"uppercase key", []Rule{{Slang: "LOL", Norm: "lol"}}, "not lowercase"},
		{"unbounded key", []Rule{{Slang: "w/", Norm: "with"}}, "word character"},
		{"duplicate", []Rule{{Slang: "u", Norm: "you"}, {Slang: "u", Norm: "ikaw"}}, "duplicate key"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromRules(tc.rules)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("FromRules err = %v, want containing %q", err, tc.wantErr)
			}
		})
	}

	d, err := FromRules([]Rule{{Slang: " w/o ", Norm: " without "}, {Slang: "oh em gee", Norm: "oh my god"}})
	if err != nil {
		t.Fatalf("FromRules: %v", err)
	}
	if got, ok := d.Lookup("w/o"); !ok || got != "without" {
		t.Fatalf("trimmed lookup = %q,%v", got, ok)
	}
	if d.MaxWords() != 3 {
		t.Fatalf("MaxWords = %d, want 3", d.MaxWords())
	}
	if d.Rules()[1].Identity() {
		t.Fatalf("phrase rule is not identity")
	}
}

func TestNilDataset(t *testing.T) {
	var d *Dataset
	if d.Len() != 0 || d.MaxWords() != 0 || d.Rules() != nil || len(d.Map()) != 0 {
		t.Fatalf("nil dataset accessors should be zero")
	}
	if _, ok := d.Lookup("u"); ok {
		t.Fatalf("nil dataset lookup hit")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr string
		rules   int
	}{
		{"ok", `{"version":1,"rules":[{"slang":"q","norm":"ko"},{"slang":"poh","norm":"po"}]}`, "", 2},
		{"bad json", `{"version":1,"rules":[`, "parse rules.json", 0},
		{"bad version", `{"version":2,"rules":[]}`, "unsupported", 0},
		{"bad key", `{"version":1,"rules":[{"slang":"Q","norm":"ko"}]}`, "not lowercase", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Parse([]byte(tc.doc))
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("err = %v, want %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if d.Len() != tc.rules || d.Version != 1 {
				t.Fatalf("got %d rules version %d", d.Len(), d.Version)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	d, err := LoadFile("")
	if err != nil || d != Default() {
		t.Fatalf("empty path should return the default dataset: %v", err)
	}

	path := filepath.Join(t.TempDir(), "rules.json")
	if err := os.WriteFile(path, []byte(`{"version":1,"rules":[{"slang":"lodi","norm":"idol"}]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	d, err = LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got, ok := d.Lookup("lodi"); !ok || got != "idol" {
		t.Fatalf("Lookup(lodi) = %q, %v", got, ok)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
