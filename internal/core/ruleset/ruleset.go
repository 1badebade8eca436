// Package ruleset loads the slang dictionary from the embedded rules.json.
// The dataset is ordered (insertion order is the file order) and read-only
// once built
package ruleset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"jejenorm/internal/core/token"
)

//go:embed rules.json
var embedded []byte

// supportedVersion is the only rules.json schema we understand
const supportedVersion = 1

type rawRule struct {
	Slang string `json:"slang"`
	Norm  string `json:"norm"`
}

type rawSet struct {
	Version int       `json:"version"`
	Rules   []rawRule `json:"rules"`
}

// Rule maps one lowercase slang token (or literal phrase) to its replacement
type Rule struct {
	Slang string
	Norm  string
}

// Identity reports whether the rule keeps the token as-is
func (r Rule) Identity() bool { return r.Slang == r.Norm }

// Dataset is the compiled dictionary. Safe for concurrent reads
type Dataset struct {
	Version int

	rules    []Rule
	index    map[string]string
	maxWords int
}

// Load parses and validates the embedded rules.json. Every call builds a fresh, equal Dataset
func Load() (*Dataset, error) { return Parse(embedded) }

// LoadFile reads a rules.json formatted file from disk. An empty path means the embedded dataset
func LoadFile(path string) (*Dataset, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ruleset: %w", err)
	}
	return Parse(data)
}

// Parse builds a Dataset from a document in the rules.json format
func Parse(data []byte) (*Dataset, error) {
	var rs rawSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("ruleset: parse rules.json: %w", err)
	}
	if rs.Version != supportedVersion {
		return nil, fmt.Errorf("ruleset: unsupported rules.json version %d (want %d)", rs.Version, supportedVersion)
	}
	rules := make([]Rule, 0, len(rs.Rules))
	for _, r := range rs.Rules {
		rules = append(rules, Rule{Slang: r.Slang, Norm: r.Norm})
	}
	d, err := FromRules(rules)
	if err != nil {
		return nil, err
	}
	d.Version = rs.Version
	return d, nil
}

// FromRules builds a Dataset from caller supplied rules, applying the same checks as Load.
// Keys are trimmed; they must be non-empty, lowercase, unique and start and end with a word rune
func FromRules(rules []Rule) (*Dataset, error) {
	d := &Dataset{
		rules: make([]Rule, 0, len(rules)),
		index: make(map[string]string, len(rules)),
	}
	for i, r := range rules {
		slang := strings.TrimSpace(r.Slang)
		norm := strings.TrimSpace(r.Norm)
		switch {
		case slang == "":
			return nil, fmt.Errorf("ruleset: rule %d has an empty slang key", i)
		case slang != strings.ToLower(slang):
			return nil, fmt.Errorf("ruleset: rule %d key %q is not lowercase", i, slang)
		case !token.Bounded(slang):
			return nil, fmt.Errorf("ruleset: rule %d key %q must start and end with a word character", i, slang)
		}
		if _, dup := d.index[slang]; dup {
			return nil, fmt.Errorf("ruleset: duplicate key %q at rule %d", slang, i)
		}
		d.index[slang] = norm
		d.rules = append(d.rules, Rule{Slang: slang, Norm: norm})
		if n := token.Count(slang); n > d.maxWords {
			d.maxWords = n
		}
	}
	return d, nil
}

var (
	defOnce sync.Once
	def     *Dataset
)

// Default returns the process-wide dataset built from the embedded rules.
// The embedded file is covered by tests, so a failure here is a build defect and panics
func Default() *Dataset {
	defOnce.Do(func() {
		d, err := Load()
		if err != nil {
			panic(err)
		}
		def = d
	})
	return def
}

// Lookup returns the replacement for a lowercase key
func (d *Dataset) Lookup(slang string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d.index[slang]
	return v, ok
}

// Len returns the number of rules
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rules)
}

// MaxWords is the length, in word runs, of the longest key
func (d *Dataset) MaxWords() int {
	if d == nil {
		return 0
	}
	return d.maxWords
}

// Rules returns a copy of the rules in insertion order
func (d *Dataset) Rules() []Rule {
	if d == nil {
		return nil
	}
	return append([]Rule(nil), d.rules...)
}

// Map returns a copy of the key -> replacement mapping
func (d *Dataset) Map() map[string]string {
	out := make(map[string]string, d.Len())
	if d == nil {
		return out
	}
	for k, v := range d.index {
		out[k] = v
	}
	return out
}

// Identities counts the keep-as-is rules
func (d *Dataset) Identities() int {
	n := 0
	for _, r := range d.Rules() {
		if r.Identity() {
			n++
		}
	}
	return n
}

func (d *Dataset) version() int {
	if d == nil {
		return 0
	}
	return d.Version
}

// Equal reports whether both datasets share a version and hold the same rules in the same order
func (d *Dataset) Equal(o *Dataset) bool {
	if d.Len() != o.Len() || d.version() != o.version() {
		return false
	}
	for i := range d.Len() {
		if d.rules[i] != o.rules[i] {
			return false
		}
	}
	return true
}
