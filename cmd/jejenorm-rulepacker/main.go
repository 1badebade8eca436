// Command jejenorm-rulepacker merges rule fragments into the embedded rules.json
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"jejenorm/internal/core/ruleset"
)

// packVersion is the rules.json schema the ruleset package reads
const packVersion = 1

type fragmentFile struct {
	Language string `json:"language"`
	Rules    []rule `json:"rules"`
}

type rule struct {
	Slang string `json:"slang"`
	Norm  string `json:"norm"`
}

func readJSON[T any](path string, into *T) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func findFragmentFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(strings.ToLower(path), ".json") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func hasFragments(dir string) bool {
	files, err := findFragmentFiles(dir)
	return err == nil && len(files) > 0
}

func latestNumericSubdir(dir string) (string, bool) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	var nums []int
	for _, e := range ents {
		if !e.IsDir() {
			continue
		}
		if n, err := strconv.Atoi(e.Name()); err == nil {
			nums = append(nums, n)
		}
	}
	if len(nums) == 0 {
		return "", false
	}
	sort.Ints(nums)
	return filepath.Join(dir, strconv.Itoa(nums[len(nums)-1])), true
}

// resolveRoot tries the flag, then JEJENORM_RULES_ROOT, then ./rules.
// A directory with numbered children resolves to the highest one
func resolveRoot(flagRoot string) (string, []string, error) {
	var attempts []string
	try := func(p string) (string, bool) {
		if p == "" {
			return "", false
		}
		attempts = append(attempts, p)
		if sub, ok := latestNumericSubdir(p); ok {
			attempts = append(attempts, sub)
			if hasFragments(sub) {
				return sub, true
			}
			return "", false
		}
		if hasFragments(p) {
			return p, true
		}
		return "", false
	}

	if root, ok := try(flagRoot); ok {
		return root, attempts, nil
	}
	if env := strings.TrimSpace(os.Getenv("JEJENORM_RULES_ROOT")); env != "" {
		if root, ok := try(env); ok {
			return root, attempts, nil
		}
	}
	if root, ok := try("./rules"); ok {
		return root, attempts, nil
	}
	return "", attempts, errors.New("no rule fragments found")
}

// assemble concatenates fragments in path order. The first occurrence of a key wins
func assemble(root string, warn io.Writer) ([]rule, error) {
	paths, err := findFragmentFiles(root)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errors.New("no fragment files found under " + root)
	}

	seen := map[string]string{}
	var out []rule
	for _, p := range paths {
		var fr fragmentFile
		if err := readJSON(p, &fr); err != nil {
			return nil, err
		}
		if fr.Language == "" {
			return nil, fmt.Errorf("fragment missing language: %s", p)
		}
		for _, r := range fr.Rules {
			k := strings.ToLower(strings.TrimSpace(r.Slang))
			if first, dup := seen[k]; dup {
				_, _ = fmt.Fprintf(warn, "warning: %s: duplicate slang %q skipped (first in %s)\n", p, k, first)
				continue
			}
			seen[k] = p
			out = append(out, rule{Slang: k, Norm: strings.TrimSpace(r.Norm)})
		}
	}

	// same checks the service applies at startup
	rs := make([]ruleset.Rule, len(out))
	for i, r := range out {
		rs[i] = ruleset.Rule{Slang: r.Slang, Norm: r.Norm}
	}
	if _, err := ruleset.FromRules(rs); err != nil {
		return nil, err
	}
	return out, nil
}

// encode writes one rule per line so diffs stay readable
func encode(rules []rule) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("{\n  \"version\": " + strconv.Itoa(packVersion) + ",\n  \"rules\": [\n")
	for i, r := range rules {
		line, err := json.Marshal(r)
		if err != nil {
			return nil, err
		}
		b.WriteString("    ")
		b.Write(line)
		if i < len(rules)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("  ]\n}\n")
	return b.Bytes(), nil
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("jejenorm-rulepacker", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		flagRoot = flags.String("root", "", "rules directory (e.g. ./rules/1 or ./rules). If empty, auto-discover")
		out      = flags.String("out", "./internal/core/ruleset/rules.json", "output path or '-' for stdout")
		verbose  = flags.Bool("v", false, "verbose logging")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	root, attempts, err := resolveRoot(strings.TrimSpace(*flagRoot))
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "failed to locate rules root (looked in):\n")
		for _, a := range attempts {
			_, _ = fmt.Fprintf(stderr, "  - %s\n", a)
		}
		return err
	}
	if *verbose {
		_, _ = fmt.Fprintf(stderr, "using rules root: %s\n", root)
	}

	rules, err := assemble(root, stderr)
	if err != nil {
		return err
	}
	enc, err := encode(rules)
	if err != nil {
		return err
	}
	if _, err := ruleset.Parse(enc); err != nil {
		return fmt.Errorf("packed output does not load: %w", err)
	}

	if *out == "-" {
		_, err := stdout.Write(enc)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(*out, enc, 0o644); err != nil {
		return err
	}
	if *verbose {
		_, _ = fmt.Fprintf(stderr, "wrote %s (%d rules, %d bytes)\n", *out, len(rules), len(enc))
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
