package normalize

import "strings"

// leetPairs in application order. No target is also a source
var leetPairs = [...][2]rune{
	{'0', 'o'},
	{'1', 'i'},
	{'3', 'e'},
	{'4', 'a'},
	{'5', 's'},
	{'7', 't'},
	{'8', 'b'},
	{'9', 'g'},
	{'@', 'a'},
}

// LeetPair is one lookalike -> letter substitution
type LeetPair struct {
	From rune
	To   rune
}

// LeetMap returns a copy of the leet substitutions in application order
func LeetMap() []LeetPair {
	out := make([]LeetPair, len(leetPairs))
	for i, p := range leetPairs {
		out[i] = LeetPair{From: p[0], To: p[1]}
	}
	return out
}

var leetReplacer = func() *strings.Replacer {
	args := make([]string, 0, 2*len(leetPairs))
	for _, p := range leetPairs {
		args = append(args, string(p[0]), string(p[1]))
	}
	return strings.NewReplacer(args...)
}()

// leetFold rewrites every lookalike regardless of context, so "gr8" becomes "grb"
func leetFold(s string) string {
	if s == "" {
		return s
	}
	return leetReplacer.Replace(s)
}
