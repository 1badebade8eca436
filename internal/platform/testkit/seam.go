package testkit

import (
	"sync"
	"testing"
)

var seamMu sync.Mutex

// Swap replaces *target with v until the test ends.
// Use it for package-level seams such as clocks or loaders
func Swap[T any](t *testing.T, target *T, v T) {
	t.Helper()
	prev := *target
	*target = v
	t.Cleanup(func() { *target = prev })
}

// Serial holds a process-wide lock for the rest of the test so tests
// touching the same seam never overlap
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}
