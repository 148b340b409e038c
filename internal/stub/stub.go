// Package stub replaces package-level values for the duration of a test.
package stub

import "testing"

// Replace sets *dst to val and restores the old value
// when the test and all its subtests finish.
//
// Tests that use Replace on shared state must not run in parallel.
func Replace[V any](t testing.TB, dst *V, val V) {
	old := *dst
	*dst = val
	t.Cleanup(func() {
		*dst = old
	})
}
