//go:build !countx_no_atomic_builtins && !countx_broken_atomics

package opt

import "testing"

// With generalized atomics available and not flagged broken, the atomic
// strategy must win regardless of the legacy-family tag.
func TestBackendSelection(t *testing.T) {
	if Backend_ != "atomic" {
		t.Fatalf("Backend_ = %q, want %q", Backend_, "atomic")
	}
}
