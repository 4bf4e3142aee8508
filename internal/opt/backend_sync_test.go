//go:build (countx_no_atomic_builtins || countx_broken_atomics) && !countx_no_sync_builtins

package opt

import "testing"

// The broken-atomics flag alone must demote the build to the sync
// strategy even though generalized atomics were not opted out.
func TestBackendSelection(t *testing.T) {
	if Backend_ != "sync" {
		t.Fatalf("Backend_ = %q, want %q", Backend_, "sync")
	}
}
