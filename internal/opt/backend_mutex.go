//go:build (countx_no_atomic_builtins || countx_broken_atomics) && countx_no_sync_builtins

package opt

import "sync"

// Backend_ names the counter strategy compiled into this build.
const Backend_ = "mutex"

// Cell_ is a counter cell guarded by a mutex, for builds where no
// lock-free family is usable. The guard shares the cell's lifetime and is
// never handed out; each operation takes and releases it exactly once,
// with no nesting.
//
// The mutual exclusion this buys is stronger than the other backends
// provide. Callers must not depend on it: it disappears when a lock-free
// backend is selected.
type Cell_[T Int] struct {
	mu sync.Mutex
	v  T
}

func (c *Cell_[T]) Add(delta T) {
	c.mu.Lock()
	c.v += delta
	c.mu.Unlock()
}

func (c *Cell_[T]) Sub(delta T) {
	c.mu.Lock()
	c.v -= delta
	c.mu.Unlock()
}

func (c *Cell_[T]) Load(dst *T) {
	c.mu.Lock()
	*dst = c.v
	c.mu.Unlock()
}
