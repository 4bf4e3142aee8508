//go:build (countx_no_atomic_builtins || countx_broken_atomics) && !countx_no_sync_builtins

package opt

// Backend_ names the counter strategy compiled into this build.
const Backend_ = "sync"

// Cell_ is a counter cell backed by the older full-barrier fetch-based
// builtin family. The family has no dedicated load, so reads are a
// fetch-and-add of zero, which returns the same value a load would.
type Cell_[T Int] struct {
	v T
}

//go:nosplit
func (c *Cell_[T]) Add(delta T) {
	addInt(&c.v, delta)
}

//go:nosplit
func (c *Cell_[T]) Sub(delta T) {
	addInt(&c.v, -delta)
}

//go:nosplit
func (c *Cell_[T]) Load(dst *T) {
	*dst = addInt(&c.v, 0)
}
