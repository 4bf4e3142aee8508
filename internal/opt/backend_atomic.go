//go:build !countx_no_atomic_builtins && !countx_broken_atomics

package opt

// Backend_ names the counter strategy compiled into this build.
const Backend_ = "atomic"

// Cell_ is a counter cell backed by plain atomic add/load instructions.
// No guard is carried; the cell is a bare integer.
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
	*dst = loadInt(&c.v)
}
