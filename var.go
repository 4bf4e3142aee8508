// Package countx implements portable atomic counters shared by many
// goroutines, with the arithmetic strategy selected once per build.
//
// The exported surface is three operations over a counter:
//
//	var hits countx.Int64
//	hits.Incr(1) // atomically add
//	hits.Decr(1) // atomically subtract
//	var n int64
//	hits.Get(&n) // fetch the current value
//
// Never use a return value to observe an update; there is none. To update
// and then read, call Get afterwards as a separate step (the two are not
// atomic together):
//
//	hits.Incr(5)
//	var n int64
//	hits.Get(&n)
//	doSomethingWith(n)
//
// One of three backend strategies is compiled in, in priority order: plain
// atomic instructions, the older full-barrier fetch-based family, or a
// per-counter mutex. The countx_no_atomic_builtins, countx_broken_atomics
// and countx_no_sync_builtins build tags drive the choice; see Backend.
// Every counter in a build uses the same strategy, and the visible
// semantics are identical across strategies.
package countx

import (
	"github.com/llxisdsh/countx/internal/opt"
)

// Backend names, as reported by Backend.
const (
	// BackendAtomic uses plain atomic add/load instructions with the
	// weakest ordering the platform offers.
	BackendAtomic = "atomic"
	// BackendSync uses the older full-barrier fetch-based family; reads
	// are a fetch-and-add of zero.
	BackendSync = "sync"
	// BackendMutex guards each counter with its own mutex. Always
	// available; needs nothing beyond a standard lock.
	BackendMutex = "mutex"
)

// Backend reports which counter strategy was compiled into this build.
// The choice is fixed at build time and identical for every counter; the
// hot path contains no strategy branch.
func Backend() string {
	return opt.Backend_
}

// Var is an integer counter that any number of goroutines may update and
// read with no external locking.
//
// Ordering:
//   - A goroutine always observes its own prior updates.
//   - Across goroutines, only per-counter atomicity is guaranteed: no
//     updates are lost, but an update does not order unrelated memory.
//     Publishing data alongside a count needs its own synchronization.
//   - The mutex strategy incidentally provides full mutual exclusion. Do
//     not lean on that; it is absent under the lock-free strategies.
//
// Overflow and underflow wrap per the underlying integer type.
//
// The zero Var holds zero and is ready to use. A Var must not be copied
// after first use.
type Var[T opt.Int] struct {
	_    noCopy
	cell opt.Cell_[T]
}

// Incr atomically adds count to the counter. count may be zero or, for
// signed widths, negative.
//
//go:nosplit
func (v *Var[T]) Incr(count T) {
	v.cell.Add(count)
}

// Decr atomically subtracts count from the counter.
//
//go:nosplit
func (v *Var[T]) Decr(count T) {
	v.cell.Sub(count)
}

// Get writes the counter's current value into dst. The value reflects all
// updates the calling goroutine has issued; concurrent updates by other
// goroutines may or may not be included yet.
//
//go:nosplit
func (v *Var[T]) Get(dst *T) {
	v.cell.Load(dst)
}

// Concrete widths for the common cases.
type (
	Int32   = Var[int32]
	Int64   = Var[int64]
	Uint32  = Var[uint32]
	Uint64  = Var[uint64]
	Uintptr = Var[uintptr]
)
