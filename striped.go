package countx

import (
	"runtime"
	"unsafe"

	"github.com/llxisdsh/countx/internal/opt"
)

// CacheLineSize is used in stripe padding to prevent false sharing.
const CacheLineSize = opt.CacheLineSize_

// stripe pads a counter out to a cache-line multiple so neighboring
// stripes never share a line.
type stripe struct {
	c Var[int64]
	_ [(CacheLineSize - unsafe.Sizeof(struct {
		c Var[int64]
	}{})%CacheLineSize) % CacheLineSize]byte
}

// Striped is an int64 counter sharded across cache-line padded stripes,
// for write-heavy counters where a single cell would become a contended
// line. Each update touches one stripe, chosen by the P the calling
// goroutine happens to run on; every stripe is an ordinary counter, so
// the compiled-in backend strategy applies unchanged.
//
// Get sums the stripes without stopping writers. The sum includes every
// update that completed before Get started and is exact once writers are
// quiescent; updates concurrent with the walk may or may not be counted.
//
// A Striped must not be copied after first use.
type Striped struct {
	_       noCopy
	stripes []stripe
	mask    uint32
}

// NewStriped returns a counter with one stripe per P, rounded up to a
// power of two.
func NewStriped() *Striped {
	n := nextPowOf2(runtime.GOMAXPROCS(0))
	return &Striped{
		stripes: make([]stripe, n),
		mask:    uint32(n) - 1,
	}
}

// Incr atomically adds count to the counter.
func (s *Striped) Incr(count int64) {
	s.stripe().Incr(count)
}

// Decr atomically subtracts count from the counter.
func (s *Striped) Decr(count int64) {
	s.stripe().Decr(count)
}

// Get writes the sum of all stripes into dst.
func (s *Striped) Get(dst *int64) {
	var sum, v int64
	for i := range s.stripes {
		s.stripes[i].c.Get(&v)
		sum += v
	}
	*dst = sum
}

// stripe picks the calling goroutine's stripe. The P id is only a
// placement hint, so it is safe to unpin before the update: a stale id
// costs contention, never correctness.
func (s *Striped) stripe() *Var[int64] {
	pid := runtime_procPin()
	runtime_procUnpin()
	return &s.stripes[uint32(pid)&s.mask].c
}
