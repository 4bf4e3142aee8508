package opt

import (
	"sync/atomic"
	"unsafe"
)

// Int is the set of integer widths a counter cell can hold.
type Int interface {
	~int32 | ~int64 | ~uint32 | ~uint64 | ~uintptr
}

// addInt atomically adds delta to *addr and returns the new value.
// Signed and unsigned widths share the unsigned add; two's complement
// makes the bit patterns identical.
//
//go:nosplit
func addInt[T Int](addr *T, delta T) T {
	if unsafe.Sizeof(T(0)) == 4 {
		return T(atomic.AddUint32((*uint32)(unsafe.Pointer(addr)), uint32(delta)))
	} else {
		return T(atomic.AddUint64((*uint64)(unsafe.Pointer(addr)), uint64(delta)))
	}
}

// loadInt atomically loads *addr.
//
//go:nosplit
func loadInt[T Int](addr *T) T {
	if unsafe.Sizeof(T(0)) == 4 {
		return T(atomic.LoadUint32((*uint32)(unsafe.Pointer(addr))))
	} else {
		return T(atomic.LoadUint64((*uint64)(unsafe.Pointer(addr))))
	}
}
