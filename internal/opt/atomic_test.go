package opt

import (
	"math"
	"sync"
	"testing"
)

func TestAddIntWidths(t *testing.T) {
	var v32 int32
	if got := addInt(&v32, 7); got != 7 {
		t.Fatalf("addInt int32 = %d, want 7", got)
	}
	if got := addInt(&v32, -9); got != -2 {
		t.Fatalf("addInt int32 negative = %d, want -2", got)
	}

	var v64 int64
	addInt(&v64, math.MaxInt64)
	if got := addInt(&v64, 1); got != math.MinInt64 {
		t.Fatalf("addInt int64 wrap = %d, want MinInt64", got)
	}

	var u32 uint32
	one := uint32(1)
	if got := addInt(&u32, -one); got != math.MaxUint32 {
		t.Fatalf("addInt uint32 borrow = %d, want MaxUint32", got)
	}

	var up uintptr
	addInt(&up, 3)
	if got := loadInt(&up); got != 3 {
		t.Fatalf("loadInt uintptr = %d, want 3", got)
	}
}

func TestAddIntConcurrent(t *testing.T) {
	const goroutines = 16
	const perG = 10000

	var v uint64
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			for range perG {
				addInt(&v, uint64(1))
			}
		}()
	}
	wg.Wait()

	if got := loadInt(&v); got != goroutines*perG {
		t.Fatalf("sum = %d, want %d", got, goroutines*perG)
	}
}

func TestCellOps(t *testing.T) {
	var c Cell_[int64]
	var got int64

	c.Add(5)
	c.Load(&got)
	if got != 5 {
		t.Fatalf("after Add(5): %d", got)
	}

	c.Sub(3)
	c.Load(&got)
	if got != 2 {
		t.Fatalf("after Sub(3): %d", got)
	}

	c.Add(0)
	c.Load(&got)
	if got != 2 {
		t.Fatalf("after Add(0): %d", got)
	}
}

func TestCellConcurrent(t *testing.T) {
	const goroutines = 8
	const perG = 20000

	var c Cell_[uint32]
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			for range perG {
				c.Add(1)
			}
		}()
	}
	wg.Wait()

	var got uint32
	c.Load(&got)
	if got != goroutines*perG {
		t.Fatalf("sum = %d, want %d", got, goroutines*perG)
	}
}
