package countx

import (
	"github.com/llxisdsh/pb"
)

// Group is a registry of named counters, for the server-stats pattern
// where many goroutines bump metrics by name and an observer walks them.
// Counters are created at zero on first update.
//
// The zero Group is ready to use and must not be copied after first use.
type Group struct {
	_ noCopy
	m pb.MapOf[string, *Int64]
}

// Incr atomically adds count to the named counter, creating it first if
// absent.
func (g *Group) Incr(name string, count int64) {
	g.counter(name).Incr(count)
}

// Decr atomically subtracts count from the named counter, creating it
// first if absent.
func (g *Group) Decr(name string, count int64) {
	g.counter(name).Decr(count)
}

// Get writes the named counter's current value into dst. Absent names
// read as zero and are not created.
func (g *Group) Get(name string, dst *int64) {
	if c, ok := g.m.Load(name); ok {
		c.Get(dst)
		return
	}
	*dst = 0
}

// Delete drops the named counter. An update racing with Delete may land
// on the dropped counter or recreate the name from zero.
func (g *Group) Delete(name string) {
	g.m.Delete(name)
}

// Range calls yield for each counter with its value at the time of the
// visit, until yield returns false. The walk is weakly consistent:
// counters added or updated during the walk may or may not be observed.
func (g *Group) Range(yield func(name string, value int64) bool) {
	g.m.Range(func(name string, c *Int64) bool {
		var v int64
		c.Get(&v)
		return yield(name, v)
	})
}

func (g *Group) counter(name string) *Int64 {
	// Load first: after warm-up this avoids the allocation in the
	// LoadOrStore argument.
	if c, ok := g.m.Load(name); ok {
		return c
	}
	c, _ := g.m.LoadOrStore(name, &Int64{})
	return c
}
