package gc

import "io"

// stubPrinter is a minimal Printer for tests that only need to confirm a
// custom Printer is the one actually invoked.
type stubPrinter struct{}

func (stubPrinter) PrintObject(w io.Writer, header uintptr, fields []uintptr) {
	io.WriteString(w, "stub")
}

// fixedFieldsLayout is the Layout used across this package's tests: a
// managed object's header word directly encodes its field count, so a
// node with n fields is built with header==uintptr(n). This keeps tests
// independent of any particular embedding runtime's object format.
type fixedFieldsLayout struct{}

func (fixedFieldsLayout) FieldCount(header uintptr) int { return int(header) }

func newTestCollector(opts ...Option) *Collector {
	return New(fixedFieldsLayout{}, opts...)
}

// allocNode allocates an n-field object with every field initialized to
// Nil, mirroring the spec's "mutator initializes the payload before
// publishing" (spec.md §4.1).
func allocNode(c *Collector, n int) Ptr {
	p := c.Alloc(ptrSize * uintptr(1+n))
	c.SetHeader(p, uintptr(n))
	for i := 0; i < n; i++ {
		c.SetField(p, i, Nil)
	}
	return p
}

// liveRecords counts the records bump-allocated in c's current heap; right
// after a collection these are the objects it carried over.
func liveRecords(c *Collector) int {
	n := 0
	for addr := c.current.base; addr < c.current.bump; addr += c.recordSize(addr) {
		n++
	}
	return n
}
