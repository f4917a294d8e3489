package gc

// Garbage collector: barriers.
//
// Read is a pure instrumentation hook (spec.md §4.2): it has no effect on
// reachability and exists only so a future snapshot-at-beginning
// (deletion) barrier would have somewhere to live (spec.md §9's Open
// Question 4).
//
// Write is the insertion write barrier. Following the teacher's own
// writebarrierptr (runtime/mbarrier.go), it performs the mutator's store
// itself and then shades the stored value — an insertion barrier always
// greys the value being installed, regardless of the destination's
// color, which is what lets it dispense with a snapshot of the heap
// (spec.md §4.2's Rationale).

// Read loads a field and counts the access. It performs no shading.
func (c *Collector) Read(obj Ptr, field int) Ptr {
	c.stats.recordRead()
	record := payloadToRecord(uintptr(obj))
	return Ptr(loadFieldAt(record, field))
}

// Write stores val into obj's field and shades val if it is a white
// from-space reference, preserving the tri-color invariant (spec.md §3
// invariant 2) no matter obj's own color.
func (c *Collector) Write(obj Ptr, field int, val Ptr) {
	record := payloadToRecord(uintptr(obj))
	storeFieldAt(record, field, uintptr(val))
	c.stats.recordWrite()
	c.shade(val)
}
