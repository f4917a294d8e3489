package gc

// Garbage collector: the relocating sweep.
//
// sweepForward/sweepChase/sweepStep/sweepCleanup implement spec.md §4.5's
// Cheney-style copying collector with the chase optimization, ported
// directly from the C reference's sweep_forward/sweep_chase/sweep_step/
// sweep_cleanup. Every black object is copied from the current heap
// ("from-space") into a freshly allocated to-space, its forwarding slot
// set exactly once, and every surviving pointer field is rewritten to the
// relocated address.

// sweepForward returns p's to-space copy, relocating it via sweepChase on
// first encounter. Pointers outside from-space (externally supplied
// objects) are returned unchanged.
func (c *Collector) sweepForward(p Ptr) Ptr {
	if p == Nil {
		return p
	}
	addr := uintptr(p)
	if !c.current.contains(addr) {
		return p
	}
	record := payloadToRecord(addr)
	if fwd := forwardAt(record); fwd != 0 && c.next.contains(fwd) {
		return Ptr(recordToPayload(fwd))
	}
	c.sweepChase(record)
	return Ptr(recordToPayload(forwardAt(record)))
}

// sweepChase copies r0 into to-space and then greedily continues with one
// unforwarded child per iteration, bounding recursion depth to O(1) stack
// frames the way the spec's chase loop requires. The remaining children
// are relocated when sweepStep dequeues their own from-space black
// records and calls sweepForward on them; the field-fixup pass only reads
// forwarding slots that are already set.
func (c *Collector) sweepChase(r0 uintptr) {
	r := r0
	for r != 0 {
		size := c.recordSize(r)
		to, ok := c.next.tryAlloc(size)
		if !ok {
			c.fatal(ErrToSpaceOverflow, "failed to allocate record in sweep phase")
		}
		setColorAt(to, White)
		setForwardAt(to, 0)
		header := loadHeaderAt(r)
		storeHeaderAt(to, header)

		n := c.layout.FieldCount(header)
		var next uintptr
		for i := 0; i < n; i++ {
			f := loadFieldAt(r, i)
			storeFieldAt(to, i, f)
			if f != 0 && c.current.contains(f) {
				child := payloadToRecord(f)
				if fwd := forwardAt(child); fwd == 0 || !c.next.contains(fwd) {
					next = child
				}
			}
		}

		setForwardAt(r, to)
		c.black.push(to)
		c.logger.Debugw("gc: relocated object", "from", recordToPayload(r), "to", recordToPayload(to), "size", size)
		r = next
	}
}

// sweepStep performs one unit of sweep work, dequeuing either a
// not-yet-relocated from-space black record (which it relocates, then
// re-enqueues its forwarded copy) or a freshly relocated to-space record
// (whose fields it fixes up to point at their own forwarded copies). It
// reports true once the black queue has drained.
func (c *Collector) sweepStep() bool {
	b, ok := c.black.pop()
	if !ok {
		return true
	}
	if c.current.contains(b) {
		payload := recordToPayload(b)
		c.sweepForward(Ptr(payload))
		c.black.push(forwardAt(b))
		return false
	}

	header := loadHeaderAt(b)
	n := c.layout.FieldCount(header)
	for i := 0; i < n; i++ {
		f := loadFieldAt(b, i)
		if f != 0 && c.current.contains(f) {
			child := payloadToRecord(f)
			storeFieldAt(b, i, recordToPayload(forwardAt(child)))
		}
	}
	return false
}

// sweepCleanup rewrites every root still pointing into from-space to its
// forwarded copy, frees from-space, and swaps to-space in as the new
// from-space, returning the collector to the MARK phase (spec.md §4.5).
func (c *Collector) sweepCleanup() {
	for _, slot := range c.roots.slots {
		cur := *slot
		if cur == Nil || !c.current.contains(uintptr(cur)) {
			continue
		}
		record := payloadToRecord(uintptr(cur))
		*slot = Ptr(recordToPayload(forwardAt(record)))
	}

	c.logger.Debugw("gc: sweep cleanup", "from_space_size", c.current.size, "to_space_size", c.next.size)
	c.stats.resetCurrent()
	c.current = c.next
	c.next = nil
	c.phase = Mark
}
