package gc

// shade tints p grey if it is a from-space pointer that is currently
// white, and enqueues its record for scanning. This is the one operation
// shared by the allocator, the write barrier, and the mark engine itself
// (spec.md §4.1, §4.2, §4.4) — exactly the role the teacher's shade plays
// in runtime/mgcmark.go, coarsened (per that file's own comment on the
// Dijkstra barrier) to always shade rather than special-case the
// destination's color.
func (c *Collector) shade(p Ptr) {
	if p == Nil {
		return
	}
	addr := uintptr(p)
	if !c.current.contains(addr) {
		// An externally supplied, immutable object: outside both
		// heaps, never collected, never scanned (spec.md §3).
		return
	}
	record := payloadToRecord(addr)
	if colorAt(record) != White {
		return
	}
	setColorAt(record, Grey)
	c.grey.push(record)
}

// seedFromRoots implements the seed rule of spec.md §4.4: when the grey
// queue runs dry, scan the root stack and shade every root that points
// into from-space.
func (c *Collector) seedFromRoots() {
	for _, slot := range c.roots.slots {
		c.shade(*slot)
	}
}

// markStep performs one unit of mark work: seed if necessary, then pop
// one grey record, scan its fields, and promote it to black. It reports
// true once marking has nothing left to do.
func (c *Collector) markStep() bool {
	if c.grey.empty() {
		c.seedFromRoots()
	}
	record, ok := c.grey.pop()
	if !ok {
		return true
	}
	header := loadHeaderAt(record)
	n := c.layout.FieldCount(header)
	for i := 0; i < n; i++ {
		c.shade(Ptr(loadFieldAt(record, i)))
	}
	setColorAt(record, Black)
	c.black.push(record)
	return false
}

// resetColorsToWhite walks the live heap linearly, resetting every
// record's color to White. It implements Open Question 2's decision
// (spec.md §9): when a mark phase ends with the DoNothing strategy, no
// sweep runs to reset colors by relocation, so the collector resets them
// directly — otherwise the next mark phase's seed rule would never regrey
// objects left Black by the previous cycle.
func (c *Collector) resetColorsToWhite() {
	addr := c.current.base
	for addr < c.current.bump {
		if colorAt(addr) != White {
			setColorAt(addr, White)
		}
		addr += c.recordSize(addr)
	}
}
