package gc

import "testing"

// shade must be a no-op for an address outside from-space: an externally
// supplied object is never collected or scanned (spec.md §3).
func TestShadeSkipsExternalPointers(t *testing.T) {
	c := newTestCollector()
	const external = Ptr(0xdeadbeef)
	c.shade(external) // must not panic or touch any record
}

// Open Question 2 (spec.md §9): when a mark phase ends in DoNothing, the
// collector resets colors to white directly rather than relying on a
// sweep that never runs.
func TestResetColorsToWhite(t *testing.T) {
	c := newTestCollector()
	var r Ptr
	c.PushRoot(&r)
	defer c.PopRoot()
	r = allocNode(c, 0)

	record := payloadToRecord(uintptr(r))
	setColorAt(record, Black)

	c.resetColorsToWhite()

	if colorAt(record) != White {
		t.Fatalf("color not reset to white after a skipped sweep")
	}
}

// markStep must promote a root directly to black when it has no
// pointer-valued fields to scan.
func TestMarkStepPromotesLeafRootToBlack(t *testing.T) {
	c := newTestCollector()
	var r Ptr
	c.PushRoot(&r)
	defer c.PopRoot()
	r = allocNode(c, 0)

	for done := false; !done; {
		done = c.markStep()
	}

	if colorAt(payloadToRecord(uintptr(r))) != Black {
		t.Fatalf("root was not promoted to black by the end of marking")
	}
}
