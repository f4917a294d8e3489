package gc

import "testing"

// Open Question 1 (spec.md §9): heap membership uses a strict "<" at the
// top of the region, so a one-past-the-end address does not belong.
func TestHeapMembershipStrict(t *testing.T) {
	h := newHeapRegion(64)

	if !h.contains(h.base) {
		t.Fatalf("base address must be contained")
	}
	if h.contains(h.base + h.size) {
		t.Fatalf("one-past-the-end address must not be contained")
	}
	if !h.contains(h.base + h.size - 1) {
		t.Fatalf("last in-range address must be contained")
	}
}

func TestTryAllocLeavesNoOverrun(t *testing.T) {
	h := newHeapRegion(16)
	if _, ok := h.tryAlloc(16); ok {
		t.Fatalf("tryAlloc(16) on a 16-byte region should fail: no room for a one-past-the-end bump")
	}
	addr, ok := h.tryAlloc(8)
	if !ok {
		t.Fatalf("tryAlloc(8) on a 16-byte region should succeed")
	}
	if addr != h.base {
		t.Fatalf("first allocation should start at base")
	}
	if h.occupied() != 8 {
		t.Fatalf("occupied() = %d, want 8", h.occupied())
	}
}
