package gc

import "testing"

// Open Question 3 (spec.md §9): a MakeSmaller resize never picks a
// to-space smaller than the live set plus the configured slack.
func TestResizeSmallerClampsToLiveSetPlusSlack(t *testing.T) {
	c := newTestCollector(WithInitialHeapBytes(4096), WithResizeSlack(8))
	var r Ptr
	c.PushRoot(&r)
	defer c.PopRoot()
	r = allocNode(c, 0)

	live := c.stats.currentBytes.Load()

	strategy := c.prepareSweep(false)
	if strategy != MakeSmaller {
		t.Fatalf("expected MakeSmaller at low occupancy, got %s", strategy)
	}

	floor := uintptr(live) + c.cfg.ResizeSlack
	if c.next.size < floor {
		t.Fatalf("to-space size %d is below live+slack floor %d", c.next.size, floor)
	}
}

func TestPrepareSweepForceAlwaysGrows(t *testing.T) {
	c := newTestCollector(WithInitialHeapBytes(4096))
	var r Ptr
	c.PushRoot(&r)
	defer c.PopRoot()
	r = allocNode(c, 0)

	strategy := c.prepareSweep(true)
	if strategy != MakeBigger {
		t.Fatalf("force=true must always report MakeBigger, got %s", strategy)
	}
	if c.next.size != c.current.size*GrowFactor {
		t.Fatalf("forced grow size = %d, want %d", c.next.size, c.current.size*GrowFactor)
	}
}
