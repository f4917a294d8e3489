package gc

import "testing"

func TestReadCountsAccess(t *testing.T) {
	c := newTestCollector()
	var r Ptr
	c.PushRoot(&r)
	defer c.PopRoot()
	r = allocNode(c, 1)

	before := c.stats.reads.Load()
	if got := c.Read(r, 0); got != Nil {
		t.Fatalf("Read of an untouched field = %#x, want Nil", got)
	}
	if after := c.stats.reads.Load(); after != before+1 {
		t.Fatalf("reads counter = %d, want %d", after, before+1)
	}
}

func TestWriteShadesWhiteValue(t *testing.T) {
	c := newTestCollector()
	var a Ptr
	c.PushRoot(&a)
	defer c.PopRoot()
	a = allocNode(c, 1)
	b := allocNode(c, 0)
	// Alloc's own Step has already marked b; make it white again so the
	// barrier has a white value to shade.
	setColorAt(payloadToRecord(uintptr(b)), White)

	before := c.stats.writes.Load()
	c.Write(a, 0, b)
	if after := c.stats.writes.Load(); after != before+1 {
		t.Fatalf("writes counter = %d, want %d", after, before+1)
	}

	if c.Field(a, 0) != b {
		t.Fatalf("Write did not store the value")
	}
	if colorAt(payloadToRecord(uintptr(b))) == White {
		t.Fatalf("write barrier left a published value white")
	}
}
