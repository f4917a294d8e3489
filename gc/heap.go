package gc

import "unsafe"

// heapRegion is a contiguous byte buffer with a bump pointer, exactly the
// tuple (base, size, bump) of spec.md §3. Go's garbage collector does not
// relocate heap allocations, so it is safe to take the address of the
// backing array once and hand out raw uintptr addresses into it for the
// region's lifetime, the same way the teacher's runtime tracks
// mheap_.arena_start/arena_used as plain uintptrs over a reserved range
// (see runtime/mgcmark.go's bounds checks against arena_start/arena_used)
// and the way a conservative Go GC tracks heapStart/heapEnd as uintptrs
// over a manually managed arena.
type heapRegion struct {
	mem  []byte
	base uintptr
	size uintptr
	bump uintptr
}

func newHeapRegion(size uintptr) *heapRegion {
	if size == 0 {
		size = 1
	}
	mem := make([]byte, size)
	base := uintptr(unsafe.Pointer(&mem[0]))
	return &heapRegion{mem: mem, base: base, size: size, bump: base}
}

// contains reports whether addr lies strictly within the region, per the
// "strict <" resolution of spec.md §9's Open Question 1: a pointer sitting
// exactly at base+size is one-past-the-end and does not belong here.
func (h *heapRegion) contains(addr uintptr) bool {
	return addr >= h.base && addr < h.base+h.size
}

// tryAlloc bump-allocates n bytes, returning ok=false if the region has
// no room. It leaves at least one byte of slack at the top of the region,
// matching the C reference's strict "<" comparison in
// is_enough_place_in_current_heap.
func (h *heapRegion) tryAlloc(n uintptr) (uintptr, bool) {
	if h.bump+n >= h.base+h.size {
		return 0, false
	}
	addr := h.bump
	h.bump += n
	return addr, true
}

// occupied returns the number of bytes already bump-allocated.
func (h *heapRegion) occupied() uintptr {
	return h.bump - h.base
}
