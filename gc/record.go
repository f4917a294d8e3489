package gc

import "unsafe"

// recordPrefix is the fixed metadata prepended to every managed payload,
// per spec.md §3: a color and a forwarding slot, immediately followed by
// the payload (header word + N field slots). ptrSize-wide fields keep the
// whole prefix naturally aligned regardless of the platform's pointer
// width, the same assumption the spec's byte-budget arithmetic makes.
type recordPrefix struct {
	color   Color
	forward uintptr
}

var (
	prefixSize = unsafe.Sizeof(recordPrefix{})
	ptrSize    = unsafe.Sizeof(uintptr(0))
)

func prefixAt(record uintptr) *recordPrefix {
	return (*recordPrefix)(unsafe.Pointer(record))
}

// payloadToRecord and recordToPayload implement the accessor of spec.md
// §4's "object accessor": constant-offset arithmetic mapping a mutator-
// visible payload pointer to the collector's internal record and back.
func payloadToRecord(payload uintptr) uintptr { return payload - prefixSize }
func recordToPayload(record uintptr) uintptr  { return record + prefixSize }

func colorAt(record uintptr) Color      { return prefixAt(record).color }
func setColorAt(record uintptr, c Color) { prefixAt(record).color = c }
func forwardAt(record uintptr) uintptr   { return prefixAt(record).forward }
func setForwardAt(record uintptr, f uintptr) { prefixAt(record).forward = f }

func loadUintptr(addr uintptr) uintptr        { return *(*uintptr)(unsafe.Pointer(addr)) }
func storeUintptr(addr uintptr, v uintptr)    { *(*uintptr)(unsafe.Pointer(addr)) = v }

// Payload layout: one ptrSize header word followed by N ptrSize field
// slots, exactly spec.md §3's "header + N pointer slots".
func loadHeaderAt(record uintptr) uintptr {
	return loadUintptr(recordToPayload(record))
}

func storeHeaderAt(record uintptr, header uintptr) {
	storeUintptr(recordToPayload(record), header)
}

func fieldAddr(record uintptr, index int) uintptr {
	return recordToPayload(record) + ptrSize + uintptr(index)*ptrSize
}

func loadFieldAt(record uintptr, index int) uintptr {
	return loadUintptr(fieldAddr(record, index))
}

func storeFieldAt(record uintptr, index int, value uintptr) {
	storeUintptr(fieldAddr(record, index), value)
}

// recordSize computes the total footprint of a record (prefix + header +
// N fields) from its header word via the runtime-supplied Layout,
// matching the C reference's get_gc_object_size.
func (c *Collector) recordSize(record uintptr) uintptr {
	n := c.layout.FieldCount(loadHeaderAt(record))
	return prefixSize + ptrSize + uintptr(n)*ptrSize
}
