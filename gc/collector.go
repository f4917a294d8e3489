package gc

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Collector is an incremental, relocating, tracing garbage collector
// (spec.md §1). It is not safe for concurrent use: the spec's scheduling
// model is single-threaded cooperative (spec.md §5), so every method must
// be called from the one goroutine acting as the mutator. Unlike the C
// reference's process-wide gc singleton, a Collector is an explicit
// handle the caller constructs and threads through its own code — the
// re-implementation direction spec.md §9's Design Notes recommend over a
// hidden global.
type Collector struct {
	cfg    Config
	logger *zap.SugaredLogger
	layout Layout

	phase   Phase
	current *heapRegion
	next    *heapRegion

	grey  *fifoQueue
	black *fifoQueue
	roots *rootStack

	stats *statistics
}

// New constructs a Collector over a freshly allocated initial heap. layout
// must not be nil.
func New(layout Layout, opts ...Option) *Collector {
	if layout == nil {
		panic("gc: New requires a non-nil Layout")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Collector{
		cfg:     cfg,
		logger:  cfg.Logger.Sugar(),
		layout:  layout,
		phase:   Mark,
		current: newHeapRegion(cfg.InitialHeapBytes),
		grey:    newFIFOQueue(),
		black:   newFIFOQueue(),
		roots:   newRootStack(cfg.MaxRoots),
		stats:   newStatistics(cfg.Registerer),
	}
}

// PushRoot registers slot as a root: the collector will keep *slot's
// referent alive and will rewrite *slot in place across a relocation.
// Roots must be popped in LIFO order around the mutator scope that
// introduced them (spec.md §4.3).
func (c *Collector) PushRoot(slot *Ptr) {
	if err := c.roots.push(slot); err != nil {
		c.fatal(ErrRootStackOverflow, err.Error())
	}
	c.stats.recordRootsHighWater(int64(len(c.roots.slots)))
}

// PopRoot discards the most recently pushed root.
func (c *Collector) PopRoot() {
	c.roots.pop()
}

// Alloc bump-allocates payloadBytes worth of managed storage (header +
// fields, however the caller accounts for it) and returns an
// uninitialized payload pointer: the caller must populate the header and
// every field before the object becomes reachable from a root or another
// object's field (spec.md §4.1). Alloc performs exactly one Step of
// incremental collection work before returning.
func (c *Collector) Alloc(payloadBytes uintptr) Ptr {
	total := prefixSize + payloadBytes

	addr, ok := c.current.tryAlloc(total)
	if !ok {
		c.Full()
		addr, ok = c.current.tryAlloc(total)
		if !ok {
			c.fatal(ErrOutOfMemory, fmt.Sprintf("allocation of %d bytes failed after a full collection", total))
		}
	}

	setColorAt(addr, White)
	setForwardAt(addr, 0)
	c.stats.recordAlloc(total)

	payload := Ptr(recordToPayload(addr))
	// Tint grey via the same path the write barrier uses, so the
	// object is scanned even before any root references it. This is
	// safe: the mutator about to store it will either do so (in which
	// case it must survive) or drop it (in which case scanning it is
	// merely wasted, not incorrect) — spec.md §4.1.
	c.shade(payload)
	c.Step()
	return payload
}

// SetHeader and SetField populate a freshly allocated, not-yet-published
// object directly, bypassing the write barrier. This mirrors the spec's
// model of the mutator initializing payload memory before publishing it
// (spec.md §4.1); use Write instead once the object may already be
// reachable.
func (c *Collector) SetHeader(obj Ptr, header uintptr) {
	storeHeaderAt(payloadToRecord(uintptr(obj)), header)
}

func (c *Collector) SetField(obj Ptr, index int, value Ptr) {
	storeFieldAt(payloadToRecord(uintptr(obj)), index, uintptr(value))
}

// Header and Field read a payload's header word and field slots directly,
// without the Read barrier's counting side effect. Useful for inspection
// (tests, diagnostics) that should not skew read statistics.
func (c *Collector) Header(obj Ptr) uintptr {
	return loadHeaderAt(payloadToRecord(uintptr(obj)))
}

func (c *Collector) Field(obj Ptr, index int) Ptr {
	return Ptr(loadFieldAt(payloadToRecord(uintptr(obj)), index))
}

// Step performs one unit of incremental collection work: one mark step if
// in the MARK phase, or one sweep step if in SWEEP, exactly spec.md
// §4.6's gc_step.
func (c *Collector) Step() {
	switch c.phase {
	case Mark:
		if c.markStep() {
			if strategy := c.prepareSweep(false); strategy != DoNothing {
				c.logger.Debugw("gc: mark phase complete, entering sweep phase", "strategy", strategy.String())
				c.phase = Sweep
			} else {
				c.logger.Debugw("gc: mark phase complete, occupancy steady, resetting colors")
				c.resetColorsToWhite()
			}
		}
	case Sweep:
		if c.sweepStep() {
			c.logger.Debugw("gc: sweep phase complete, returning to mark phase")
			c.sweepCleanup()
		}
	}
}

// Full drains marking to completion, forces a MakeBigger sweep regardless
// of occupancy, drains sweeping, and runs cleanup — spec.md §4.6's
// gc_full. It is used internally on allocation failure and may also be
// called directly by the mutator.
func (c *Collector) Full() {
	c.logger.Debugw("gc: full collection requested")
	for !c.markStep() {
	}
	c.prepareSweep(true)
	c.phase = Sweep
	for !c.sweepStep() {
	}
	c.sweepCleanup()
	c.logger.Debugw("gc: full collection complete")
}

// PrintStats writes the human-readable statistics dump to w, matching
// spec.md §6's print_stats.
func (c *Collector) PrintStats(w io.Writer) {
	c.stats.PrintStats(w)
}

// PrintState writes the collector's current phase and heap occupancy.
func (c *Collector) PrintState(w io.Writer) {
	fmt.Fprintf(w, "phase: %s, heap: %d/%d bytes\n", c.phase, c.current.occupied(), c.current.size)
}

// PrintRoots writes every current root, rendering each non-nil referent
// through the configured Printer (spec.md §6's print_managed applied to
// the root set).
func (c *Collector) PrintRoots(w io.Writer) {
	fmt.Fprintf(w, "roots (%d):\n", len(c.roots.slots))
	for _, slot := range c.roots.slots {
		p := *slot
		if p == Nil {
			fmt.Fprintln(w, "  nil")
			continue
		}
		fmt.Fprint(w, "  ")
		c.PrintObject(w, p)
		fmt.Fprintln(w)
	}
}

// PrintObject renders obj's header and fields through the collector's
// configured Printer (spec.md §6's print_managed).
func (c *Collector) PrintObject(w io.Writer, obj Ptr) {
	record := payloadToRecord(uintptr(obj))
	header := loadHeaderAt(record)
	n := c.layout.FieldCount(header)
	fields := make([]uintptr, n)
	for i := 0; i < n; i++ {
		fields[i] = loadFieldAt(record, i)
	}
	c.cfg.Printer.PrintObject(w, header, fields)
}
