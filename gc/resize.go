package gc

// Strategy is the resize decision of spec.md §4.6's occupancy table.
type Strategy int

const (
	MakeBigger Strategy = iota
	MakeSmaller
	DoNothing
)

func (s Strategy) String() string {
	switch s {
	case MakeBigger:
		return "make-bigger"
	case MakeSmaller:
		return "make-smaller"
	case DoNothing:
		return "do-nothing"
	default:
		return "strategy(?)"
	}
}

// strategy chooses MakeBigger/MakeSmaller/DoNothing from current
// occupancy, per spec.md §4.6.
func (c *Collector) strategy() Strategy {
	occupancy := float64(c.stats.currentBytes.Load()) / float64(c.current.size)
	switch {
	case occupancy > GrowThreshold:
		return MakeBigger
	case occupancy < ShrinkThreshold:
		return MakeSmaller
	default:
		return DoNothing
	}
}

// prepareSweep decides a to-space size and allocates it, returning the
// strategy used. force overrides the occupancy decision to MakeBigger,
// the behavior gc_full requires: "allocation demand is the reason we
// were called" (spec.md §4.6).
func (c *Collector) prepareSweep(force bool) Strategy {
	s := c.strategy()
	if force {
		s = MakeBigger
	}
	switch s {
	case MakeBigger:
		c.next = newHeapRegion(c.current.size * GrowFactor)
	case MakeSmaller:
		size := c.current.size / ShrinkFactor
		live := uintptr(c.stats.currentBytes.Load())
		// Open Question 3 (spec.md §9): clamp so a shrink never picks
		// a to-space smaller than the live set plus slack.
		if floor := live + c.cfg.ResizeSlack; size < floor {
			size = floor
		}
		c.next = newHeapRegion(size)
	case DoNothing:
	}
	c.logger.Debugw("gc: resize decision", "strategy", s.String(), "current_size", c.current.size)
	return s
}
