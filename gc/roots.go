package gc

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// Ptr is the address of a managed object's payload, as handed back by
// Alloc. The zero value represents the managed nil; anything else is
// either an address inside the collector's current heap or an opaque
// address owned by the embedding runtime (an externally supplied,
// immutable object per spec.md §3).
type Ptr uintptr

// Nil is the managed null pointer. The spec assumes the mutator never
// stores it into a field, but field scanning defensively skips it anyway
// (spec.md §4.4, "Null-valued fields").
const Nil Ptr = 0

// rootStack is the bounded stack of root.md §3's "address of a mutator
// variable holding a payload pointer" — double indirection so relocation
// can rewrite the mutator's own variable in place.
type rootStack struct {
	slots     []*Ptr
	max       int
	highWater *atomic.Int64
}

func newRootStack(max int) *rootStack {
	return &rootStack{
		slots:     make([]*Ptr, 0, max),
		max:       max,
		highWater: atomic.NewInt64(0),
	}
}

func (r *rootStack) push(slot *Ptr) error {
	if len(r.slots) >= r.max {
		return errors.Errorf("gc: root stack overflow: exceeded %d roots", r.max)
	}
	r.slots = append(r.slots, slot)
	if n := int64(len(r.slots)); n > r.highWater.Load() {
		r.highWater.Store(n)
	}
	return nil
}

// pop discards the top root. It takes no slot argument: LIFO discipline
// is assumed, not checked, matching spec.md §4.3.
func (r *rootStack) pop() {
	if len(r.slots) == 0 {
		return
	}
	r.slots = r.slots[:len(r.slots)-1]
}
