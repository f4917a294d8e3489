package gc

import (
	"fmt"
	"io"
)

// Layout is supplied by the embedding runtime. It is the one piece of
// knowledge the collector needs about the managed object format it does
// not otherwise own: how many pointer-sized field slots a given header
// word describes. The collector never interprets header bits beyond this.
type Layout interface {
	// FieldCount extracts the field-slot count from a managed object's
	// header word. It must be deterministic and total: every value the
	// runtime ever stores as a header must yield a valid, non-negative
	// count.
	FieldCount(header uintptr) int
}

// Printer renders a managed object for diagnostics. It is optional; a
// Collector built without WithPrinter falls back to addrOnlyPrinter,
// which prints only the raw header and field words.
type Printer interface {
	PrintObject(w io.Writer, header uintptr, fields []uintptr)
}

type addrOnlyPrinter struct{}

func (addrOnlyPrinter) PrintObject(w io.Writer, header uintptr, fields []uintptr) {
	fmt.Fprintf(w, "object{header: %#x, fields: %v}", header, fields)
}
