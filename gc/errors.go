package gc

import "github.com/pkg/errors"

// Sentinel errors for the collector's fatal conditions (spec.md §7).
// There is no recoverable path for any of these: reclamation is a
// precondition for mutator progress, so the collector panics with one of
// these wrapped in a stack trace rather than returning an error a caller
// might be tempted to ignore.
var (
	ErrOutOfMemory       = errors.New("gc: out of memory")
	ErrToSpaceOverflow   = errors.New("gc: to-space overflow during sweep")
	ErrRootStackOverflow = errors.New("gc: root stack overflow")
)

// fatal logs and panics with a stack-annotated error, the Go equivalent
// of the spec's "process-aborts with a diagnostic" (spec.md §9's Design
// Notes recommend surfacing these as panics, not recoverable errors).
func (c *Collector) fatal(base error, detail string) {
	err := errors.Wrap(base, detail)
	c.logger.Errorw("gc: fatal condition", "error", err)
	panic(err)
}
