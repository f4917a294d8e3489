package gc

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Tunable defaults, from spec.md §6.
const (
	DefaultMaxRoots         = 2048
	DefaultInitialHeapBytes = 1024

	// GrowThreshold and ShrinkThreshold are the occupancy bounds of
	// spec.md §4.6's resize table.
	GrowThreshold   = 0.7
	ShrinkThreshold = 0.2

	// GrowFactor and ShrinkFactor are the to-space sizing multipliers.
	GrowFactor   = 2
	ShrinkFactor = 2

	// DefaultResizeSlack is the headroom added on top of the live set
	// when clamping a MakeSmaller resize, per spec.md §9's Open
	// Question 3 ("clamp to-space to >= current_allocated_bytes").
	DefaultResizeSlack = 64
)

// Config holds the collector's tunable knobs. Use the With* options with
// New rather than constructing Config directly, so future fields default
// sensibly.
type Config struct {
	MaxRoots         int
	InitialHeapBytes uintptr
	ResizeSlack      uintptr
	Logger           *zap.Logger
	Registerer       prometheus.Registerer
	Printer          Printer
}

// Option configures a Collector at construction time.
type Option func(*Config)

// WithMaxRoots overrides the root-stack depth limit (spec.md §6's
// MAX_ROOTS).
func WithMaxRoots(n int) Option {
	return func(c *Config) { c.MaxRoots = n }
}

// WithInitialHeapBytes overrides the starting from-space size (spec.md
// §6's INITIAL_HEAP_BYTES).
func WithInitialHeapBytes(n uintptr) Option {
	return func(c *Config) { c.InitialHeapBytes = n }
}

// WithResizeSlack overrides the headroom clamp applied to MakeSmaller
// resizes.
func WithResizeSlack(n uintptr) Option {
	return func(c *Config) { c.ResizeSlack = n }
}

// WithLogger supplies a zap.Logger for collector diagnostics. Without
// one, New falls back to a no-op logger: the collector never creates a
// production logger implicitly, since that would surprise an embedder
// who didn't ask for stderr output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithRegisterer registers the collector's statistics as Prometheus
// metrics. Without one, the collector only maintains its in-process
// counters (see PrintStats).
func WithRegisterer(r prometheus.Registerer) Option {
	return func(c *Config) { c.Registerer = r }
}

// WithPrinter supplies a Printer used by PrintRoots and PrintObject to
// render a managed object's header and fields for diagnostics. Without
// one, the collector falls back to a Printer that prints only the raw
// header and field words (spec.md §6's print_managed).
func WithPrinter(p Printer) Option {
	return func(c *Config) { c.Printer = p }
}

func defaultConfig() Config {
	return Config{
		MaxRoots:         DefaultMaxRoots,
		InitialHeapBytes: DefaultInitialHeapBytes,
		ResizeSlack:      DefaultResizeSlack,
		Logger:           zap.NewNop(),
		Registerer:       nil,
		Printer:          addrOnlyPrinter{},
	}
}
