package gc

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

// statistics mirrors the C reference's gc_stats_t plus the free-standing
// total_reads/total_writes/gc_roots_max_size counters, backed by
// go.uber.org/atomic so a supervising goroutine can read them while the
// mutator's thread drives the collector (spec.md §5), and mirrored into
// Prometheus when a Registerer is configured.
type statistics struct {
	totalBytes     *atomic.Uint64
	totalObjects   *atomic.Uint64
	maxBytes       *atomic.Uint64
	maxObjects     *atomic.Uint64
	currentBytes   *atomic.Uint64
	currentObjects *atomic.Uint64
	reads          *atomic.Uint64
	writes         *atomic.Uint64
	rootsHighWater *atomic.Int64

	allocBytesTotal     prometheus.Counter
	allocObjectsTotal   prometheus.Counter
	readsTotal          prometheus.Counter
	writesTotal         prometheus.Counter
	heapCurrentBytes    prometheus.Gauge
	heapCurrentObjects  prometheus.Gauge
	rootsHighWaterGauge prometheus.Gauge
}

func newStatistics(reg prometheus.Registerer) *statistics {
	s := &statistics{
		totalBytes:     atomic.NewUint64(0),
		totalObjects:   atomic.NewUint64(0),
		maxBytes:       atomic.NewUint64(0),
		maxObjects:     atomic.NewUint64(0),
		currentBytes:   atomic.NewUint64(0),
		currentObjects: atomic.NewUint64(0),
		reads:          atomic.NewUint64(0),
		writes:         atomic.NewUint64(0),
		rootsHighWater: atomic.NewInt64(0),

		allocBytesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "relocgc", Name: "alloc_bytes_total",
			Help: "Total bytes allocated by the collector over the program's lifetime.",
		}),
		allocObjectsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "relocgc", Name: "alloc_objects_total",
			Help: "Total objects allocated by the collector over the program's lifetime.",
		}),
		readsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "relocgc", Name: "reads_total",
			Help: "Total calls to the read barrier.",
		}),
		writesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "relocgc", Name: "writes_total",
			Help: "Total calls to the write barrier.",
		}),
		heapCurrentBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "relocgc", Name: "heap_current_bytes",
			Help: "Bytes currently live in the collector's from-space.",
		}),
		heapCurrentObjects: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "relocgc", Name: "heap_current_objects",
			Help: "Objects currently live in the collector's from-space.",
		}),
		rootsHighWaterGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "relocgc", Name: "roots_high_water",
			Help: "Highest number of roots pushed at once.",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			s.allocBytesTotal, s.allocObjectsTotal,
			s.readsTotal, s.writesTotal,
			s.heapCurrentBytes, s.heapCurrentObjects,
			s.rootsHighWaterGauge,
		)
	}
	return s
}

func (s *statistics) recordAlloc(n uintptr) {
	s.totalBytes.Add(uint64(n))
	s.totalObjects.Inc()
	s.currentBytes.Add(uint64(n))
	s.currentObjects.Inc()
	if cb := s.currentBytes.Load(); cb > s.maxBytes.Load() {
		s.maxBytes.Store(cb)
	}
	if co := s.currentObjects.Load(); co > s.maxObjects.Load() {
		s.maxObjects.Store(co)
	}
	s.allocBytesTotal.Add(float64(n))
	s.allocObjectsTotal.Inc()
	s.heapCurrentBytes.Set(float64(s.currentBytes.Load()))
	s.heapCurrentObjects.Set(float64(s.currentObjects.Load()))
}

// resetCurrent zeroes the live-set counters, called at the start of every
// successful sweep cleanup (spec.md §8 property 7).
func (s *statistics) resetCurrent() {
	s.currentBytes.Store(0)
	s.currentObjects.Store(0)
	s.heapCurrentBytes.Set(0)
	s.heapCurrentObjects.Set(0)
}

func (s *statistics) recordRead() {
	s.reads.Inc()
	s.readsTotal.Inc()
}

func (s *statistics) recordWrite() {
	s.writes.Inc()
	s.writesTotal.Inc()
}

func (s *statistics) recordRootsHighWater(n int64) {
	if n > s.rootsHighWater.Load() {
		s.rootsHighWater.Store(n)
		s.rootsHighWaterGauge.Set(float64(n))
	}
}

// PrintStats writes the human-readable counters dump spec.md §6 calls
// print_stats.
func (s *statistics) PrintStats(w io.Writer) {
	fmt.Fprintf(w, "Total memory allocation: %d bytes (%d objects)\n", s.totalBytes.Load(), s.totalObjects.Load())
	fmt.Fprintf(w, "Maximum residency:       %d bytes (%d objects)\n", s.maxBytes.Load(), s.maxObjects.Load())
	fmt.Fprintf(w, "Total memory use:        %d reads and %d writes\n", s.reads.Load(), s.writes.Load())
	fmt.Fprintf(w, "Max GC roots stack size: %d roots\n", s.rootsHighWater.Load())
}
