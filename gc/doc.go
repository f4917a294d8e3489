// Package gc implements an incremental, relocating, tracing garbage
// collector for a managed runtime whose values are heap-allocated managed
// objects: a header word plus a fixed number of pointer-sized field slots.
//
// The collector is driven cooperatively by its caller (the "mutator"):
// every call to Alloc performs one unit of collection work, and the
// mutator can force a full collection with Full when allocation fails.
// There is no background goroutine and no concurrency with the mutator —
// every exported method must be called from a single goroutine at a time.
//
// Collection proceeds in two phases. MARK seeds a grey worklist from the
// root set and drains it, shading every reachable object black. Once
// marking completes, the collector decides (by occupancy) whether to
// relocate: SWEEP copies every black object from the current heap
// ("from-space") into a freshly sized heap ("to-space") using Cheney-style
// forwarding with the chase optimization, then rewrites every surviving
// pointer — in relocated objects and in the root set — to point at the new
// copies. An insertion write barrier (Collector.Write) keeps the
// tri-color invariant intact between collector steps.
package gc
