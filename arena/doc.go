// Package arena provides a slab recycler for the int32 buffers that back
// every dynamic structure in cyclath (adjacency tables, work-lists,
// delta-lists).
//
// Buffers are handed out with power-of-two capacity and returned to
// per-size-class free lists on Free, so once a graph has warmed up,
// mutation performs no heap allocation at all. New slabs are taken from
// the Go runtime only when a size class is empty; the runtime allocator
// is reentrancy-safe, so the recycler exists for allocation *cost*
// discipline, not correctness.
//
// Key properties:
//
//   - Alloc(n) returns len == n, cap == next power of two ≥ n
//   - Recycled buffers are NOT zeroed — callers initialize what they read
//   - Free lists are guarded by a single mutex, held only for list ops
//   - Default() is a process-wide singleton, created once, never torn down
//   - Exhaustion is fatal (the runtime panics); there is no error path,
//     by design — callers sit below any layer that could recover
//
// Complexity:
//
//   - Alloc / Free: O(1) plus one lock acquisition
//   - Memory: retained slabs are never returned to the runtime
package arena
