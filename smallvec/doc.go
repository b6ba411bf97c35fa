// Package smallvec implements Vec, a growable sequence of int32 values
// with a small inline buffer.
//
// Vec is the backing store for every dynamic list in cyclath: hash-set
// slot arrays, DFS work stacks, delta-lists, the free-slot list. The
// first InlineCap (8) elements live inside the struct; beyond that the
// vector spills to an arena buffer and doubles on growth, so a vector
// that stays small never allocates and a vector that grows reuses
// recycled slabs.
//
// Key properties:
//
//   - Zero value ready; binds to arena.Default() on first spill
//   - PushBack / PopBack / Resize / Fill / At / SetAt — plain semantics
//   - Resize exposes unspecified contents in the grown tail (callers fill)
//   - MoveFrom steals the source's spill buffer in O(1) when it has one,
//     otherwise copies O(n); the source is empty either way
//   - Data returns a live view — valid only until the next growth
//
// Vec contains an inline array and must not be copied after first use;
// pass *Vec.
//
// Complexity:
//
//   - PushBack: O(1) amortized; At/SetAt/PopBack: O(1)
//   - Memory: max(InlineCap, next power of two ≥ len) slots
package smallvec
