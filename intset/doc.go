// Package intset implements Set, an open-addressed hash set of
// non-negative int32 values, used for node adjacency (in/out edge sets)
// and traversal work-sets.
//
// The design is deliberately manual rather than map[int32]struct{}: slot
// storage is a smallvec.Vec over recycled arena slabs, growth is
// deterministic doubling, and no operation allocates once the table has
// reached its working size — the set is safe to mutate from
// allocation-sensitive call paths.
//
// Layout and algorithm:
//
//   - Slots hold the value itself; -1 marks an empty slot, -2 a tombstone
//     left by Erase so probe chains for other values stay intact
//   - Hash: v*41, masked to the power-of-two table size
//   - Probing: linear; insertion reuses the first tombstone on the probe
//     path, but only after the chain has been scanned for an existing entry
//   - Growth: at 75% occupancy (live + tombstones), table doubles and
//     surviving entries rehash through a MoveFrom-stolen copy
//   - Initial table: 8 slots, allocated lazily on first Insert
//
// Iteration is cursor-based (Next) and yields elements in unspecified
// order; mutating the set invalidates cursors.
//
// Complexity:
//
//   - Insert / Erase / Contains: O(1) expected
//   - Next: O(capacity) for a full sweep
package intset
