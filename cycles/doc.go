// Package cycles maintains a dynamically mutated directed graph under a
// topological order, detecting cycles incrementally as edges arrive.
// Its intended use is lock-ordering validation: one node per lock, one
// edge per observed acquisition order, one InsertEdge call per
// acquisition — with an answer in near-O(1) amortized time when the new
// edge is consistent with the order already maintained.
//
// Key features:
//
//   - Graph.InsertEdge(x, y): true if the edge now exists and the graph
//     is still acyclic; false (graph unchanged) if it would close a cycle
//   - Online topological-order repair (Pearce–Kelly): only the rank range
//     disturbed by an inserting edge is re-packed, nodes outside the two
//     delta searches keep their exact rank
//   - Versioned handles (ID): using a handle after RemoveNode is a safe
//     no-op, never a crash and never a silent hit on a recycled slot
//   - Reachability and path reconstruction with rank-bounded pruning
//   - Iterative traversals only — explicit work stacks, O(1) goroutine
//     stack no matter how large the graph grows
//   - Arena-recycled adjacency storage: steady-state mutation does not
//     touch the heap
//
// Concurrency:
//
// A Graph performs no internal locking. It is designed to be called from
// inside a caller-held lock (e.g. a lock-order-checking hook), so the
// caller serializes all access; no operation blocks, yields, or calls
// back into user code (the one exception is the capture callback handed
// to UpdateStackTrace, which runs synchronously).
//
// Complexity:
//
//   - InsertEdge: O(1) expected when rank(x) < rank(y) already;
//     O(|disturbed subgraph| · log) on repair; cycle rejection rolls back
//     in O(nodes visited by the forward search)
//   - RemoveEdge / RemoveNode: O(1) / O(degree) — removal never needs repair
//   - FindPath / IsReachable: O(V + E) worst case, rank-pruned
//
// Errors:
//
// The mutating API reports outcomes as booleans per its contract
// (would-cycle and self-edge are a false return with the graph left
// unchanged; stale handles are uniform no-ops). Sentinel errors exist
// only behind the debug validator:
//
//	ErrRankPermutation - live ranks are not unique within the table
//	ErrRankOrder       - an edge (x,y) with rank(x) >= rank(y)
//	ErrDanglingVisited - a visited mark survived outside a traversal
//	ErrEdgeAsymmetry   - in/out adjacency sets disagree
package cycles
