// Package cyclath is an incremental cycle detector for dynamically
// mutated directed graphs — built for lock-ordering validation and
// dependency tracking at runtime, with near-O(1) amortized edge
// insertion in the common (non-cycle-introducing) case.
//
// 🚀 What is cyclath?
//
//	A small, allocation-disciplined library that brings together:
//		• Online topological-order maintenance (Pearce–Kelly)
//		• Exact yes/no cycle detection on every edge insertion
//		• Reachability queries and path reconstruction
//		• Versioned node handles — use-after-remove is a safe no-op
//		• Arena-recycled storage — no heap allocation in the steady state
//
// ✨ Why choose cyclath?
//
//   - Built to run inside locks – no callbacks, no blocking, no logging
//   - Rock-solid guarantees – rank invariant checked by a debug validator
//   - Pure Go – no cgo, iterative traversals with O(1) goroutine stack
//   - Predictable – explicit rollback on would-cycle, idempotent inserts
//
// Everything is organized under four subpackages, leaves first:
//
//	arena/    — power-of-two slab recycler backing all dynamic storage
//	smallvec/ — growable int32 vector with a small inline buffer
//	intset/   — open-addressed integer set (adjacency & work-lists)
//	cycles/   — the Graph: handles, edge maintenance, paths, invariants
//
// Quick ASCII example:
//
//	    A──▶B──▶C
//	    ▲        │
//	    └───✗────┘
//
//	inserting C→A is refused: it would close a cycle.
//
// Dive into cycles/doc.go for the full contract, complexity notes, and
// the caller-side serialization rule.
//
//	go get github.com/katalvlaran/cyclath/cycles
package cyclath
