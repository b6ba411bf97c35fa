package cycles

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Validate exhaustively checks the graph's structural invariants and
// returns the first violation found, wrapped around one of the package
// sentinels. It is test/debug support: a correct build can never make
// it fail, and production callers are expected to skip it entirely.
//
// Checked, over every slot (free slots hold ranks too):
//
//  1. ranks are unique within [0, table size): ErrRankPermutation
//  2. no visited mark survives between operations: ErrDanglingVisited
//  3. every edge (x, y) has rank(x) < rank(y): ErrRankOrder
//  4. in/out sets mirror each other exactly: ErrEdgeAsymmetry
//
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	ranks := bitset.New(uint(len(g.nodes)))

	for i, n := range g.nodes {
		idx := int32(i)

		if n.visited {
			return fmt.Errorf("%w: node %d", ErrDanglingVisited, idx)
		}

		if n.rank < 0 || int(n.rank) >= len(g.nodes) {
			return fmt.Errorf("%w: node %d rank %d outside [0,%d)",
				ErrRankPermutation, idx, n.rank, len(g.nodes))
		}
		if ranks.Test(uint(n.rank)) {
			return fmt.Errorf("%w: rank %d held twice", ErrRankPermutation, n.rank)
		}
		ranks.Set(uint(n.rank))

		cur := 0
		for {
			w, more := n.out.Next(&cur)
			if !more {
				break
			}
			m := g.nodes[w]
			if !m.in.Contains(idx) {
				return fmt.Errorf("%w: %d→%d missing from in-set", ErrEdgeAsymmetry, idx, w)
			}
			if n.rank >= m.rank {
				return fmt.Errorf("%w: edge %d→%d with ranks %d≥%d",
					ErrRankOrder, idx, w, n.rank, m.rank)
			}
		}

		cur = 0
		for {
			w, more := n.in.Next(&cur)
			if !more {
				break
			}
			if !g.nodes[w].out.Contains(idx) {
				return fmt.Errorf("%w: %d→%d missing from out-set", ErrEdgeAsymmetry, w, idx)
			}
		}
	}

	return nil
}

// CheckInvariants reports whether Validate passes. Kept as the boolean
// twin for assertion-style call sites.
func (g *Graph) CheckInvariants() bool { return g.Validate() == nil }
