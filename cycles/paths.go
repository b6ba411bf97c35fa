package cycles

// backtrackMark is pushed under a node's successors so the path length
// unwinds when the node's subtree is exhausted. Node indices are
// non-negative, so the negative range is free.
const backtrackMark int32 = -1

// FindPath searches for a directed path from x to y and returns its
// length in nodes (so x == y yields 1 and an absent path yields 0).
//
// Up to len(buf) handles are written into buf in source→destination
// order; the return value is the TRUE length even when it exceeds
// len(buf), so callers detect truncation by comparing the two; a nil
// buf turns the call into a pure existence query.
//
// The search is an iterative DFS over the out-sets, pruned by the rank
// invariant: no node with rank above rank(y) can lie on a path to y.
//
// Complexity: O(V + E) worst case; O(1) goroutine stack.
func (g *Graph) FindPath(x, y ID, buf []ID) int {
	ix, nx := g.resolve(x)
	iy, ny := g.resolve(y)
	if nx == nil || ny == nil {
		return 0
	}

	// Every edge climbs ranks, so a source already above the target
	// cannot reach it.
	if nx.rank > ny.rank {
		return 0
	}

	g.seen.Clear()
	g.stack.Clear()
	g.stack.PushBack(ix)
	pathLen := 0

	for g.stack.Len() > 0 {
		idx := g.stack.PopBack()
		if idx < 0 {
			// Subtree exhausted: drop its node from the current path.
			pathLen--

			continue
		}
		n := g.nodes[idx]

		if pathLen < len(buf) {
			buf[pathLen] = makeID(idx, n.version)
		}
		pathLen++
		g.stack.PushBack(backtrackMark)

		if idx == iy {
			return pathLen
		}

		cur := 0
		for {
			w, more := n.out.Next(&cur)
			if !more {
				break
			}
			if g.nodes[w].rank > ny.rank {
				continue
			}
			if g.seen.Insert(w) {
				g.stack.PushBack(w)
			}
		}
	}

	return 0
}

// IsReachable reports whether a directed path from x to y exists
// (trivially true for x == y). Stale handles yield false.
func (g *Graph) IsReachable(x, y ID) bool {
	return g.FindPath(x, y, nil) > 0
}
