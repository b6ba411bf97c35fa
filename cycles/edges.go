package cycles

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/cyclath/smallvec"
)

// HasEdge reports whether the edge (x, y) exists. Stale handles yield
// false.
func (g *Graph) HasEdge(x, y ID) bool {
	_, nx := g.resolve(x)
	iy, ny := g.resolve(y)
	if nx == nil || ny == nil {
		return false
	}

	return nx.out.Contains(iy)
}

// InsertEdge adds the edge (x, y) if doing so keeps the graph acyclic.
//
// It returns true when the edge now exists: newly inserted, or already
// present (the call is idempotent). It returns false, with the graph
// left exactly as it was, when the edge would close a directed cycle or
// when x == y (self-edges are refused outright). Stale handles are an
// expired no-op and return true: there is nothing left to order.
//
// The common case, rank(x) < rank(y) already, inserts in O(1)
// expected time. Otherwise the disturbed rank interval (rank(y),
// rank(x)) is repaired by two bounded searches and a local rank
// reassignment; nodes outside the searches keep their exact rank.
func (g *Graph) InsertEdge(x, y ID) bool {
	ix, nx := g.resolve(x)
	iy, ny := g.resolve(y)
	if nx == nil || ny == nil {
		return true
	}
	if ix == iy {
		return false
	}

	// 1) Tentatively insert. Idempotence falls out of the set insert.
	if !nx.out.Insert(iy) {
		return true
	}
	ny.in.Insert(ix)
	g.edges++

	// 2) Fast path: the edge agrees with the maintained order.
	if nx.rank < ny.rank {
		return true
	}

	// 3) Forward search from y, bounded below rank(x). Touching rank(x)
	//    itself means y reaches x: the tentative edge closes a cycle.
	if !g.forwardSearch(iy, nx.rank) {
		nx.out.Erase(iy)
		ny.in.Erase(ix)
		g.edges--
		g.clearVisited(&g.deltaF)

		return false
	}

	// 4) Backward search from x, bounded above rank(y), then re-pack the
	//    disturbed ranks.
	g.backwardSearch(ix, ny.rank)
	g.reorder()

	return true
}

// RemoveEdge deletes the edge (x, y). Absent edges and stale handles
// are a no-op. Removing an edge can only relax ordering constraints,
// so the rank invariant survives without repair.
func (g *Graph) RemoveEdge(x, y ID) {
	ix, nx := g.resolve(x)
	iy, ny := g.resolve(y)
	if nx == nil || ny == nil {
		return
	}
	if nx.out.Erase(iy) {
		ny.in.Erase(ix)
		g.edges--
	}
}

// forwardSearch walks successors of start, visiting only nodes with
// rank < upper, and collects them (visited-marked) into deltaF. It
// returns false the moment any successor sits exactly at rank upper,
// the Pearce–Kelly cycle signal. On that path deltaF holds every node
// marked so far, for the caller to unmark.
func (g *Graph) forwardSearch(start, upper int32) bool {
	g.deltaF.Clear()
	g.stack.Clear()
	g.stack.PushBack(start)

	for g.stack.Len() > 0 {
		idx := g.stack.PopBack()
		n := g.nodes[idx]
		if n.visited {
			continue
		}
		n.visited = true
		g.deltaF.PushBack(idx)

		cur := 0
		for {
			w, more := n.out.Next(&cur)
			if !more {
				break
			}
			nw := g.nodes[w]
			if nw.rank == upper {
				return false
			}
			if !nw.visited && nw.rank < upper {
				g.stack.PushBack(w)
			}
		}
	}

	return true
}

// backwardSearch walks predecessors of start, visiting only nodes with
// rank > lower, collecting them (visited-marked) into deltaB. No cycle
// can surface here: the forward search already proved y cannot reach x.
func (g *Graph) backwardSearch(start, lower int32) {
	g.deltaB.Clear()
	g.stack.Clear()
	g.stack.PushBack(start)

	for g.stack.Len() > 0 {
		idx := g.stack.PopBack()
		n := g.nodes[idx]
		if n.visited {
			continue
		}
		n.visited = true
		g.deltaB.PushBack(idx)

		cur := 0
		for {
			w, more := n.in.Next(&cur)
			if !more {
				break
			}
			nw := g.nodes[w]
			if !nw.visited && nw.rank > lower {
				g.stack.PushBack(w)
			}
		}
	}
}

// reorder re-packs the ranks disturbed by an inserting edge.
//
// Both delta-lists are sorted by current rank; the backward list (which
// must precede x, inclusive) is concatenated before the forward list
// (y and after). The sorted union of their old rank values is then
// dealt back to the combined list in order. Nodes outside the deltas
// keep their exact rank, and the relative order inside each delta is
// preserved. This is the minimal-disturbance tie-break.
func (g *Graph) reorder() {
	g.sortByRank(&g.deltaB)
	g.sortByRank(&g.deltaF)

	// 1) Build the combined node list; the delta vectors degrade into
	//    their old-rank values and visited marks are cleared in passing.
	g.list.Clear()
	g.moveToList(&g.deltaB)
	g.moveToList(&g.deltaF)

	// 2) Merge the two sorted old-rank sequences.
	g.merged.Resize(g.deltaB.Len() + g.deltaF.Len())
	mergeRanks(g.deltaB.Data(), g.deltaF.Data(), g.merged.Data())

	// 3) Deal the merged ranks back out.
	for i, idx := range g.list.Data() {
		g.nodes[idx].rank = g.merged.At(i)
	}
}

// sortByRank orders a vector of node indices by current rank.
func (g *Graph) sortByRank(v *smallvec.Vec) {
	slices.SortFunc(v.Data(), func(a, b int32) int {
		return cmp.Compare(g.nodes[a].rank, g.nodes[b].rank)
	})
}

// moveToList appends src's node indices to g.list while replacing each
// src entry with the node's current rank, clearing visited marks as it
// goes. After the call src is a sorted rank sequence.
func (g *Graph) moveToList(src *smallvec.Vec) {
	data := src.Data()
	for i, idx := range data {
		g.nodes[idx].visited = false
		data[i] = g.nodes[idx].rank
		g.list.PushBack(idx)
	}
}

// mergeRanks merges two sorted rank sequences into out.
// len(out) == len(a) + len(b).
func mergeRanks(a, b, out []int32) {
	i, j := 0, 0
	for k := range out {
		switch {
		case i < len(a) && (j >= len(b) || a[i] <= b[j]):
			out[k] = a[i]
			i++
		default:
			out[k] = b[j]
			j++
		}
	}
}

// clearVisited unmarks every node listed in v.
func (g *Graph) clearVisited(v *smallvec.Vec) {
	for _, idx := range v.Data() {
		g.nodes[idx].visited = false
	}
}
