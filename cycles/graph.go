package cycles

import "math"

// GetID returns the handle for the node identified by key, creating the
// node if it is new. key is an opaque non-zero identity (typically a
// lock address); a zero key returns InvalidID.
//
// New nodes enter the topological order at the end (rank == table
// size), which is always legal because nothing points at them yet.
// Recycled slots keep their previous rank for the same reason.
//
// Complexity: O(1) expected.
func (g *Graph) GetID(key uintptr) ID {
	if key == 0 {
		return InvalidID
	}

	// 1) Known identity: hand back the current-generation handle.
	if idx, ok := g.index[key]; ok {
		return makeID(idx, g.nodes[idx].version)
	}

	// 2) Reuse a freed slot when one is available.
	if g.free.Len() > 0 {
		idx := g.free.PopBack()
		n := g.nodes[idx]
		n.key = key
		g.index[key] = idx

		return makeID(idx, n.version)
	}

	// 3) Append a brand-new slot at the end of the table and the order.
	idx := int32(len(g.nodes))
	n := &node{rank: idx, version: 1, key: key}
	n.in.Bind(g.ar)
	n.out.Bind(g.ar)
	g.nodes = append(g.nodes, n)
	g.index[key] = idx

	return makeID(idx, 1)
}

// RemoveNode deletes the node identified by key along with every
// incident edge. Unknown keys are a no-op. Outstanding handles for the
// node become stale: the slot's version is bumped before it returns to
// the free list, and a slot whose version counter is exhausted is
// permanently retired instead of recycled.
//
// Removal never violates the rank invariant, so no repair runs.
//
// Complexity: O(degree).
func (g *Graph) RemoveNode(key uintptr) {
	idx, ok := g.index[key]
	if !ok {
		return
	}
	delete(g.index, key)
	n := g.nodes[idx]

	// 1) Sever incident edges symmetrically.
	g.edges -= n.out.Len() + n.in.Len()
	cur := 0
	for {
		w, more := n.out.Next(&cur)
		if !more {
			break
		}
		g.nodes[w].in.Erase(idx)
	}
	cur = 0
	for {
		w, more := n.in.Next(&cur)
		if !more {
			break
		}
		g.nodes[w].out.Erase(idx)
	}
	n.out.Clear()
	n.in.Clear()

	// 2) Reset the slot. rank stays: see node doc.
	n.key = 0
	n.nstack = 0
	n.priority = 0

	// 3) Invalidate outstanding handles. A counter at its ceiling can
	//    no longer distinguish generations, so the slot is retired
	//    rather than wrapped into handle aliasing.
	if n.version == math.MaxUint32 {
		return
	}
	n.version++
	g.free.PushBack(idx)
}

// HasNode reports whether id refers to a live node.
func (g *Graph) HasNode(id ID) bool {
	_, n := g.resolve(id)

	return n != nil
}

// Ptr returns the external identity key behind id, or 0 when the handle
// is stale or invalid.
func (g *Graph) Ptr(id ID) uintptr {
	_, n := g.resolve(id)
	if n == nil {
		return 0
	}

	return n.key
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int { return len(g.index) }

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int { return g.edges }

// resolve maps a handle to its slot, returning (-1, nil) for anything
// stale, retired, forged, or invalid. This is the single place handle
// validity is decided; every public operation funnels through it.
func (g *Graph) resolve(id ID) (int32, *node) {
	idx := id.index()
	if idx < 0 || int(idx) >= len(g.nodes) {
		return -1, nil
	}
	n := g.nodes[idx]
	if n.key == 0 || n.version != id.version() {
		return -1, nil
	}

	return idx, n
}
