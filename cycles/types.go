package cycles

import (
	"errors"

	"github.com/katalvlaran/cyclath/arena"
	"github.com/katalvlaran/cyclath/intset"
	"github.com/katalvlaran/cyclath/smallvec"
)

// MaxStackDepth is the fixed capacity of the per-node debug stack trace
// buffer recorded by UpdateStackTrace.
const MaxStackDepth = 40

// Sentinel errors reported by the debug validator (Validate). The
// operational API never returns them; see doc.go.
var (
	// ErrRankPermutation indicates two slots share a rank, or a rank
	// escaped [0, table size).
	ErrRankPermutation = errors.New("cycles: ranks are not a permutation")

	// ErrRankOrder indicates an edge (x, y) with rank(x) >= rank(y).
	ErrRankOrder = errors.New("cycles: edge violates rank order")

	// ErrDanglingVisited indicates a traversal scratch mark survived
	// past the operation that set it.
	ErrDanglingVisited = errors.New("cycles: visited mark left outside traversal")

	// ErrEdgeAsymmetry indicates the in/out adjacency sets disagree
	// about an edge's existence.
	ErrEdgeAsymmetry = errors.New("cycles: in/out adjacency out of sync")
)

// node is one slot of the node table.
//
// rank is the node's position in the maintained topological order:
// for every edge (x, y), rank(x) < rank(y). Free slots keep the rank of
// their last tenant: an edge-less slot is legal at any unique rank, so
// reuse needs no repair.
type node struct {
	rank    int32
	version uint32  // bumped on removal; MaxUint32 retires the slot
	visited bool    // traversal scratch; false between operations
	key     uintptr // external identity; 0 marks a free slot

	in  intset.Set // indices of predecessors
	out intset.Set // indices of successors

	// Debug context, highest priority wins.
	nstack   int
	priority int
	stack    [MaxStackDepth]uintptr
}

// Graph is the incremental cycle detector. The zero value is not usable;
// construct with New. A Graph is NOT internally synchronized: callers
// serialize all access (see doc.go).
type Graph struct {
	ar    *arena.Arena
	nodes []*node           // slot table; records recycled via free
	index map[uintptr]int32 // external key → slot index
	free  smallvec.Vec      // reusable slot indices
	edges int               // live edge count

	// Scratch state reused across calls so steady-state mutation stays
	// allocation-free. Valid only within a single operation.
	deltaF smallvec.Vec // forward-search delta (then its old ranks)
	deltaB smallvec.Vec // backward-search delta (then its old ranks)
	list   smallvec.Vec // combined delta, reorder target
	merged smallvec.Vec // merged rank values
	stack  smallvec.Vec // explicit DFS work stack
	seen   intset.Set   // path-search visited set
}

// Option configures a Graph at construction.
type Option func(*Graph)

// WithArena routes all of the graph's dynamic storage through a instead
// of the process-wide arena.Default(). Useful for tests and for keeping
// independent graphs from sharing free lists.
func WithArena(a *arena.Arena) Option {
	return func(g *Graph) { g.ar = a }
}

// New returns an empty Graph.
func New(opts ...Option) *Graph {
	g := &Graph{index: make(map[uintptr]int32)}

	var fn Option
	for _, fn = range opts {
		fn(g)
	}
	if g.ar == nil {
		g.ar = arena.Default()
	}

	g.free.Bind(g.ar)
	g.deltaF.Bind(g.ar)
	g.deltaB.Bind(g.ar)
	g.list.Bind(g.ar)
	g.merged.Bind(g.ar)
	g.stack.Bind(g.ar)
	g.seen.Bind(g.ar)

	return g
}
