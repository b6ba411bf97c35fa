package cycles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclath/arena"
	"github.com/katalvlaran/cyclath/cycles"
)

// newGraph builds a Graph on a private arena so tests cannot observe
// cross-test slab reuse.
func newGraph() *cycles.Graph {
	return cycles.New(cycles.WithArena(arena.New()))
}

// getN returns handles for the synthetic keys 1..n.
func getN(g *cycles.Graph, n int) []cycles.ID {
	ids := make([]cycles.ID, n)
	for i := range ids {
		ids[i] = g.GetID(uintptr(i + 1))
	}

	return ids
}

func TestGetID_ZeroKey(t *testing.T) {
	g := newGraph()
	id := g.GetID(0)
	assert.Equal(t, cycles.InvalidID, id)
	assert.False(t, id.Valid())
	assert.False(t, g.HasNode(id))
	assert.Equal(t, 0, g.NodeCount())
}

func TestGetID_StableForSameKey(t *testing.T) {
	g := newGraph()
	a := g.GetID(0xA11CE)
	b := g.GetID(0xA11CE)
	require.True(t, a.Valid())
	assert.Equal(t, a, b, "same identity, same generation, same handle")
	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, uintptr(0xA11CE), g.Ptr(a))
}

func TestGetID_DistinctKeys(t *testing.T) {
	g := newGraph()
	ids := getN(g, 3)
	assert.NotEqual(t, ids[0], ids[1])
	assert.NotEqual(t, ids[1], ids[2])
	assert.Equal(t, 3, g.NodeCount())
}

func TestRemoveNode_UnknownKeyIsNoop(t *testing.T) {
	g := newGraph()
	getN(g, 2)
	g.RemoveNode(0xDEAD)
	g.RemoveNode(0)
	assert.Equal(t, 2, g.NodeCount())
	assert.NoError(t, g.Validate())
}

func TestRemoveNode_SeversIncidentEdges(t *testing.T) {
	g := newGraph()
	ids := getN(g, 3)
	require.True(t, g.InsertEdge(ids[0], ids[1]))
	require.True(t, g.InsertEdge(ids[1], ids[2]))
	require.Equal(t, 2, g.EdgeCount())

	g.RemoveNode(2) // the middle node's key

	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasEdge(ids[0], ids[1]))
	assert.False(t, g.HasEdge(ids[1], ids[2]))
	assert.False(t, g.IsReachable(ids[0], ids[2]))
	assert.NoError(t, g.Validate())
}

func TestRemoveNode_StaleHandleIsSafeNoop(t *testing.T) {
	g := newGraph()
	ids := getN(g, 2)
	old := ids[0]
	g.RemoveNode(1)

	// Queries degrade to not-found.
	assert.False(t, g.HasNode(old))
	assert.Zero(t, g.Ptr(old))
	assert.False(t, g.HasEdge(old, ids[1]))
	assert.False(t, g.IsReachable(old, ids[1]))
	assert.Zero(t, g.FindPath(old, ids[1], nil))

	// Mutations are no-ops; InsertEdge reports the expired no-op as true.
	assert.True(t, g.InsertEdge(old, ids[1]))
	assert.True(t, g.InsertEdge(ids[1], old))
	g.RemoveEdge(old, ids[1])
	assert.Equal(t, 0, g.EdgeCount())
	assert.NoError(t, g.Validate())
}

func TestRemoveNode_ReuseBumpsVersion(t *testing.T) {
	g := newGraph()
	old := g.GetID(7)
	g.RemoveNode(7)

	// Same identity again: the slot may be recycled, the handle may not.
	fresh := g.GetID(7)
	require.True(t, fresh.Valid())
	assert.NotEqual(t, old, fresh)
	assert.True(t, g.HasNode(fresh))
	assert.False(t, g.HasNode(old))
	assert.Equal(t, uintptr(7), g.Ptr(fresh))
}

func TestRemoveNode_ChurnKeepsInvariants(t *testing.T) {
	g := newGraph()
	for round := 0; round < 50; round++ {
		ids := getN(g, 4)
		require.True(t, g.InsertEdge(ids[0], ids[1]))
		require.True(t, g.InsertEdge(ids[1], ids[2]))
		require.True(t, g.InsertEdge(ids[2], ids[3]))
		require.NoError(t, g.Validate(), "round %d", round)

		g.RemoveNode(2)
		g.RemoveNode(4)
		require.NoError(t, g.Validate(), "round %d after removal", round)
		g.RemoveNode(1)
		g.RemoveNode(3)
	}
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestCounts(t *testing.T) {
	g := newGraph()
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())

	ids := getN(g, 3)
	require.True(t, g.InsertEdge(ids[0], ids[1]))
	require.True(t, g.InsertEdge(ids[0], ids[1]), "idempotent insert must not double-count")
	require.True(t, g.InsertEdge(ids[1], ids[2]))
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	g.RemoveEdge(ids[0], ids[1])
	g.RemoveEdge(ids[0], ids[1]) // absent: no-op
	assert.Equal(t, 1, g.EdgeCount())
}
