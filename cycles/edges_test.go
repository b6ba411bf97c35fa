package cycles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclath/cycles"
)

// buildChain links ids[0]→ids[1]→…→ids[n-1] and asserts every insert
// is accepted.
func buildChain(t *testing.T, g *cycles.Graph, ids []cycles.ID) {
	t.Helper()
	for i := 0; i+1 < len(ids); i++ {
		require.True(t, g.InsertEdge(ids[i], ids[i+1]))
	}
}

func TestInsertEdge_FastPath(t *testing.T) {
	g := newGraph()
	ids := getN(g, 2)
	// Creation order equals rank order, so this is the cheap case.
	assert.True(t, g.InsertEdge(ids[0], ids[1]))
	assert.True(t, g.HasEdge(ids[0], ids[1]))
	assert.False(t, g.HasEdge(ids[1], ids[0]), "edges are directed")
	assert.NoError(t, g.Validate())
}

func TestInsertEdge_AgainstRankOrderRepairs(t *testing.T) {
	g := newGraph()
	ids := getN(g, 2)
	// ids[1] was created after ids[0], so this edge points down-rank
	// and forces a repair, which must succeed: there is no cycle.
	assert.True(t, g.InsertEdge(ids[1], ids[0]))
	assert.True(t, g.HasEdge(ids[1], ids[0]))
	assert.NoError(t, g.Validate(), "repair must restore rank order")
}

func TestInsertEdge_Idempotent(t *testing.T) {
	g := newGraph()
	ids := getN(g, 2)
	require.True(t, g.InsertEdge(ids[0], ids[1]))
	require.True(t, g.InsertEdge(ids[0], ids[1]))
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(ids[0], ids[1]))
	assert.NoError(t, g.Validate())
}

func TestInsertEdge_SelfEdgeRejected(t *testing.T) {
	g := newGraph()
	ids := getN(g, 1)
	assert.False(t, g.InsertEdge(ids[0], ids[0]))
	assert.False(t, g.HasEdge(ids[0], ids[0]))
	assert.Equal(t, 0, g.EdgeCount())
	assert.NoError(t, g.Validate())
}

func TestInsertEdge_CycleRejectedGraphUnchanged(t *testing.T) {
	g := newGraph()
	ids := getN(g, 3)
	buildChain(t, g, ids) // A→B→C

	// Closing the triangle must fail and leave no trace.
	assert.False(t, g.InsertEdge(ids[2], ids[0]))
	assert.False(t, g.HasEdge(ids[2], ids[0]))
	assert.Equal(t, 2, g.EdgeCount())

	// The existing path is intact, full length.
	buf := make([]cycles.ID, 3)
	require.Equal(t, 3, g.FindPath(ids[0], ids[2], buf))
	assert.Equal(t, []cycles.ID{ids[0], ids[1], ids[2]}, buf)

	// No dangling visited marks, ranks untouched.
	assert.NoError(t, g.Validate())
}

func TestInsertEdge_LongCycleRejected(t *testing.T) {
	g := newGraph()
	ids := getN(g, 10)
	buildChain(t, g, ids)

	assert.False(t, g.InsertEdge(ids[9], ids[0]))
	assert.False(t, g.InsertEdge(ids[5], ids[2]))
	assert.True(t, g.InsertEdge(ids[2], ids[5]), "forward shortcut is fine")
	assert.NoError(t, g.Validate())
}

func TestInsertEdge_TwoNodeCycleRejected(t *testing.T) {
	g := newGraph()
	ids := getN(g, 2)
	require.True(t, g.InsertEdge(ids[0], ids[1]))
	assert.False(t, g.InsertEdge(ids[1], ids[0]))
	assert.Equal(t, 1, g.EdgeCount())
	assert.NoError(t, g.Validate())
}

func TestInsertEdge_DiamondNoFalseCycle(t *testing.T) {
	g := newGraph()
	ids := getN(g, 4)
	// A→B, A→C, B→D, C→D: shares a sink, still acyclic.
	require.True(t, g.InsertEdge(ids[0], ids[1]))
	require.True(t, g.InsertEdge(ids[0], ids[2]))
	require.True(t, g.InsertEdge(ids[1], ids[3]))
	require.True(t, g.InsertEdge(ids[2], ids[3]))
	assert.NoError(t, g.Validate())
	assert.True(t, g.IsReachable(ids[0], ids[3]))
}

func TestInsertEdge_RepairDisturbsMinimalRegion(t *testing.T) {
	g := newGraph()
	ids := getN(g, 6)
	// Build two independent chains, then weld the later chain's head
	// under the earlier chain's tail; only the welded region may move.
	require.True(t, g.InsertEdge(ids[3], ids[4]))
	require.True(t, g.InsertEdge(ids[4], ids[5]))
	require.True(t, g.InsertEdge(ids[0], ids[1]))
	require.True(t, g.InsertEdge(ids[1], ids[2]))

	// ids[5] (created last, highest rank) must now precede ids[0].
	require.True(t, g.InsertEdge(ids[5], ids[0]))
	assert.NoError(t, g.Validate())
	assert.True(t, g.IsReachable(ids[3], ids[2]))
	assert.False(t, g.IsReachable(ids[2], ids[3]))

	// And the welded order is now locked in: the reverse edge cycles.
	assert.False(t, g.InsertEdge(ids[2], ids[3]))
	assert.NoError(t, g.Validate())
}

func TestRemoveEdge_NeverNeedsRepair(t *testing.T) {
	g := newGraph()
	ids := getN(g, 4)
	buildChain(t, g, ids)

	g.RemoveEdge(ids[1], ids[2])
	assert.False(t, g.HasEdge(ids[1], ids[2]))
	assert.False(t, g.IsReachable(ids[0], ids[3]))
	assert.NoError(t, g.Validate())

	// Severed order is only advisory now; re-linking backwards is legal.
	assert.True(t, g.InsertEdge(ids[2], ids[1]))
	assert.NoError(t, g.Validate())
}

func TestHasEdge_StaleHandles(t *testing.T) {
	g := newGraph()
	ids := getN(g, 2)
	require.True(t, g.InsertEdge(ids[0], ids[1]))
	g.RemoveNode(1)
	assert.False(t, g.HasEdge(ids[0], ids[1]))
	assert.False(t, g.HasEdge(ids[1], ids[0]))
}
