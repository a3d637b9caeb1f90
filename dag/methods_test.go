package dag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldag/dag"
)

func TestDag_GetAbsent(t *testing.T) {
	d := dag.New()
	node, ok := d.Get("missing")
	assert.Nil(t, node)
	assert.False(t, ok)
}

func TestDag_AddAndGet(t *testing.T) {
	d := dag.New()
	d.Add("A", "foo")

	node, ok := d.Get("A")
	require.True(t, ok)
	assert.Equal(t, "A", node.Key)
	assert.Equal(t, "foo", node.Data)
	assert.Equal(t, 1, d.Len())
	assert.True(t, d.Has("A"))
}

func TestDag_AddReplacesIdentity(t *testing.T) {
	d := dag.New()
	d.Add("A", 1)
	first, ok := d.Get("A")
	require.True(t, ok)

	// Add on the same key is an outright replacement, not an update.
	d.Add("A", 2)
	second, ok := d.Get("A")
	require.True(t, ok)
	assert.Equal(t, 2, second.Data)
	assert.NotSame(t, first, second, "Add must mint a new node identity")
	assert.Empty(t, d.InvalidatedKeys(), "Add must not mark anything invalidated")
}

func TestDag_UpdatePreservesIdentity(t *testing.T) {
	d := dag.New()
	d.Add("A", "v1")
	before, ok := d.Get("A")
	require.True(t, ok)

	d.Update("A", "v2")
	after, ok := d.Get("A")
	require.True(t, ok)
	assert.Same(t, before, after, "Update must replace the payload in place")
	assert.Equal(t, "v2", after.Data)
	assert.Equal(t, []string{"A"}, d.InvalidatedKeys())
}

func TestDag_UpdateAbsentIsNoOp(t *testing.T) {
	d := dag.New()
	d.Update("ghost", 42)
	assert.False(t, d.Has("ghost"))
	assert.Empty(t, d.InvalidatedKeys())
}

func TestDag_RemoveReportsPresence(t *testing.T) {
	d := dag.New()
	d.Add("A", "foo")

	assert.True(t, d.Remove("A"))
	_, ok := d.Get("A")
	assert.False(t, ok)
	assert.False(t, d.Remove("A"), "second Remove must report not found")
}

func TestDag_RemoveLeavesInvalidatedSet(t *testing.T) {
	d := dag.New()
	d.Add("A", "v1")
	d.Update("A", "v2")
	require.True(t, d.Remove("A"))

	// The mark survives the node; Dispatch skips it later.
	assert.Equal(t, []string{"A"}, d.InvalidatedKeys())
}

func TestDag_Keys_Sorted(t *testing.T) {
	d := dag.New()
	d.Add("C", nil)
	d.Add("A", nil)
	d.Add("B", nil)
	assert.Equal(t, []string{"A", "B", "C"}, d.Keys())
}

func TestDag_AddEdge_MissingNode(t *testing.T) {
	d := dag.New()
	d.Add("A", nil)

	err := d.AddEdge("A", "missing")
	assert.ErrorIs(t, err, dag.ErrNodeNotFound)

	err = d.AddEdge("missing", "A")
	assert.ErrorIs(t, err, dag.ErrNodeNotFound)
}

// TestDag_AddEdge_Direction pins the deliberate asymmetry: AddEdge(to, from)
// stores the edge on to's node, so the weight is found by scanning from=to's
// list — i.e. EdgeWeight with the arguments swapped relative to creation.
func TestDag_AddEdge_Direction(t *testing.T) {
	d := dag.New()
	d.Add("A", "a")
	d.Add("B", "b")
	require.NoError(t, d.AddEdge("B", "A"))

	// The edge lives on "B" and targets "A": scanning "B"'s list for "A" hits.
	w, err := d.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, dag.DefaultEdgeWeight, w)

	// The lookup mirroring the creation call scans "A"'s (empty) list: soft miss.
	w, err = d.EdgeWeight("B", "A")
	require.NoError(t, err)
	assert.Equal(t, dag.WeightNotFound, w)
}

func TestDag_AddEdge_WithEdgeWeight(t *testing.T) {
	d := dag.New()
	d.Add("A", nil)
	d.Add("B", nil)
	require.NoError(t, d.AddEdge("B", "A", dag.WithEdgeWeight(7)))

	w, err := d.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(7), w)
}

func TestDag_EdgeWeight_MissingFrom(t *testing.T) {
	d := dag.New()
	d.Add("A", nil)

	_, err := d.EdgeWeight("A", "missing")
	assert.ErrorIs(t, err, dag.ErrNodeNotFound)
}

func TestDag_EdgeWeight_DanglingTarget(t *testing.T) {
	d := dag.New()
	d.Add("A", nil)
	d.Add("B", nil)
	require.NoError(t, d.AddEdge("B", "A"))

	// Removing the target leaves the stored edge dangling.
	require.True(t, d.Remove("A"))
	_, err := d.EdgeWeight("A", "B")
	assert.ErrorIs(t, err, dag.ErrDanglingEdge)

	// Re-adding under the same key does not heal it: the reference is
	// identity-based, never key-based.
	d.Add("A", nil)
	_, err = d.EdgeWeight("A", "B")
	assert.ErrorIs(t, err, dag.ErrDanglingEdge)
}

func TestNode_EdgesOrderedCopy(t *testing.T) {
	d := dag.New()
	d.Add("A", nil)
	d.Add("B", nil)
	d.Add("C", nil)
	require.NoError(t, d.AddEdge("A", "B"))
	require.NoError(t, d.AddEdge("A", "C", dag.WithEdgeWeight(3)))

	node, ok := d.Get("A")
	require.True(t, ok)
	edges := node.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "B", edges[0].TargetKey(), "insertion order must be preserved")
	assert.Equal(t, "C", edges[1].TargetKey())
	assert.Equal(t, int64(3), edges[1].Weight)

	// Mutating the copy must not reach the node's own list.
	edges[0].Weight = 99
	assert.Equal(t, dag.DefaultEdgeWeight, node.Edges()[0].Weight)
}

func TestNode_String(t *testing.T) {
	d := dag.New()
	d.Add("A", 42)
	node, ok := d.Get("A")
	require.True(t, ok)
	assert.Equal(t, "A=42", node.String())
}
