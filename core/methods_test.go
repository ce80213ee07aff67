package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polywythoff/core"
)

func TestAddVertexAndEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("f0"))
	require.NoError(t, g.AddVertex("f1"))
	require.NoError(t, g.AddVertex("f2"))

	_, err := g.AddEdge("f0", "f1")
	require.NoError(t, err)
	_, err = g.AddEdge("f1", "f2")
	require.NoError(t, err)

	assert.True(t, g.HasEdge("f0", "f1"))
	assert.True(t, g.HasEdge("f1", "f0"))
	assert.False(t, g.HasEdge("f0", "f2"))
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestAddVertexDuplicate(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("v"))
	err := g.AddVertex("v")
	require.ErrorIs(t, err, core.ErrDuplicateVertex)
}

func TestAddEdgeRejectsLoopsAndMulti(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))

	_, err := g.AddEdge("a", "a")
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b")
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestAddEdgeMissingVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	_, err := g.AddEdge("a", "missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestNeighborIDsSortedUnique(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"c", "a", "b", "d"} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge("c", "a")
	require.NoError(t, err)
	_, err = g.AddEdge("c", "b")
	require.NoError(t, err)

	nbs, err := g.NeighborIDs("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, nbs)
}

func TestNeighborIDsUnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.NeighborIDs("ghost")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestVerticesSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"z", "a", "m"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"a", "m", "z"}, g.Vertices())
}
