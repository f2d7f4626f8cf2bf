package bipartite

import (
	"testing"

	"github.com/nodegraph/nodegraph/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBipartiteAdjacencyList_AddEdgeAcrossPartitions(t *testing.T) {
	g := New()
	l := g.AddVertexTo(lattice.LeftPartition)
	r := g.AddVertexTo(lattice.RightPartition)

	e, ok := g.AddEdge(l, r)
	require.True(t, ok)
	assert.Equal(t, 1, g.EdgeCount())

	dst, ok := g.Destination(e)
	require.True(t, ok)
	assert.Equal(t, r, dst)
}

func TestBipartiteAdjacencyList_AddEdgeRejectsSamePartition(t *testing.T) {
	g := New()
	l1 := g.AddVertexTo(lattice.LeftPartition)
	l2 := g.AddVertexTo(lattice.LeftPartition)

	_, ok := g.AddEdge(l1, l2)
	assert.False(t, ok, "same-partition edges violate the bipartite invariant")
}

func TestBipartiteAdjacencyList_MoveVertex(t *testing.T) {
	g := New()
	v := g.AddVertexTo(lattice.LeftPartition)
	assert.Contains(t, g.LeftPartitionVertices(), v)

	ok := g.MoveVertex(v, lattice.RightPartition)
	require.True(t, ok)
	assert.NotContains(t, g.LeftPartitionVertices(), v)
	assert.Contains(t, g.RightPartitionVertices(), v)

	assert.False(t, g.MoveVertex(VertexDescriptor(999), lattice.LeftPartition))
}

func TestBipartiteAdjacencyList_RemoveVertexRemovesIncidentEdges(t *testing.T) {
	g := New()
	l := g.AddVertexTo(lattice.LeftPartition)
	r := g.AddVertexTo(lattice.RightPartition)
	g.AddEdge(l, r)

	g.RemoveVertex(l)
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 1, g.VertexCount())
}

func TestBipartiteAdjacencyList_PartitionOfUnknownVertex(t *testing.T) {
	g := New()
	_, ok := g.PartitionOf(VertexDescriptor(42))
	assert.False(t, ok)
}
