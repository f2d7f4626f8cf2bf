package adjmatrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjacencyMatrix_AddAndQuery(t *testing.T) {
	g := New()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()

	eAB, ok := g.AddEdge(a, b)
	require.True(t, ok)
	_, ok = g.AddEdge(b, c)
	require.True(t, ok)

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []EdgeDescriptor{eAB}, g.OutgoingEdges(a))

	dst, ok := g.Destination(eAB)
	require.True(t, ok)
	assert.Equal(t, b, dst)

	looked, ok := g.Edge(a, b)
	require.True(t, ok)
	assert.Equal(t, eAB, looked)
}

func TestAdjacencyMatrix_AddEdgeIsIdempotent(t *testing.T) {
	g := New()
	a, b := g.AddVertex(), g.AddVertex()
	e1, _ := g.AddEdge(a, b)
	e2, _ := g.AddEdge(a, b)
	assert.Equal(t, e1, e2, "a second AddEdge for an already-true cell returns the existing edge")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAdjacencyMatrix_AddEdgeRejectsDeadEndpoint(t *testing.T) {
	g := New()
	a := g.AddVertex()
	_, ok := g.AddEdge(a, VertexDescriptor(999))
	assert.False(t, ok)
}

func TestAdjacencyMatrix_RemoveVertexClearsRowAndColumn(t *testing.T) {
	g := New()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	g.AddEdge(a, b)
	g.AddEdge(b, c)
	g.AddEdge(c, a)

	g.RemoveVertex(b)

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount(), "only c->a should remain")
	_, ok := g.Edge(a, b)
	assert.False(t, ok)
	_, ok = g.Edge(b, c)
	assert.False(t, ok)
}

func TestAdjacencyMatrix_VertexGrowthPreservesDescriptors(t *testing.T) {
	g := New()
	a := g.AddVertex()
	g.AddVertex()
	for i := 0; i < 5; i++ {
		g.AddVertex()
	}
	assert.Equal(t, 7, g.VertexCount())
	assert.Contains(t, g.Vertices(), a)
}

func TestAdjacencyMatrix_AdjacentVerticesUnionsBothDirections(t *testing.T) {
	g := New()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	g.AddEdge(a, b)
	g.AddEdge(c, a)

	adj := g.AdjacentVertices(a)
	assert.ElementsMatch(t, []VertexDescriptor{b, c}, adj)
}

func TestAdjacencyMatrix_PropertyBagDefaults(t *testing.T) {
	g := New()
	a := g.AddVertex()
	assert.NotNil(t, g.VertexBag(a))
}
