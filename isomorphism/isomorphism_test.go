package isomorphism

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type simpleGraph struct {
	vertices []int
	adj      map[int][]int
}

func newSimpleGraph(vertices []int) *simpleGraph {
	return &simpleGraph{vertices: vertices, adj: map[int][]int{}}
}

func (g *simpleGraph) addEdge(a, b int) {
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
}

func (g *simpleGraph) Vertices() []int            { return g.vertices }
func (g *simpleGraph) AdjacentVertices(v int) []int { return g.adj[v] }

// buildSquare builds a 4-cycle 0-1-2-3-0.
func buildSquare() *simpleGraph {
	g := newSimpleGraph([]int{0, 1, 2, 3})
	g.addEdge(0, 1)
	g.addEdge(1, 2)
	g.addEdge(2, 3)
	g.addEdge(3, 0)
	return g
}

// buildRelabeledSquare is the same 4-cycle with vertices renamed/shuffled.
func buildRelabeledSquare() *simpleGraph {
	g := newSimpleGraph([]int{10, 20, 30, 40})
	g.addEdge(10, 30)
	g.addEdge(30, 20)
	g.addEdge(20, 40)
	g.addEdge(40, 10)
	return g
}

// buildPath builds a path 0-1-2-3 (same vertex/edge count as the square
// but a different degree sequence: two degree-1 endpoints), not isomorphic
// to a 4-cycle.
func buildPath() *simpleGraph {
	g := newSimpleGraph([]int{0, 1, 2, 3})
	g.addEdge(0, 1)
	g.addEdge(1, 2)
	g.addEdge(2, 3)
	return g
}

func TestVF2_FindsMappingForRelabeledIsomorphicGraphs(t *testing.T) {
	g1 := buildSquare()
	g2 := buildRelabeledSquare()
	mapping, ok := VF2[int](g1, g2)
	require.True(t, ok)
	assert.Len(t, mapping, 4)

	for u, neighbors := range g1.adj {
		for _, n := range neighbors {
			assert.Contains(t, g2.adj[mapping[u]], mapping[n])
		}
	}
}

func TestVF2_RejectsNonIsomorphicGraphs(t *testing.T) {
	g1 := buildSquare()
	g2 := buildPath()
	_, ok := VF2[int](g1, g2)
	assert.False(t, ok)
}

func TestVF2_RejectsDifferentVertexCounts(t *testing.T) {
	g1 := buildSquare()
	g2 := newSimpleGraph([]int{0, 1, 2})
	g2.addEdge(0, 1)
	g2.addEdge(1, 2)
	_, ok := VF2[int](g1, g2)
	assert.False(t, ok)
}

func TestWeisfeilerLehman_MatchesForIsomorphicGraphs(t *testing.T) {
	g1 := buildSquare()
	g2 := buildRelabeledSquare()
	assert.Equal(t, WeisfeilerLehman[int](g1, 3), WeisfeilerLehman[int](g2, 3))
}

func TestWeisfeilerLehman_DiffersForNonIsomorphicGraphs(t *testing.T) {
	g1 := buildSquare()
	g2 := buildPath()
	assert.NotEqual(t, WeisfeilerLehman[int](g1, 3), WeisfeilerLehman[int](g2, 3))
}
