package hamiltonian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeGraph is a dense test double over string vertices, grounded on
// the classic small-TSP square-plus-diagonal example.
type completeGraph struct {
	vertices []string
	weight   map[[2]string]float64
}

func newCompleteGraph(vertices []string) *completeGraph {
	return &completeGraph{vertices: vertices, weight: map[[2]string]float64{}}
}

func (g *completeGraph) set(u, v string, w float64) {
	g.weight[[2]string{u, v}] = w
	g.weight[[2]string{v, u}] = w
}

func (g *completeGraph) Vertices() []string { return g.vertices }

func (g *completeGraph) EdgeBetween(u, v string) ([2]string, bool) {
	key := [2]string{u, v}
	if _, ok := g.weight[key]; !ok {
		return key, false
	}
	return key, true
}

func weightOf(g *completeGraph) Weight[[2]string] {
	return func(e [2]string) float64 { return g.weight[e] }
}

// buildSquare builds a 4-city square where the cheapest Hamiltonian cycle
// is the perimeter (cost 10), cheaper than crossing the diagonals.
func buildSquare() *completeGraph {
	g := newCompleteGraph([]string{"A", "B", "C", "D"})
	g.set("A", "B", 1)
	g.set("B", "C", 2)
	g.set("C", "D", 3)
	g.set("D", "A", 4)
	g.set("A", "C", 100)
	g.set("B", "D", 100)
	return g
}

func TestBacktracking_FindsOptimalTour(t *testing.T) {
	g := buildSquare()
	tour, err := Backtracking[string, [2]string](g, "A", weightOf(g))
	require.NoError(t, err)
	assert.Equal(t, 10.0, tour.Cost)
	assert.Equal(t, "A", tour.Vertices[0])
	assert.Equal(t, "A", tour.Vertices[len(tour.Vertices)-1])
	assert.Len(t, tour.Vertices, 5)
}

func TestHeuristic_FindsValidTourNoWorseThanDoubleOptimal(t *testing.T) {
	g := buildSquare()
	tour, err := Heuristic[string, [2]string](g, "A", weightOf(g))
	require.NoError(t, err)
	assert.Len(t, tour.Vertices, 5)
	assert.Equal(t, "A", tour.Vertices[0])
	assert.Equal(t, "A", tour.Vertices[len(tour.Vertices)-1])
	assert.LessOrEqual(t, tour.Cost, 20.0)

	seen := map[string]bool{}
	for _, v := range tour.Vertices[:len(tour.Vertices)-1] {
		assert.False(t, seen[v], "vertex %s visited twice", v)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
}

// sparseGraph is an incomplete graph double: only the edges explicitly
// added exist, unlike completeGraph above where every pair is connected.
// This is the shape Cycle/FindCycle must work over, since existence is
// only an interesting question when the graph isn't complete.
type sparseEdge struct{ from, to string }

type sparseGraph struct {
	vertices []string
	out      map[string][]sparseEdge
}

func newSparseGraph(vertices []string) *sparseGraph {
	return &sparseGraph{vertices: vertices, out: map[string][]sparseEdge{}}
}

func (g *sparseGraph) addEdge(a, b string) {
	g.out[a] = append(g.out[a], sparseEdge{a, b})
	g.out[b] = append(g.out[b], sparseEdge{b, a})
}

func (g *sparseGraph) Vertices() []string                       { return g.vertices }
func (g *sparseGraph) OutgoingEdges(v string) []sparseEdge       { return g.out[v] }
func (g *sparseGraph) Destination(e sparseEdge) (string, bool) { return e.to, true }

// buildPentagonCycle is a 5-cycle A-B-C-D-E-A with no chords: sparse, and
// the only Hamiltonian cycle is the ring itself.
func buildPentagonCycle() *sparseGraph {
	g := newSparseGraph([]string{"A", "B", "C", "D", "E"})
	g.addEdge("A", "B")
	g.addEdge("B", "C")
	g.addEdge("C", "D")
	g.addEdge("D", "E")
	g.addEdge("E", "A")
	return g
}

// buildStarGraph connects a center to four leaves with no edges between
// leaves: every Hamiltonian cycle would need to pass through two
// different leaves consecutively, which no edge allows, so none exists.
func buildStarGraph() *sparseGraph {
	g := newSparseGraph([]string{"X", "A", "B", "C", "D"})
	g.addEdge("X", "A")
	g.addEdge("X", "B")
	g.addEdge("X", "C")
	g.addEdge("X", "D")
	return g
}

func TestCycle_FindsCycleOnSparseGraph(t *testing.T) {
	g := buildPentagonCycle()
	tour, ok := Cycle[string, sparseEdge](g, "A")
	require.True(t, ok)
	assert.Equal(t, "A", tour.Vertices[0])
	assert.Equal(t, "A", tour.Vertices[len(tour.Vertices)-1])
	require.Len(t, tour.Vertices, 6)

	seen := map[string]bool{}
	for _, v := range tour.Vertices[:len(tour.Vertices)-1] {
		assert.False(t, seen[v], "vertex %s visited twice", v)
		seen[v] = true
	}
	assert.Len(t, seen, 5)
}

func TestCycle_NoHamiltonianCycleOnStarGraph(t *testing.T) {
	g := buildStarGraph()
	tour, ok := Cycle[string, sparseEdge](g, "X")
	assert.False(t, ok, "a star has no pair of leaves joined by an edge, so no cycle can thread through all of them")
	assert.Empty(t, tour.Vertices)
}

func TestFindCycle_SucceedsRegardlessOfStartVertex(t *testing.T) {
	g := buildPentagonCycle()
	tour, ok := FindCycle[string, sparseEdge](g)
	require.True(t, ok)
	assert.Len(t, tour.Vertices, 6)
}

func TestFindCycle_FalseWhenNoStartWorks(t *testing.T) {
	g := buildStarGraph()
	_, ok := FindCycle[string, sparseEdge](g)
	assert.False(t, ok)
}

func TestBacktracking_TooFewVerticesErrors(t *testing.T) {
	g := newCompleteGraph([]string{"A"})
	_, err := Backtracking[string, [2]string](g, "A", weightOf(g))
	assert.ErrorIs(t, err, ErrNoHamiltonianCycle)
}

func TestBacktracking_UnknownStartErrors(t *testing.T) {
	g := buildSquare()
	_, err := Backtracking[string, [2]string](g, "Z", weightOf(g))
	assert.ErrorIs(t, err, ErrNoHamiltonianCycle)
}
