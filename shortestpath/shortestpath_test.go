package shortestpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weightedEdge models a directed edge with a cost, keyed by its endpoints
// so a simple map can serve as a tiny test double graph.
type weightedEdge struct {
	from, to string
	cost     float64
}

type roadGraph struct {
	out map[string][]weightedEdge
	in  map[string][]weightedEdge
}

func newRoadGraph() *roadGraph {
	return &roadGraph{out: map[string][]weightedEdge{}, in: map[string][]weightedEdge{}}
}

func (g *roadGraph) addUndirected(a, b string, cost float64) {
	g.out[a] = append(g.out[a], weightedEdge{a, b, cost})
	g.in[b] = append(g.in[b], weightedEdge{a, b, cost})
	g.out[b] = append(g.out[b], weightedEdge{b, a, cost})
	g.in[a] = append(g.in[a], weightedEdge{b, a, cost})
}

func (g *roadGraph) addDirected(a, b string, cost float64) {
	g.out[a] = append(g.out[a], weightedEdge{a, b, cost})
	g.in[b] = append(g.in[b], weightedEdge{a, b, cost})
}

func (g *roadGraph) OutgoingEdges(v string) []weightedEdge { return g.out[v] }
func (g *roadGraph) IncomingEdges(v string) []weightedEdge { return g.in[v] }
func (g *roadGraph) InDegree(v string) int                 { return len(g.in[v]) }
func (g *roadGraph) Destination(e weightedEdge) (string, bool) { return e.to, true }
func (g *roadGraph) Source(e weightedEdge) (string, bool)      { return e.from, true }
func (g *roadGraph) Vertices() []string {
	seen := map[string]bool{}
	var out []string
	for _, side := range []map[string][]weightedEdge{g.out, g.in} {
		for v := range side {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

func weightOf(e weightedEdge) float64 { return e.cost }

func buildSFRoadGraph() *roadGraph {
	g := newRoadGraph()
	g.addUndirected("SF", "LA", 380)
	g.addUndirected("SF", "Portland", 630)
	g.addUndirected("LA", "Vegas", 270)
	g.addUndirected("LA", "Phoenix", 370)
	g.addUndirected("Portland", "Seattle", 175)
	g.addUndirected("Vegas", "Phoenix", 300)
	return g
}

func TestDijkstra_SFRoadGraph(t *testing.T) {
	g := buildSFRoadGraph()
	result, err := Dijkstra[string, weightedEdge](g, "SF", weightOf)
	require.NoError(t, err)
	assert.Equal(t, float64(750), result.Dist["Phoenix"])

	path, ok := result.Path("SF", "Phoenix", g.Source)
	require.True(t, ok)
	assert.Equal(t, []string{"SF", "LA", "Phoenix"}, path)
}

func TestDijkstraTo_StopsAtTarget(t *testing.T) {
	g := buildSFRoadGraph()
	result, err := DijkstraTo[string, weightedEdge](g, "SF", "LA", weightOf)
	require.NoError(t, err)
	assert.Equal(t, float64(380), result.Dist["LA"])
}

func TestDijkstra_RejectsNegativeWeight(t *testing.T) {
	g := newRoadGraph()
	g.addDirected("A", "B", -5)
	_, err := Dijkstra[string, weightedEdge](g, "A", weightOf)
	assert.ErrorIs(t, err, ErrNegativeWeight)
}

func TestAStar_MatchesDijkstraWithZeroHeuristic(t *testing.T) {
	g := buildSFRoadGraph()
	zero := func(v, goal string) float64 { return 0 }
	result, err := AStar[string, weightedEdge](g, "SF", "Phoenix", weightOf, zero)
	require.NoError(t, err)
	assert.Equal(t, float64(750), result.Dist["Phoenix"])
}

func TestBellmanFord_NegativeEdgeNoNegativeCycle(t *testing.T) {
	g := newRoadGraph()
	g.addDirected("A", "B", 4)
	g.addDirected("A", "C", 2)
	g.addDirected("B", "C", -3)
	g.addDirected("B", "D", 2)
	g.addDirected("C", "D", 3)

	result, err := BellmanFord[string, weightedEdge](g, "A", weightOf)
	require.NoError(t, err)
	assert.Equal(t, float64(4), result.Dist["D"])

	path, ok := result.Path("A", "D", g.Source)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)
}

func TestBellmanFord_DetectsNegativeCycle(t *testing.T) {
	g := newRoadGraph()
	g.addDirected("A", "B", 1)
	g.addDirected("B", "C", -1)
	g.addDirected("C", "B", -1)

	_, err := BellmanFord[string, weightedEdge](g, "A", weightOf)
	assert.ErrorIs(t, err, ErrNegativeCycle)
}

func TestFloydWarshall_MatchesDijkstraOnAllPairs(t *testing.T) {
	g := buildSFRoadGraph()
	apsp := FloydWarshall[string, weightedEdge](g, weightOf)

	dist, ok := apsp.DistanceBetween("SF", "Phoenix")
	require.True(t, ok)
	assert.Equal(t, float64(750), dist)

	path, ok := apsp.Path("SF", "Phoenix")
	require.True(t, ok)
	assert.Equal(t, []string{"SF", "LA", "Phoenix"}, path)
}

func TestBidirectionalDijkstra_MatchesDijkstraCost(t *testing.T) {
	g := buildSFRoadGraph()
	cost, ok := BidirectionalDijkstra[string, weightedEdge](g, "SF", "Phoenix", weightOf)
	require.True(t, ok)
	assert.Equal(t, float64(750), cost)
}

func TestYenKShortestPaths_OrdersByIncreasingCost(t *testing.T) {
	g := buildSFRoadGraph()
	paths := YenKShortestPaths[string, weightedEdge](g, "SF", "Phoenix", weightOf, 3)
	require.NotEmpty(t, paths)
	assert.Equal(t, []string{"SF", "LA", "Phoenix"}, paths[0], "cheapest path must come first")

	var costs []float64
	for _, p := range paths {
		var total float64
		for i := 0; i+1 < len(p); i++ {
			for _, e := range g.OutgoingEdges(p[i]) {
				if e.to == p[i+1] {
					total += e.cost
					break
				}
			}
		}
		costs = append(costs, total)
	}
	for i := 1; i < len(costs); i++ {
		assert.GreaterOrEqual(t, costs[i], costs[i-1], "Yen's paths must be non-decreasing in cost")
	}
}

func TestBidirectionalDijkstra_UnreachableReturnsFalse(t *testing.T) {
	g := newRoadGraph()
	g.addDirected("A", "B", 1)
	g.out["Island"] = nil
	g.in["Island"] = nil
	_, ok := BidirectionalDijkstra[string, weightedEdge](g, "A", "Island", weightOf)
	assert.False(t, ok)
}
