package shortestpath

import "sort"

// yenPath is one loopless source-target path tracked during Yen's
// enumeration, carrying both its vertex and edge sequence so a spur
// search can exclude the edges A's existing paths already used.
type yenPath[V comparable, E comparable] struct {
	vertices []V
	edges    []E
	cost     float64
}

func equalPrefix[V comparable](a, b []V) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameVertices[V comparable](a, b []V) bool {
	return equalPrefix(a, b)
}

// yenFilteredGraph wraps a base IncidenceGraph, hiding excluded vertices
// and edges from OutgoingEdges so a spur search can't reuse them. Used
// only internally by YenKShortestPaths; a separate, general-purpose
// exclusion view belongs in the views package, but Yen's exclusions
// change on every spur node and aren't worth exposing there.
type yenFilteredGraph[V comparable, E comparable] struct {
	base             IncidenceGraph[V, E]
	excludedVertices map[V]bool
	excludedEdges    map[E]bool
}

func (g *yenFilteredGraph[V, E]) OutgoingEdges(v V) []E {
	if g.excludedVertices[v] {
		return nil
	}
	var out []E
	for _, e := range g.base.OutgoingEdges(v) {
		if g.excludedEdges[e] {
			continue
		}
		to, ok := g.base.Destination(e)
		if ok && g.excludedVertices[to] {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (g *yenFilteredGraph[V, E]) Destination(e E) (V, bool) { return g.base.Destination(e) }
func (g *yenFilteredGraph[V, E]) Source(e E) (V, bool)      { return g.base.Source(e) }

func shortestPathWithEdges[V comparable, E comparable](g IncidenceGraph[V, E], source, target V, w Weight[E]) (yenPath[V, E], bool) {
	result, err := DijkstraTo[V, E](g, source, target, w)
	if err != nil {
		return yenPath[V, E]{}, false
	}
	dist, reached := result.Dist[target]
	if !reached {
		return yenPath[V, E]{}, false
	}

	var revVertices []V
	var revEdges []E
	cur := target
	for {
		revVertices = append(revVertices, cur)
		if cur == source {
			break
		}
		if !result.HasPrev[cur] {
			return yenPath[V, E]{}, false
		}
		e := result.Prev[cur]
		revEdges = append(revEdges, e)
		from, _ := g.Source(e)
		cur = from
	}

	vertices := make([]V, len(revVertices))
	for i, v := range revVertices {
		vertices[len(revVertices)-1-i] = v
	}
	edges := make([]E, len(revEdges))
	for i, e := range revEdges {
		edges[len(revEdges)-1-i] = e
	}
	return yenPath[V, E]{vertices: vertices, edges: edges, cost: dist}, true
}

func pathCost[E comparable](edges []E, w Weight[E]) float64 {
	var total float64
	for _, e := range edges {
		total += w(e)
	}
	return total
}

// YenKShortestPaths enumerates up to k loopless source-target paths in
// increasing order of cost, using Dijkstra as the spur-path subroutine
// with per-iteration edge/node exclusions, per spec. Returns fewer than k
// paths if the graph doesn't have that many distinct loopless routes.
func YenKShortestPaths[V comparable, E comparable](g IncidenceGraph[V, E], source, target V, w Weight[E], k int) [][]V {
	first, ok := shortestPathWithEdges[V, E](g, source, target, w)
	if !ok {
		return nil
	}
	A := []yenPath[V, E]{first}
	var B []yenPath[V, E]

	for len(A) < k {
		prev := A[len(A)-1]

		for i := 0; i < len(prev.vertices)-1; i++ {
			spurNode := prev.vertices[i]
			rootVertices := append([]V{}, prev.vertices[:i+1]...)
			rootEdges := append([]E{}, prev.edges[:i]...)

			excludedEdges := map[E]bool{}
			for _, p := range A {
				if len(p.vertices) > i+1 && equalPrefix(p.vertices[:i+1], rootVertices) {
					excludedEdges[p.edges[i]] = true
				}
			}
			excludedVertices := map[V]bool{}
			for _, v := range rootVertices[:len(rootVertices)-1] {
				excludedVertices[v] = true
			}

			filtered := &yenFilteredGraph[V, E]{base: g, excludedVertices: excludedVertices, excludedEdges: excludedEdges}
			spur, ok := shortestPathWithEdges[V, E](filtered, spurNode, target, w)
			if !ok {
				continue
			}

			totalVertices := append(append([]V{}, rootVertices[:len(rootVertices)-1]...), spur.vertices...)
			totalEdges := append(append([]E{}, rootEdges...), spur.edges...)
			candidate := yenPath[V, E]{
				vertices: totalVertices,
				edges:    totalEdges,
				cost:     pathCost(rootEdges, w) + spur.cost,
			}

			duplicate := false
			for _, p := range A {
				if sameVertices(p.vertices, candidate.vertices) {
					duplicate = true
					break
				}
			}
			for _, p := range B {
				if sameVertices(p.vertices, candidate.vertices) {
					duplicate = true
					break
				}
			}
			if !duplicate {
				B = append(B, candidate)
			}
		}

		if len(B) == 0 {
			break
		}
		sort.SliceStable(B, func(i, j int) bool { return B[i].cost < B[j].cost })
		A = append(A, B[0])
		B = B[1:]
	}

	out := make([][]V, len(A))
	for i, p := range A {
		out[i] = p.vertices
	}
	return out
}
