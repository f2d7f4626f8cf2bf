// Package shortestpath implements the library's shortest-path strategy
// objects: Dijkstra, A*, Bellman-Ford, Floyd-Warshall, Yen's k-shortest,
// and Bidirectional Dijkstra, each a free function over the lattice
// capability interfaces rather than a method on any one storage engine.
//
// Adapted from the teacher's dijkstra package (dijkstra/types.go,
// dijkstra/dijkstra.go: functional-option configuration, a runner struct
// carrying dist/prev maps and a lazy-decrease-key heap, upfront negative
// weight validation) and generalized from *core.Graph/string IDs to any
// IncidenceGraph over comparable descriptors and an externally supplied
// Weight function. Floyd-Warshall's triangle-inequality relaxation order
// (k outer, i middle, j inner) is adapted from matrix/impl_floydwarshall.go.
package shortestpath

import (
	"errors"
	"fmt"
	"math"

	"github.com/nodegraph/nodegraph/container"
)

// Sentinel errors shared across the package's strategies.
var (
	// ErrSourceNotFound indicates the requested source vertex has no
	// known descriptor in the graph supplied.
	ErrSourceNotFound = errors.New("shortestpath: source vertex not found")

	// ErrNegativeWeight indicates an edge weight below zero was
	// encountered by an algorithm that requires non-negative weights.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight encountered")

	// ErrNegativeCycle indicates Bellman-Ford detected a cycle reachable
	// from the source whose total weight is negative; per spec, the
	// result for such an instance is empty, not a panic.
	ErrNegativeCycle = errors.New("shortestpath: negative cycle reachable from source")
)

// Weight computes the traversal cost of edge e. Algorithms in this
// package treat the weight type as a non-negative (except Bellman-Ford)
// ordered, additive float64 domain, per spec's "weights must form an
// ordered monoid under addition" numerical semantics note.
type Weight[E comparable] func(e E) float64

// Heuristic estimates the remaining cost from v to goal, for A*. Must be
// admissible (never overestimate) for the returned path to be optimal;
// an inadmissible heuristic is accepted without a runtime error, per
// spec, and simply yields a possibly suboptimal path.
type Heuristic[V comparable] func(v, goal V) float64

// IncidenceGraph is the minimal capability every strategy here needs.
type IncidenceGraph[V comparable, E comparable] interface {
	OutgoingEdges(v V) []E
	Destination(e E) (V, bool)
	Source(e E) (V, bool)
}

// VertexListGraph additionally exposes the full vertex set, required by
// Bellman-Ford (it must relax every edge |V|-1 times) and Floyd-Warshall.
type VertexListGraph[V comparable, E comparable] interface {
	IncidenceGraph[V, E]
	Vertices() []V
}

// BidirectionalGraph additionally exposes incoming edges, required by
// Bidirectional Dijkstra to run a backward search.
type BidirectionalGraph[V comparable, E comparable] interface {
	IncidenceGraph[V, E]
	IncomingEdges(v V) []E
	InDegree(v V) int
}

// Result is the outcome of a single-source strategy: the best known cost
// to every reached vertex and, if requested, the tree edge that reaches
// it. Unreached vertices are simply absent from both maps.
type Result[V comparable, E comparable] struct {
	Dist map[V]float64
	Prev map[V]E
	// HasPrev mirrors Prev's key set; present because E's zero value may
	// be a valid edge descriptor and can't serve as a "no predecessor"
	// sentinel on its own.
	HasPrev map[V]bool
}

// Path reconstructs the vertex sequence from source to target out of a
// Result, following Prev backward via sourceOf. ok is false if target was
// never reached.
func (r Result[V, E]) Path(source, target V, sourceOf func(E) (V, bool)) ([]V, bool) {
	if _, reached := r.Dist[target]; !reached {
		return nil, false
	}
	var rev []V
	cur := target
	for {
		rev = append(rev, cur)
		if cur == source {
			break
		}
		if !r.HasPrev[cur] {
			return nil, false
		}
		from, _ := sourceOf(r.Prev[cur])
		cur = from
	}
	out := make([]V, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out, true
}

// Dijkstra computes shortest distances from source to every reachable
// vertex of g, under weight w. Requires non-negative weights; returns
// ErrNegativeWeight immediately upon encountering one. Ties in priority
// are broken by descriptor insertion/discovery order, per spec, via the
// heap's stable push order.
func Dijkstra[V comparable, E comparable](g IncidenceGraph[V, E], source V, w Weight[E]) (Result[V, E], error) {
	var noTarget V
	return dijkstraCore[V, E](g, source, w, noTarget, false, nil)
}

// DijkstraTo computes Dijkstra but terminates as soon as target is
// extracted from the frontier, per spec's "terminates early if a single
// target is supplied and extracted".
func DijkstraTo[V comparable, E comparable](g IncidenceGraph[V, E], source, target V, w Weight[E]) (Result[V, E], error) {
	return dijkstraCore[V, E](g, source, w, target, true, nil)
}

// AStar runs Dijkstra with priority g(v) + h(v, goal). With a consistent
// heuristic, nodes are never re-expanded; with a merely admissible one,
// the result stays optimal but may revisit vertices.
func AStar[V comparable, E comparable](g IncidenceGraph[V, E], source, goal V, w Weight[E], h Heuristic[V]) (Result[V, E], error) {
	return dijkstraCore[V, E](g, source, w, goal, true, h)
}

func dijkstraCore[V comparable, E comparable](g IncidenceGraph[V, E], source V, w Weight[E], target V, hasTarget bool, h Heuristic[V]) (Result[V, E], error) {
	dist := map[V]float64{source: 0}
	prev := map[V]E{}
	hasPrev := map[V]bool{}
	visited := map[V]bool{}

	pq := container.NewPriorityQueue[V]()
	priorityOf := func(v V) float64 {
		if h != nil {
			return dist[v] + h(v, target)
		}
		return dist[v]
	}
	pq.Push(source, priorityOf(source))

	for pq.Len() > 0 {
		u, _, ok := pq.Pop()
		if !ok {
			break
		}
		if visited[u] {
			continue
		}
		visited[u] = true

		if hasTarget && u == target {
			break
		}

		for _, e := range g.OutgoingEdges(u) {
			v, ok := g.Destination(e)
			if !ok {
				continue
			}
			weight := w(e)
			if weight < 0 {
				return Result[V, E]{}, fmt.Errorf("%w: edge to destination", ErrNegativeWeight)
			}
			cand := dist[u] + weight
			cur, seen := dist[v]
			if !seen || cand < cur {
				dist[v] = cand
				prev[v] = e
				hasPrev[v] = true
				// A cheaper route to an already expanded vertex (possible
				// with an admissible but inconsistent A* heuristic) reopens it.
				visited[v] = false
				pq.Push(v, priorityOf(v))
			}
		}
	}

	return Result[V, E]{Dist: dist, Prev: prev, HasPrev: hasPrev}, nil
}

// BellmanFord computes shortest distances from source, tolerating
// negative edge weights, over a VertexListGraph (it must be able to
// enumerate every vertex to bound its |V|-1 relaxation rounds). If a
// further sweep still finds a relaxable edge, a negative cycle is
// reachable from source and ErrNegativeCycle is returned with an empty
// Result, per spec.
func BellmanFord[V comparable, E comparable](g VertexListGraph[V, E], source V, w Weight[E]) (Result[V, E], error) {
	vertices := g.Vertices()
	dist := map[V]float64{source: 0}
	prev := map[V]E{}
	hasPrev := map[V]bool{}

	relaxAll := func() bool {
		changed := false
		for _, u := range vertices {
			ud, ok := dist[u]
			if !ok {
				continue
			}
			for _, e := range g.OutgoingEdges(u) {
				v, ok := g.Destination(e)
				if !ok {
					continue
				}
				cand := ud + w(e)
				cur, seen := dist[v]
				if !seen || cand < cur {
					dist[v] = cand
					prev[v] = e
					hasPrev[v] = true
					changed = true
				}
			}
		}
		return changed
	}

	for i := 0; i < len(vertices)-1; i++ {
		if !relaxAll() {
			break
		}
	}
	if relaxAll() {
		return Result[V, E]{}, ErrNegativeCycle
	}

	return Result[V, E]{Dist: dist, Prev: prev, HasPrev: hasPrev}, nil
}

// APSPResult is the outcome of an all-pairs shortest path computation:
// dense distance and predecessor matrices indexed by position in the
// Vertices slice supplied to FloydWarshall.
type APSPResult[V comparable] struct {
	Vertices []V
	index    map[V]int
	Dist     [][]float64
	// Next[i][j] is the index of the next hop from Vertices[i] toward
	// Vertices[j], or -1 if no path exists.
	Next [][]int
}

// DistanceBetween returns the shortest distance from u to v, and true, or
// (+Inf, false) if either vertex is unknown to this result.
func (r APSPResult[V]) DistanceBetween(u, v V) (float64, bool) {
	i, ok1 := r.index[u]
	j, ok2 := r.index[v]
	if !ok1 || !ok2 {
		return math.Inf(1), false
	}
	return r.Dist[i][j], true
}

// Path reconstructs the vertex path from u to v using the Next matrix.
func (r APSPResult[V]) Path(u, v V) ([]V, bool) {
	i, ok1 := r.index[u]
	j, ok2 := r.index[v]
	if !ok1 || !ok2 || math.IsInf(r.Dist[i][j], 1) {
		return nil, false
	}
	path := []V{r.Vertices[i]}
	for i != j {
		i = r.Next[i][j]
		if i == -1 {
			return nil, false
		}
		path = append(path, r.Vertices[i])
	}
	return path, true
}

// FloydWarshall computes all-pairs shortest paths over a VertexListGraph,
// with a fused triangle-inequality relaxation (k outer, i middle, j
// inner), O(|V|^3) time. Negative edges are permitted; a vertex that
// lies on a negative cycle is left with Dist[i][i] < 0,
// mirroring the dense-matrix convention rather than raising an error.
func FloydWarshall[V comparable, E comparable](g VertexListGraph[V, E], w Weight[E]) APSPResult[V] {
	vertices := g.Vertices()
	n := len(vertices)
	index := make(map[V]int, n)
	for i, v := range vertices {
		index[v] = i
	}

	dist := make([][]float64, n)
	next := make([][]int, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		next[i] = make([]int, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = math.Inf(1)
			}
			next[i][j] = -1
		}
	}

	for i, u := range vertices {
		for _, e := range g.OutgoingEdges(u) {
			v, ok := g.Destination(e)
			if !ok {
				continue
			}
			j := index[v]
			weight := w(e)
			if weight < dist[i][j] {
				dist[i][j] = weight
				next[i][j] = j
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if math.IsInf(dist[i][k], 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if math.IsInf(dist[k][j], 1) {
					continue
				}
				cand := dist[i][k] + dist[k][j]
				if cand < dist[i][j] {
					dist[i][j] = cand
					next[i][j] = next[i][k]
				}
			}
		}
	}

	return APSPResult[V]{Vertices: vertices, index: index, Dist: dist, Next: next}
}

// BidirectionalDijkstra alternates a forward Dijkstra from source and a
// backward Dijkstra (via IncomingEdges) from target, stopping once the
// two frontiers have proved a tightest crossing vertex, per spec. Cost
// is the shortest source-target distance and true, or false if target is
// unreachable.
func BidirectionalDijkstra[V comparable, E comparable](g BidirectionalGraph[V, E], source, target V, w Weight[E]) (float64, bool) {
	if source == target {
		return 0, true
	}

	distF := map[V]float64{source: 0}
	distB := map[V]float64{target: 0}
	visitedF := map[V]bool{}
	visitedB := map[V]bool{}

	pqF := container.NewPriorityQueue[V]()
	pqB := container.NewPriorityQueue[V]()
	pqF.Push(source, 0)
	pqB.Push(target, 0)

	best := math.Inf(1)

	expand := func(u V, dist map[V]float64, visited map[V]bool, pq *container.PriorityQueue[V], forward bool) {
		visited[u] = true
		var edges []E
		if forward {
			edges = g.OutgoingEdges(u)
		} else {
			edges = g.IncomingEdges(u)
		}
		for _, e := range edges {
			var v V
			var ok bool
			if forward {
				v, ok = g.Destination(e)
			} else {
				v, ok = g.Source(e)
			}
			if !ok {
				continue
			}
			cand := dist[u] + w(e)
			cur, seen := dist[v]
			if !seen || cand < cur {
				dist[v] = cand
				pq.Push(v, cand)
			}
		}
	}

	for pqF.Len() > 0 && pqB.Len() > 0 {
		uf, pf, _ := pqF.Pop()
		if !visitedF[uf] {
			expand(uf, distF, visitedF, pqF, true)
			if db, ok := distB[uf]; ok {
				if total := distF[uf] + db; total < best {
					best = total
				}
			}
		}
		ub, pb, _ := pqB.Pop()
		if !visitedB[ub] {
			expand(ub, distB, visitedB, pqB, false)
			if df, ok := distF[ub]; ok {
				if total := distB[ub] + df; total < best {
					best = total
				}
			}
		}
		if pf+pb >= best {
			break
		}
	}

	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}
