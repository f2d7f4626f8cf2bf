// Package mst implements minimum spanning tree strategies over an
// undirected graph: Kruskal (sort all edges, union-find), Prim (grow
// from a root via a min-heap of candidate edges), and Borůvka (parallel
// component merging, repeated until one component remains).
//
// Adapted from the teacher's prim_kruskal package (prim_kruskal/kruskal.go,
// prim_kruskal/prim.go: the same two algorithms over *core.Graph/string
// IDs), generalized to any VertexListGraph/EdgeListGraph over comparable
// descriptors and an externally supplied Weight function, and using
// container.UnionFind/container.PriorityQueue in place of the teacher's
// inline parent/rank maps and container/heap.Interface implementation.
package mst

import (
	"sort"

	"github.com/nodegraph/nodegraph/container"
)

// Weight computes the cost of edge e. MST algorithms require this to be
// a real-valued, totally ordered, additive function, per spec.
type Weight[E comparable] func(e E) float64

// IncidenceGraph is the minimal capability Prim needs: incidence plus
// endpoint resolution.
type IncidenceGraph[V comparable, E comparable] interface {
	OutgoingEdges(v V) []E
	Destination(e E) (V, bool)
	Source(e E) (V, bool)
}

// EdgeListGraph additionally exposes the full vertex and edge sets,
// which Kruskal and Borůvka need up front.
type EdgeListGraph[V comparable, E comparable] interface {
	IncidenceGraph[V, E]
	Vertices() []V
	Edges() []E
}

// Forest is the result of an MST computation: the selected edges and
// their total weight.
type Forest[V comparable, E comparable] struct {
	Edges       []E
	TotalWeight float64
}

// Kruskal computes a minimum spanning forest by sorting all edges
// ascending by weight and adding each one that doesn't close a cycle,
// tracked via union-find. Ties are broken by the graph's Edges() order
// (stable sort), per spec's descriptor-order tie-breaking rule. On a
// disconnected graph with c components, the result has V-c edges: one
// spanning tree per component, per spec.
func Kruskal[V comparable, E comparable](g EdgeListGraph[V, E], w Weight[E]) Forest[V, E] {
	vertices := g.Vertices()
	if len(vertices) <= 1 {
		return Forest[V, E]{}
	}

	uf := container.NewUnionFind[V]()
	for _, v := range vertices {
		uf.MakeSet(v)
	}

	edges := append([]E{}, g.Edges()...)
	sort.SliceStable(edges, func(i, j int) bool { return w(edges[i]) < w(edges[j]) })

	var result []E
	var total float64
	for _, e := range edges {
		u, ok1 := g.Source(e)
		v, ok2 := g.Destination(e)
		if !ok1 || !ok2 || u == v {
			continue
		}
		if uf.Union(u, v) {
			result = append(result, e)
			total += w(e)
			if len(result) == len(vertices)-1 {
				break
			}
		}
	}

	return Forest[V, E]{Edges: result, TotalWeight: total}
}

// Prim computes a minimum spanning forest by growing a tree outward from
// root, always adding the cheapest edge that reaches an unvisited vertex;
// when root's component is exhausted but unvisited vertices remain
// (the graph is disconnected), a fresh tree is started from one of them,
// so the result spans every component: V-c edges for c components, per
// spec.
func Prim[V comparable, E comparable](g EdgeListGraph[V, E], root V, w Weight[E]) Forest[V, E] {
	vertices := g.Vertices()
	if len(vertices) <= 1 {
		return Forest[V, E]{}
	}

	visited := map[V]bool{}
	pq := container.NewPriorityQueue[E]()
	frontier := func(v V) {
		for _, e := range g.OutgoingEdges(v) {
			pq.Push(e, w(e))
		}
	}

	visited[root] = true
	frontier(root)
	remaining := len(vertices) - 1

	var result []E
	var total float64
	for remaining > 0 {
		for pq.Len() > 0 {
			e, priority, ok := pq.Pop()
			if !ok {
				break
			}
			to, ok := g.Destination(e)
			if !ok || visited[to] {
				continue
			}
			visited[to] = true
			result = append(result, e)
			total += priority
			remaining--
			frontier(to)
		}
		if remaining == 0 {
			break
		}

		started := false
		for _, v := range vertices {
			if !visited[v] {
				visited[v] = true
				remaining--
				frontier(v)
				started = true
				break
			}
		}
		if !started {
			break
		}
	}

	return Forest[V, E]{Edges: result, TotalWeight: total}
}

// Boruvka computes a minimum spanning forest by repeated rounds of "each
// component picks its cheapest outgoing edge", merging all chosen edges'
// endpoints at once via union-find, until a single component remains or
// no round finds a cross-component edge to add — the latter case leaving
// a forest of V-c edges when c components can't be bridged, per spec.
func Boruvka[V comparable, E comparable](g EdgeListGraph[V, E], w Weight[E]) Forest[V, E] {
	vertices := g.Vertices()
	if len(vertices) <= 1 {
		return Forest[V, E]{}
	}

	uf := container.NewUnionFind[V]()
	for _, v := range vertices {
		uf.MakeSet(v)
	}

	edges := g.Edges()
	var result []E
	var total float64
	components := len(vertices)

	for components > 1 {
		cheapest := map[V]E{}
		cheapestWeight := map[V]float64{}
		hasCheapest := map[V]bool{}

		for _, e := range edges {
			u, ok1 := g.Source(e)
			v, ok2 := g.Destination(e)
			if !ok1 || !ok2 {
				continue
			}
			ru, rv := uf.Find(u), uf.Find(v)
			if ru == rv {
				continue
			}
			weight := w(e)
			if !hasCheapest[ru] || weight < cheapestWeight[ru] {
				cheapest[ru] = e
				cheapestWeight[ru] = weight
				hasCheapest[ru] = true
			}
			if !hasCheapest[rv] || weight < cheapestWeight[rv] {
				cheapest[rv] = e
				cheapestWeight[rv] = weight
				hasCheapest[rv] = true
			}
		}

		if len(hasCheapest) == 0 {
			break
		}

		added := false
		seen := map[E]bool{}
		for _, e := range cheapest {
			if seen[e] {
				continue
			}
			seen[e] = true
			u, _ := g.Source(e)
			v, _ := g.Destination(e)
			if uf.Union(u, v) {
				result = append(result, e)
				total += w(e)
				components--
				added = true
			}
		}
		if !added {
			break
		}
	}

	return Forest[V, E]{Edges: result, TotalWeight: total}
}
