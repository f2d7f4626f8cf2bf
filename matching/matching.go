// Package matching implements Hopcroft-Karp maximum bipartite matching
// over any lattice.BipartiteGraph: repeated BFS layering to find the
// shortest augmenting-path length, followed by DFS phases that saturate
// every vertex-disjoint augmenting path of that length at once.
//
// No teacher package computes bipartite matching directly; this is new
// code in the idiom of the teacher's other strategy packages (a small
// runner struct carrying mutable search state, per dijkstra's `runner`
// and tsp's deterministic tie-breaking discipline in tsp/matching.go),
// generalized to any comparable vertex/edge descriptor pair.
package matching

import "math"

// IncidenceGraph is the minimal capability needed: enumerate a vertex's
// outgoing edges and resolve their destinations.
type IncidenceGraph[V comparable, E comparable] interface {
	OutgoingEdges(v V) []E
	Destination(e E) (V, bool)
}

// BipartiteGraph additionally exposes the two partitions.
type BipartiteGraph[V comparable, E comparable] interface {
	IncidenceGraph[V, E]
	LeftPartitionVertices() []V
	RightPartitionVertices() []V
}

// Matching is the outcome of a maximum-matching computation: each
// matched left vertex's partner on the right.
type Matching[V comparable] struct {
	PairOf map[V]V
}

// Size returns the number of matched pairs.
func (m Matching[V]) Size() int { return len(m.PairOf) }

const infDist = math.MaxInt32

type runner[V comparable, E comparable] struct {
	g            BipartiteGraph[V, E]
	pairLeft     map[V]V
	hasPairLeft  map[V]bool
	pairRight    map[V]V
	hasPairRight map[V]bool
	dist         map[V]int
}

// HopcroftKarp computes a maximum cardinality matching in O(E sqrt(V)).
func HopcroftKarp[V comparable, E comparable](g BipartiteGraph[V, E]) Matching[V] {
	left := g.LeftPartitionVertices()
	r := &runner[V, E]{
		g:            g,
		pairLeft:     map[V]V{},
		hasPairLeft:  map[V]bool{},
		pairRight:    map[V]V{},
		hasPairRight: map[V]bool{},
		dist:         map[V]int{},
	}

	for r.bfs(left) {
		for _, u := range left {
			if !r.hasPairLeft[u] {
				r.dfs(u)
			}
		}
	}

	return Matching[V]{PairOf: r.pairLeft}
}

// bfs layers unmatched left vertices by alternating-path distance and
// reports whether any augmenting path exists this round.
func (r *runner[V, E]) bfs(left []V) bool {
	var queue []V
	for _, u := range left {
		if !r.hasPairLeft[u] {
			r.dist[u] = 0
			queue = append(queue, u)
		} else {
			r.dist[u] = infDist
		}
	}

	foundAugmentingPath := false
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range r.g.OutgoingEdges(u) {
			v, ok := r.g.Destination(e)
			if !ok {
				continue
			}
			if !r.hasPairRight[v] {
				foundAugmentingPath = true
				continue
			}
			pu := r.pairRight[v]
			if r.dist[pu] == infDist {
				r.dist[pu] = r.dist[u] + 1
				queue = append(queue, pu)
			}
		}
	}
	return foundAugmentingPath
}

// dfs attempts to extend an augmenting path from u, respecting the BFS
// layering so only shortest augmenting paths are used this round.
func (r *runner[V, E]) dfs(u V) bool {
	for _, e := range r.g.OutgoingEdges(u) {
		v, ok := r.g.Destination(e)
		if !ok {
			continue
		}
		if !r.hasPairRight[v] || (r.dist[r.pairRight[v]] == r.dist[u]+1 && r.dfs(r.pairRight[v])) {
			r.pairRight[v] = u
			r.hasPairRight[v] = true
			r.pairLeft[u] = v
			r.hasPairLeft[u] = true
			return true
		}
	}
	r.dist[u] = infDist
	return false
}
