// Package isomorphism decides whether two graphs have identical structure
// up to vertex relabeling, via VF2 (an exact, exhaustive search for a
// structure-preserving bijection) and Weisfeiler-Lehman (a fast, inexact
// canonical-label refinement used as a cheap non-isomorphism filter).
//
// No teacher package performs isomorphism testing; both algorithms are new
// code following the established pattern of a small capability interface
// plus free functions, matching the style of the coloring and scc packages.
package isomorphism

import "sort"

// AdjacencyGraph is the minimal capability both algorithms need.
type AdjacencyGraph[V comparable] interface {
	Vertices() []V
	AdjacentVertices(v V) []V
}

// VF2 reports whether g1 and g2 are isomorphic, returning the discovered
// vertex mapping from g1 to g2 when they are. It performs an exhaustive
// backtracking search extending a partial mapping one vertex pair at a
// time, pruned by degree and adjacency-consistency checks at each step —
// the classic VF2 feasibility rules restricted to simple graphs (no
// semantic/attribute matching).
func VF2[V comparable](g1, g2 AdjacencyGraph[V]) (map[V]V, bool) {
	v1 := g1.Vertices()
	v2 := g2.Vertices()
	if len(v1) != len(v2) {
		return nil, false
	}

	adj1 := make(map[V][]V, len(v1))
	for _, v := range v1 {
		adj1[v] = g1.AdjacentVertices(v)
	}
	adj2 := make(map[V][]V, len(v2))
	for _, v := range v2 {
		adj2[v] = g2.AdjacentVertices(v)
	}
	if !sameDegreeMultiset(adj1, adj2) {
		return nil, false
	}

	mapping := make(map[V]V, len(v1))
	reverse := make(map[V]V, len(v1))
	used2 := make(map[V]bool, len(v2))

	var search func(i int) bool
	search = func(i int) bool {
		if i == len(v1) {
			return true
		}
		u := v1[i]
		for _, w := range v2 {
			if used2[w] {
				continue
			}
			if !feasible(u, w, adj1, adj2, mapping, reverse) {
				continue
			}
			mapping[u] = w
			reverse[w] = u
			used2[w] = true
			if search(i + 1) {
				return true
			}
			delete(mapping, u)
			delete(reverse, w)
			used2[w] = false
		}
		return false
	}

	if search(0) {
		return mapping, true
	}
	return nil, false
}

// feasible checks the VF2 consistency rule: u's already-mapped neighbors
// must map exactly onto w's already-mapped neighbors, and vice versa, and
// the two candidates must have equal degree.
func feasible[V comparable](u, w V, adj1, adj2 map[V][]V, mapping, reverse map[V]V) bool {
	if len(adj1[u]) != len(adj2[w]) {
		return false
	}
	for _, n := range adj1[u] {
		if mapped, ok := mapping[n]; ok {
			if !containsVertex(adj2[w], mapped) {
				return false
			}
		}
	}
	for _, n := range adj2[w] {
		if mapped, ok := reverse[n]; ok {
			if !containsVertex(adj1[u], mapped) {
				return false
			}
		}
	}
	return true
}

func containsVertex[V comparable](list []V, v V) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func sameDegreeMultiset[V comparable](adj1, adj2 map[V][]V) bool {
	d1 := degreeHistogram(adj1)
	d2 := degreeHistogram(adj2)
	if len(d1) != len(d2) {
		return false
	}
	for degree, count := range d1 {
		if d2[degree] != count {
			return false
		}
	}
	return true
}

func degreeHistogram[V comparable](adj map[V][]V) map[int]int {
	hist := map[int]int{}
	for _, neighbors := range adj {
		hist[len(neighbors)]++
	}
	return hist
}

// WeisfeilerLehman computes a stable canonical signature for g via the
// 1-dimensional Weisfeiler-Lehman color refinement: every vertex starts
// colored by its degree, then iteratively recolors by the sorted multiset
// of its neighbors' colors, for rounds iterations (or until colors stop
// changing). Two graphs with different signatures are definitely not
// isomorphic; equal signatures are a necessary but not sufficient
// condition (WL cannot distinguish all non-isomorphic graphs).
func WeisfeilerLehman[V comparable](g AdjacencyGraph[V], rounds int) []int {
	vertices := g.Vertices()
	color := make(map[V]int, len(vertices))
	for _, v := range vertices {
		color[v] = len(g.AdjacentVertices(v))
	}

	for r := 0; r < rounds; r++ {
		signature := make(map[V]string, len(vertices))
		for _, v := range vertices {
			neighborColors := make([]int, 0, len(g.AdjacentVertices(v)))
			for _, n := range g.AdjacentVertices(v) {
				neighborColors = append(neighborColors, color[n])
			}
			sort.Ints(neighborColors)
			signature[v] = encodeSignature(color[v], neighborColors)
		}

		next := compressSignatures(vertices, signature)
		if sameColoring(color, next) {
			color = next
			break
		}
		color = next
	}

	result := make([]int, 0, len(vertices))
	for _, v := range vertices {
		result = append(result, color[v])
	}
	sort.Ints(result)
	return result
}

func encodeSignature(self int, neighborColors []int) string {
	buf := make([]byte, 0, 4*(len(neighborColors)+1))
	buf = appendInt(buf, self)
	for _, c := range neighborColors {
		buf = append(buf, ',')
		buf = appendInt(buf, c)
	}
	return string(buf)
}

func appendInt(buf []byte, n int) []byte {
	if n == 0 {
		return append(buf, '0')
	}
	neg := n < 0
	if neg {
		n = -n
	}
	start := len(buf)
	for n > 0 {
		buf = append(buf, byte('0'+n%10))
		n /= 10
	}
	if neg {
		buf = append(buf, '-')
	}
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

func compressSignatures[V comparable](vertices []V, signature map[V]string) map[V]int {
	distinct := make([]string, 0, len(vertices))
	seen := map[string]bool{}
	for _, v := range vertices {
		s := signature[v]
		if !seen[s] {
			seen[s] = true
			distinct = append(distinct, s)
		}
	}
	sort.Strings(distinct)
	rank := make(map[string]int, len(distinct))
	for i, s := range distinct {
		rank[s] = i
	}
	next := make(map[V]int, len(vertices))
	for _, v := range vertices {
		next[v] = rank[signature[v]]
	}
	return next
}

func sameColoring[V comparable](a, b map[V]int) bool {
	if len(a) != len(b) {
		return false
	}
	for v, c := range a {
		if b[v] != c {
			return false
		}
	}
	return true
}
