// Package generators builds random graph instances for benchmarking and
// testing: Erdős-Rényi (each edge included independently with probability
// p), Barabási-Albert (preferential-attachment growth), and Watts-Strogatz
// (small-world ring rewiring). Each returns a *adjlist.AdjacencyList, the
// same storage engine the rest of the module consumes.
//
// Adapted from the teacher's builder package (impl_random_sparse.go's
// Bernoulli-trial edge sampling over ordered/unordered index pairs,
// impl_random_regular.go's stub-list construction technique), generalized
// from core.Graph's string-keyed AddVertex/AddEdge to adjlist's
// VertexDescriptor/EdgeDescriptor allocation, and driven by a caller-
// supplied *rand.Rand rather than a builder Option for determinism.
package generators

import (
	"errors"
	"math/rand"

	"github.com/nodegraph/nodegraph/adjlist"
)

// ErrTooFewVertices mirrors the teacher's domain-validation sentinel for
// n below the minimum each generator requires.
var ErrTooFewVertices = errors.New("generators: too few vertices")

// ErrInvalidProbability mirrors the teacher's sentinel for a probability
// argument outside [0,1].
var ErrInvalidProbability = errors.New("generators: probability not in [0,1]")

// ErrInvalidDegree is returned when a degree parameter is out of range for
// the requested vertex count.
var ErrInvalidDegree = errors.New("generators: degree out of range")

// ErdosRenyi builds an undirected graph on n vertices where each of the
// C(n,2) possible edges is included independently with probability p,
// following the teacher's stable i-ascending, j>i trial order for
// deterministic outcomes given a fixed rng stream.
func ErdosRenyi(n int, p float64, rng *rand.Rand) (*adjlist.AdjacencyList, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if p < 0.0 || p > 1.0 {
		return nil, ErrInvalidProbability
	}

	g := adjlist.New()
	vertices := make([]adjlist.VertexDescriptor, n)
	for i := 0; i < n; i++ {
		vertices[i] = g.AddVertex()
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() <= p {
				g.AddEdge(vertices[i], vertices[j])
				g.AddEdge(vertices[j], vertices[i])
			}
		}
	}
	return g, nil
}

// BarabasiAlbert builds an undirected scale-free graph by preferential
// attachment: starting from a seed clique on the first m+1 vertices (not
// m), each subsequently
// added vertex attaches m edges to existing vertices, chosen with
// probability proportional to their current degree (tracked via a repeated
// -vertex-index sample pool, the standard linear-preferential-attachment
// sampling trick).
func BarabasiAlbert(n, m int, rng *rand.Rand) (*adjlist.AdjacencyList, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if m < 1 || m >= n {
		return nil, ErrInvalidDegree
	}

	g := adjlist.New()
	vertices := make([]adjlist.VertexDescriptor, n)
	for i := 0; i < n; i++ {
		vertices[i] = g.AddVertex()
	}

	// Seed: a small clique over the first m+1 vertices so every seed
	// vertex starts with positive degree to attach onto.
	seed := m + 1
	if seed > n {
		seed = n
	}
	for i := 0; i < seed; i++ {
		for j := i + 1; j < seed; j++ {
			g.AddEdge(vertices[i], vertices[j])
			g.AddEdge(vertices[j], vertices[i])
		}
	}

	// repeatedTargets holds one entry per existing edge endpoint, so
	// sampling uniformly from it samples a vertex with probability
	// proportional to its degree.
	var repeatedTargets []int
	for i := 0; i < seed; i++ {
		degree := seed - 1
		for k := 0; k < degree; k++ {
			repeatedTargets = append(repeatedTargets, i)
		}
	}

	for i := seed; i < n; i++ {
		chosen := map[int]bool{}
		for len(chosen) < m && len(chosen) < i {
			target := repeatedTargets[rng.Intn(len(repeatedTargets))]
			chosen[target] = true
		}
		for target := range chosen {
			g.AddEdge(vertices[i], vertices[target])
			g.AddEdge(vertices[target], vertices[i])
			repeatedTargets = append(repeatedTargets, target, i)
		}
	}

	return g, nil
}

// WattsStrogatz builds an undirected small-world graph: a ring lattice
// where each vertex connects to its k nearest neighbors on each side, then
// each such edge is rewired to a uniformly random other vertex with
// probability beta (skipping self-loops and already-present edges),
// following the classic Watts-Strogatz rewiring procedure.
func WattsStrogatz(n, k int, beta float64, rng *rand.Rand) (*adjlist.AdjacencyList, error) {
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	if k < 1 || k >= n/2 {
		return nil, ErrInvalidDegree
	}
	if beta < 0.0 || beta > 1.0 {
		return nil, ErrInvalidProbability
	}

	g := adjlist.New()
	vertices := make([]adjlist.VertexDescriptor, n)
	for i := 0; i < n; i++ {
		vertices[i] = g.AddVertex()
	}

	present := map[[2]int]bool{}
	forward := map[[2]int]adjlist.EdgeDescriptor{}
	backward := map[[2]int]adjlist.EdgeDescriptor{}
	connect := func(i, j int) {
		if i == j || present[[2]int{i, j}] {
			return
		}
		present[[2]int{i, j}] = true
		present[[2]int{j, i}] = true
		fwd, _ := g.AddEdge(vertices[i], vertices[j])
		bwd, _ := g.AddEdge(vertices[j], vertices[i])
		forward[[2]int{i, j}] = fwd
		backward[[2]int{i, j}] = bwd
	}
	disconnect := func(i, j int) {
		if fwd, ok := forward[[2]int{i, j}]; ok {
			g.RemoveEdge(fwd)
		}
		if bwd, ok := backward[[2]int{i, j}]; ok {
			g.RemoveEdge(bwd)
		}
		delete(forward, [2]int{i, j})
		delete(backward, [2]int{i, j})
		delete(present, [2]int{i, j})
		delete(present, [2]int{j, i})
	}

	for i := 0; i < n; i++ {
		for step := 1; step <= k; step++ {
			connect(i, (i+step)%n)
		}
	}

	for i := 0; i < n; i++ {
		for step := 1; step <= k; step++ {
			j := (i + step) % n
			if rng.Float64() >= beta {
				continue
			}
			candidate := rng.Intn(n)
			attempts := 0
			for (candidate == i || present[[2]int{i, candidate}]) && attempts < n {
				candidate = rng.Intn(n)
				attempts++
			}
			if attempts == n {
				continue
			}
			disconnect(i, j)
			connect(i, candidate)
		}
	}

	return g, nil
}
