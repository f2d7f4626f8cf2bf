package maxflow

import "context"

// FordFulkerson computes maximum flow from source to sink using
// DFS-discovered augmenting paths. Simplest of the three strategies;
// its worst-case running time depends on capacity magnitudes rather than
// graph size, unlike Edmonds-Karp/Dinic.
func FordFulkerson[V comparable, E comparable](ctx context.Context, g VertexListGraph[V, E], source, sink V, w Weight[E]) (Result[V], error) {
	if err := validateEndpoints[V, E](g, source, sink); err != nil {
		return Result[V]{}, err
	}

	r := buildResidual[V, E](g, w)
	var total float64

	for {
		select {
		case <-ctx.Done():
			return Result[V]{Value: total, residual: r, source: source}, ctx.Err()
		default:
		}

		visited := map[V]bool{source: true}
		parent := map[V]V{}
		bottleneck := dfsAugmentingPath(r, source, sink, visited, parent)
		if bottleneck <= epsilon {
			break
		}

		cur := sink
		for cur != source {
			prev := parent[cur]
			r.push(prev, cur, bottleneck)
			cur = prev
		}
		total += bottleneck
	}

	return Result[V]{Value: total, residual: r, source: source}, nil
}

// dfsAugmentingPath finds any source-sink path with positive residual
// capacity and returns its bottleneck, filling parent along the way. 0
// means no augmenting path remains.
func dfsAugmentingPath[V comparable](r *residual[V], u, sink V, visited map[V]bool, parent map[V]V) float64 {
	if u == sink {
		return infCapacity
	}
	for v, c := range r.cap[u] {
		if c > epsilon && !visited[v] {
			visited[v] = true
			parent[v] = u
			bottleneck := dfsAugmentingPath(r, v, sink, visited, parent)
			if bottleneck > epsilon {
				if c < bottleneck {
					return c
				}
				return bottleneck
			}
		}
	}
	return 0
}

const infCapacity = 1e18
