package maxflow

import "context"

// EdmondsKarp computes maximum flow from source to sink using BFS to
// find the shortest (fewest-edges) augmenting path each iteration,
// bounding the number of augmentations polynomially in |V| and |E|.
func EdmondsKarp[V comparable, E comparable](ctx context.Context, g VertexListGraph[V, E], source, sink V, w Weight[E]) (Result[V], error) {
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

		parent, bottleneck := bfsAugmentingPath(r, source, sink)
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

func bfsAugmentingPath[V comparable](r *residual[V], source, sink V) (map[V]V, float64) {
	parent := map[V]V{}
	bottleneck := map[V]float64{source: infCapacity}
	visited := map[V]bool{source: true}

	queue := []V{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == sink {
			break
		}
		for v, c := range r.cap[u] {
			if c > epsilon && !visited[v] {
				visited[v] = true
				parent[v] = u
				if c < bottleneck[u] {
					bottleneck[v] = c
				} else {
					bottleneck[v] = bottleneck[u]
				}
				queue = append(queue, v)
			}
		}
	}

	if !visited[sink] {
		return parent, 0
	}
	return parent, bottleneck[sink]
}
