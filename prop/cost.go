package prop

// CostFunc computes a scalar cost for an edge descriptor E, used by every
// weighted algorithm (Dijkstra, A*, Bellman-Ford, MST, max-flow capacities)
// so that no algorithm hardcodes a property name, matching spec §4.4's
// "algorithms accept a cost definition" requirement.
type CostFunc[E any] func(e E) float64

// VertexCostFunc computes a scalar cost for a vertex descriptor V, used by
// A*'s heuristic and by vertex-weighted variants of traversal.
type VertexCostFunc[V any] func(v V) float64

// FromEdgeProperty builds a CostFunc that reads a declared property from an
// edge's bag, via a caller-supplied bag lookup (typically an engine's
// EdgeBag method or a Map[E].Bag). This is the "read property P"
// convenience constructor named in spec §4.4.
func FromEdgeProperty[E comparable](bagOf func(E) *Bag, key Key[float64]) CostFunc[E] {
	return func(e E) float64 {
		return Get(bagOf(e), key)
	}
}

// Constant builds a CostFunc that ignores its argument and always returns c.
func Constant[E any](c float64) CostFunc[E] {
	return func(E) float64 { return c }
}

// FromVertexProperty builds a VertexCostFunc analogous to FromEdgeProperty.
func FromVertexProperty[V comparable](bagOf func(V) *Bag, key Key[float64]) VertexCostFunc[V] {
	return func(v V) float64 {
		return Get(bagOf(v), key)
	}
}

// ConstantVertex builds a VertexCostFunc that always returns c.
func ConstantVertex[V any](c float64) VertexCostFunc[V] {
	return func(V) float64 { return c }
}
