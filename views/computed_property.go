package views

// ComputeVertexFunc derives a value for v by consulting base. base has the
// type parameter Base, constrained only by `any`, so the overlay works
// across any base graph type; callers write their own closures knowing
// the concrete base they passed in.
type ComputeVertexFunc[V comparable, Base any, T any] func(v V, base Base) T

// ComputedVertexProperty overlays a single derived, read-only property
// onto base's vertices. Reads call the wrapped closure; writes are
// disallowed, matching spec §4.3.
type ComputedVertexProperty[V comparable, Base any, T any] struct {
	base    Base
	compute ComputeVertexFunc[V, Base, T]
}

// NewComputedVertexProperty wraps base with a derivation closure.
func NewComputedVertexProperty[V comparable, Base any, T any](base Base, compute ComputeVertexFunc[V, Base, T]) *ComputedVertexProperty[V, Base, T] {
	return &ComputedVertexProperty[V, Base, T]{base: base, compute: compute}
}

// Value returns the derived value for v, recomputed on every call.
func (c *ComputedVertexProperty[V, Base, T]) Value(v V) T { return c.compute(v, c.base) }

// ComputeEdgeFunc derives a value for e by consulting base.
type ComputeEdgeFunc[E comparable, Base any, T any] func(e E, base Base) T

// ComputedEdgeProperty overlays a single derived, read-only property onto
// base's edges.
type ComputedEdgeProperty[E comparable, Base any, T any] struct {
	base    Base
	compute ComputeEdgeFunc[E, Base, T]
}

// NewComputedEdgeProperty wraps base with a derivation closure.
func NewComputedEdgeProperty[E comparable, Base any, T any](base Base, compute ComputeEdgeFunc[E, Base, T]) *ComputedEdgeProperty[E, Base, T] {
	return &ComputedEdgeProperty[E, Base, T]{base: base, compute: compute}
}

// Value returns the derived value for e, recomputed on every call.
func (c *ComputedEdgeProperty[E, Base, T]) Value(e E) T { return c.compute(e, c.base) }
