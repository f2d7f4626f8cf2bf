package prop

// Map associates each descriptor of a single graph with a property bag. It
// is the dictionary-backed default implementation named in spec §4.4;
// ComputedMap below is the lazily-derived alternative used by the
// Computed*PropertyGraph views.
type Map[D comparable] struct {
	bags map[D]*Bag
}

// NewMap returns an empty, mutable dictionary-backed property map.
func NewMap[D comparable]() *Map[D] {
	return &Map[D]{bags: make(map[D]*Bag)}
}

// Bag returns the bag for d, creating an empty one on first access so
// reads of unset properties yield their declared defaults. The returned
// bag is live: mutating it mutates the map's stored state.
func (m *Map[D]) Bag(d D) *Bag {
	b, ok := m.bags[d]
	if !ok {
		b = NewBag()
		m.bags[d] = b
	}
	return b
}

// Delete removes the bag associated with d, if any.
func (m *Map[D]) Delete(d D) {
	delete(m.bags, d)
}

// ReadOnlyMap restricts a Map to reads, so an algorithm can be handed a
// property map without the ability to mutate it.
type ReadOnlyMap[D comparable] struct {
	inner *Map[D]
}

// ReadOnly wraps m as a read-only view.
func ReadOnly[D comparable](m *Map[D]) ReadOnlyMap[D] { return ReadOnlyMap[D]{inner: m} }

// Bag returns the (non-mutable-by-contract) bag for d. Callers must treat
// the returned *Bag as read-only; Go cannot enforce this at compile time,
// so this is a usage contract, not a hard guarantee.
func (r ReadOnlyMap[D]) Bag(d D) *Bag { return r.inner.Bag(d) }

// ComputeFunc derives a property value for d. It receives only d; any base
// graph it reads from is captured by the closure, so that graph need not be
// any particular type (algorithms only ever see the property, not the
// wrapper that computed it).
type ComputeFunc[D comparable, V any] func(d D) V

// ComputedMap is a read-only property map whose single overlaid property is
// derived on demand via a closure, per spec §4.3's
// Computed{Vertex,Edge}PropertyGraph. Reads of any other property fall
// through to a base map if one is supplied.
type ComputedMap[D comparable, V any] struct {
	key     Key[V]
	compute ComputeFunc[D, V]
	base    *Map[D]
}

// NewComputedMap returns a map overlaying key with values produced by
// compute; base may be nil if no underlying dictionary-backed data exists.
func NewComputedMap[D comparable, V any](key Key[V], compute ComputeFunc[D, V], base *Map[D]) *ComputedMap[D, V] {
	return &ComputedMap[D, V]{key: key, compute: compute, base: base}
}

// Value returns the computed value for d.
func (c *ComputedMap[D, V]) Value(d D) V {
	return c.compute(d)
}

// Bag returns a bag reflecting the base map merged with the computed
// overlay, for call sites that want uniform Bag-shaped access. The
// returned bag is a fresh snapshot, not live, since writes to a computed
// property are disallowed per spec §4.3.
func (c *ComputedMap[D, V]) Bag(d D) *Bag {
	var b *Bag
	if c.base != nil {
		b = c.base.Bag(d).Clone()
	} else {
		b = NewBag()
	}
	Set(b, c.key, c.compute(d))
	return b
}
