// Package prop implements the property system that separates topology from
// data: a type-keyed property bag per vertex/edge, external property maps
// over descriptors, and cost definitions consumed by the algorithm
// packages. See spec §4.4.
//
// A property is declared once via Declare[V](name, zero) which returns a
// Key[V] token; bags store only non-default assignments and synthesize the
// zero value on read, matching teacher `core.Vertex.Metadata`'s "absent
// means default" behavior but generalized to typed values instead of
// map[string]any.
package prop

import "sync"

// Key identifies a declared property of value type V. Keys are comparable
// and safe to use as map keys and struct fields; the zero Key is invalid.
type Key[V any] struct {
	id int
}

var (
	keyMu   sync.Mutex
	nextKey int
)

// keyDefaults stores the default value for a Key, type-erased, so Bag can
// hold keys of heterogeneous V without a generic Bag[V].
var keyDefaults = map[int]any{}

// Declare registers a new property with the given default value and
// returns its Key. Call Declare once per logical property, typically in a
// package-level var block, e.g.:
//
//	var Weight = prop.Declare[int64]("weight", 0)
func Declare[V any](_ string, zero V) Key[V] {
	keyMu.Lock()
	defer keyMu.Unlock()
	nextKey++
	k := Key[V]{id: nextKey}
	keyDefaults[k.id] = zero
	return k
}

// Bag is a polymorphic, type-keyed record for one graph element (a vertex
// or an edge). It stores only non-default assignments; Get synthesizes the
// property's declared default when no assignment exists.
type Bag struct {
	values map[int]any
}

// NewBag returns an empty bag; reading any declared property from it
// yields that property's default.
func NewBag() *Bag {
	return &Bag{}
}

// Get returns the value of key for this bag, or its declared default if
// unset.
func Get[V any](b *Bag, key Key[V]) V {
	if b != nil && b.values != nil {
		if v, ok := b.values[key.id]; ok {
			return v.(V)
		}
	}
	return keyDefaults[key.id].(V)
}

// Set assigns value to key on this bag.
func Set[V any](b *Bag, key Key[V], value V) {
	if b.values == nil {
		b.values = make(map[int]any)
	}
	b.values[key.id] = value
}

// Unset removes any assignment for key, reverting reads to the default.
func Unset[V any](b *Bag, key Key[V]) {
	if b.values != nil {
		delete(b.values, key.id)
	}
}

// IsSet reports whether key has a non-default assignment on this bag.
func IsSet[V any](b *Bag, key Key[V]) bool {
	if b == nil || b.values == nil {
		return false
	}
	_, ok := b.values[key.id]
	return ok
}

// Clone returns a shallow copy of the bag (assignment values themselves are
// not deep-copied, matching teacher Vertex.Metadata's documented shallow
// Clone semantics).
func (b *Bag) Clone() *Bag {
	if b == nil || b.values == nil {
		return NewBag()
	}
	cp := make(map[int]any, len(b.values))
	for k, v := range b.values {
		cp[k] = v
	}
	return &Bag{values: cp}
}
