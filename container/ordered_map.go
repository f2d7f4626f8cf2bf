package container

import "golang.org/x/exp/maps"

// OrderedMap is a map from comparable keys to values of any type that
// remembers insertion order, matching the "ordered map" utility container
// named in the dependency order of spec §2.
type OrderedMap[K comparable, V any] struct {
	values map[K]V
	order  *OrderedSet[K]
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		values: make(map[K]V),
		order:  NewOrderedSet[K](),
	}
}

// Set assigns value to key, preserving the key's original insertion
// position if it already existed.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	m.order.Add(key)
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Delete removes key. Returns true if key was present.
func (m *OrderedMap[K, V]) Delete(key K) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	m.order.Remove(key)
	return true
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int { return m.order.Len() }

// Keys returns keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K { return m.order.Items() }

// Clone returns a deep copy.
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		values: maps.Clone(m.values),
		order:  m.order.Clone(),
	}
}
