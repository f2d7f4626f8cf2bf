// Package container provides the reusable, dependency-free building blocks
// every storage engine and algorithm package in this module is assembled
// from: insertion-ordered collections, heaps, and a disjoint-set structure.
//
// None of these types know anything about graphs; they exist so that
// storage engines can satisfy the "iteration order is insertion order"
// contract demanded throughout the capability lattice without each engine
// reimplementing its own bookkeeping.
package container

import "golang.org/x/exp/maps"

// OrderedSet is a set of comparable elements that remembers insertion
// order. Add is idempotent; Remove deletes an element in O(1) average plus
// an O(n) compaction of the order slice (amortized, since removals are
// rare relative to iteration in the storage engines that use this type).
type OrderedSet[T comparable] struct {
	index map[T]int
	order []T
}

// NewOrderedSet returns an empty OrderedSet.
func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{index: make(map[T]int)}
}

// Add inserts v if absent. Returns true if v was newly added.
func (s *OrderedSet[T]) Add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.order)
	s.order = append(s.order, v)
	return true
}

// Contains reports whether v is a member.
func (s *OrderedSet[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Remove deletes v if present. Returns true if v was a member.
func (s *OrderedSet[T]) Remove(v T) bool {
	pos, ok := s.index[v]
	if !ok {
		return false
	}
	delete(s.index, v)
	s.order = append(s.order[:pos], s.order[pos+1:]...)
	for i := pos; i < len(s.order); i++ {
		s.index[s.order[i]] = i
	}
	return true
}

// Len returns the number of members.
func (s *OrderedSet[T]) Len() int { return len(s.order) }

// Items returns members in insertion order. The caller must not mutate the
// returned slice.
func (s *OrderedSet[T]) Items() []T { return s.order }

// Clone returns a deep copy.
func (s *OrderedSet[T]) Clone() *OrderedSet[T] {
	c := &OrderedSet[T]{
		index: maps.Clone(s.index),
		order: append([]T(nil), s.order...),
	}
	return c
}
