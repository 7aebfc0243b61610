// Package bimap implements a one-to-many relation whose inverse is kept in
// step on every mutation.
//
// A OneToMany links each value to at most one key, and each key to any number
// of values. Link, Unlink and RemoveKey update both directions together, so a
// caller can never observe a value listed under a key whose reverse entry
// points elsewhere.
//
// OneToMany is not safe for concurrent use; callers guard it with their own lock.
package bimap

import (
	"cmp"
	"slices"
)

// OneToMany relates keys of type K to sets of values of type V.
type OneToMany[K cmp.Ordered, V cmp.Ordered] struct {
	forward map[K]map[V]struct{}
	reverse map[V]K
}

// New returns an empty relation.
func New[K cmp.Ordered, V cmp.Ordered]() *OneToMany[K, V] {
	return &OneToMany[K, V]{
		forward: make(map[K]map[V]struct{}),
		reverse: make(map[V]K),
	}
}

// Link relates value to key. A value already related to another key is moved.
// It reports the key the value was previously related to, if any.
func (m *OneToMany[K, V]) Link(key K, value V) (previous K, hadPrevious bool) {
	previous, hadPrevious = m.reverse[value]
	if hadPrevious {
		if previous == key {
			return previous, true
		}
		m.removeForward(previous, value)
	}

	values, ok := m.forward[key]
	if !ok {
		values = make(map[V]struct{})
		m.forward[key] = values
	}
	values[value] = struct{}{}
	m.reverse[value] = key

	return previous, hadPrevious
}

// Unlink removes value from the relation and reports the key it belonged to.
func (m *OneToMany[K, V]) Unlink(value V) (K, bool) {
	key, ok := m.reverse[value]
	if !ok {
		return key, false
	}
	delete(m.reverse, value)
	m.removeForward(key, value)
	return key, true
}

// RemoveKey drops key together with every value related to it and returns
// those values in ascending order.
func (m *OneToMany[K, V]) RemoveKey(key K) []V {
	values := m.Values(key)
	for _, v := range values {
		delete(m.reverse, v)
	}
	delete(m.forward, key)
	return values
}

// KeyOf returns the key value is related to.
func (m *OneToMany[K, V]) KeyOf(value V) (K, bool) {
	key, ok := m.reverse[value]
	return key, ok
}

// Contains reports whether value is related to key.
func (m *OneToMany[K, V]) Contains(key K, value V) bool {
	current, ok := m.reverse[value]
	return ok && current == key
}

// Values returns the values related to key in ascending order. The slice is
// a copy; it is empty, not nil, for an unknown key.
func (m *OneToMany[K, V]) Values(key K) []V {
	set := m.forward[key]
	values := make([]V, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}

// Count returns the number of values related to key.
func (m *OneToMany[K, V]) Count(key K) int {
	return len(m.forward[key])
}

// Len returns the number of related values across all keys.
func (m *OneToMany[K, V]) Len() int {
	return len(m.reverse)
}

func (m *OneToMany[K, V]) removeForward(key K, value V) {
	values, ok := m.forward[key]
	if !ok {
		return
	}
	delete(values, value)
	if len(values) == 0 {
		delete(m.forward, key)
	}
}
