// Package ordered provides order-preserving containers.
package ordered

import "iter"

// Pair is a key,value entry of a Map.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a map that iterates over its entries in the order
// in which their keys were first stored.
type Map[K comparable, V any] struct {
	keys []K
	m    map[K]V
}

// NewMap returns a new empty ordered map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]V)}
}

// Store a key,value pair. Storing an existing key replaces its value
// but keeps its original position.
func (m *Map[K, V]) Store(k K, v V) {
	_, in := m.m[k]
	if !in {
		m.keys = append(m.keys, k)
	}
	m.m[k] = v
}

// GetOrStore returns the value stored under k. If no entry exists,
// it stores and returns the value built by mk.
func (m *Map[K, V]) GetOrStore(k K, mk func() V) V {
	if v, ok := m.m[k]; ok {
		return v
	}
	v := mk()
	m.Store(k, v)
	return v
}

// Load returns the value stored under k.
func (m *Map[K, V]) Load(k K) (V, bool) {
	v, ok := m.m[k]
	return v, ok
}

// Has reports whether an entry exists for k.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.m[k]
	return ok
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Iter returns an iterator over the entries of the map in insertion order.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.m[k]) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys of the map in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range m.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of the map in insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, k := range m.keys {
			if !yield(m.m[k]) {
				return
			}
		}
	}
}

// Pairs returns the entries of the map as a slice in insertion order.
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(m.keys))
	for _, k := range m.keys {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: m.m[k]})
	}
	return pairs
}

// Clone returns a shallow copy of the map preserving insertion order.
func (m *Map[K, V]) Clone() *Map[K, V] {
	clone := &Map[K, V]{
		keys: make([]K, len(m.keys)),
		m:    make(map[K]V, len(m.m)),
	}
	copy(clone.keys, m.keys)
	for k, v := range m.m {
		clone.m[k] = v
	}
	return clone
}
