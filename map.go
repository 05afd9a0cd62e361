package scapegoat

import (
	"cmp"
	"iter"

	"github.com/npillmayer/scapegoat/bst"
)

type entry[K, V any] struct {
	key   K
	value V
}

// Map is an ordered map, built on a scapegoat tree of key/value entries
// ordered by key. Keys are unique.
type Map[K, V any] struct {
	tree *Tree[entry[K, V]]
}

// NewMap creates an empty map ordering keys with compare.
func NewMap[K, V any](compare func(a, b K) int) (*Map[K, V], error) {
	cfg := Config[entry[K, V]]{}
	if compare != nil {
		cfg.Compare = func(a, b entry[K, V]) int {
			return compare(a.key, b.key)
		}
	}
	tree, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// NewOrderedMap creates an empty map for a naturally ordered key type.
func NewOrderedMap[K cmp.Ordered, V any]() *Map[K, V] {
	m, err := NewMap[K, V](cmp.Compare[K])
	assert(err == nil, "NewOrderedMap: cannot create map")
	return m
}

// Put associates value with key. It reports whether an existing value has
// been replaced; replacing a value does not change the shape of the tree.
func (m *Map[K, V]) Put(key K, value V) (bool, error) {
	if bst.IsNil(key) {
		return false, argumentError(bst.ErrInvalidArgument)
	}
	e := entry[K, V]{key: key, value: value}
	replaced, err := m.tree.replace(e)
	if err != nil || replaced {
		return replaced, err
	}
	return false, m.tree.Add(e)
}

// Get returns the value associated with key.
func (m *Map[K, V]) Get(key K) (V, bool, error) {
	var zero V
	if bst.IsNil(key) {
		return zero, false, argumentError(bst.ErrInvalidArgument)
	}
	e, found, err := m.tree.Get(entry[K, V]{key: key})
	if err != nil || !found {
		return zero, false, err
	}
	return e.value, true, nil
}

// Delete removes key and its value. It reports whether key was present.
func (m *Map[K, V]) Delete(key K) (bool, error) {
	if bst.IsNil(key) {
		return false, argumentError(bst.ErrInvalidArgument)
	}
	return m.tree.Remove(entry[K, V]{key: key})
}

// Len returns the number of keys in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Size()
}

// Min returns the smallest key and its value.
func (m *Map[K, V]) Min() (K, V, bool) {
	e, ok := m.tree.Min()
	return e.key, e.value, ok
}

// Max returns the largest key and its value.
func (m *Map[K, V]) Max() (K, V, bool) {
	e, ok := m.tree.Max()
	return e.key, e.value, ok
}

// Keys returns all keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for e := range m.tree.All() {
		keys = append(keys, e.key)
	}
	return keys
}

// All returns an iterator over a snapshot of all key/value pairs in
// ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	entries := m.tree.All()
	return func(yield func(K, V) bool) {
		for e := range entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Stats returns operation and rebuild counters of the underlying tree.
func (m *Map[K, V]) Stats() Stats {
	return m.tree.Stats()
}

// Check validates the invariants of the underlying tree.
func (m *Map[K, V]) Check() error {
	return m.tree.Check()
}
