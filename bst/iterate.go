package bst

import "iter"

// Order selects a traversal order for Walk.
type Order uint8

const (
	PreOrder  Order = iota // node, left, right
	InOrder                // left, node, right
	PostOrder              // left, right, node
	// ReverseOrder visits right, node, left, i.e. keys in descending order.
	ReverseOrder
)

// Walk visits all nodes in the given order. The callback receives each key
// together with the depth of its node. Iteration stops early if fn returns
// false. The tree must not be mutated from within fn.
func (t *Tree[K]) Walk(order Order, fn func(key K, depth int) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.walk(t.root, 0, order, fn)
}

func (t *Tree[K]) walk(n NodeID, depth int, order Order, fn func(K, int) bool) bool {
	if n == NoNode {
		return true
	}
	node := t.mem.at(n)
	first, second := node.left, node.right
	if order == ReverseOrder {
		first, second = second, first
	}
	if order == PreOrder && !fn(node.key, depth) {
		return false
	}
	if !t.walk(first, depth+1, order, fn) {
		return false
	}
	if (order == InOrder || order == ReverseOrder) && !fn(node.key, depth) {
		return false
	}
	if !t.walk(second, depth+1, order, fn) {
		return false
	}
	if order == PostOrder && !fn(node.key, depth) {
		return false
	}
	return true
}

// Preorder returns all keys in pre-order.
func (t *Tree[K]) Preorder() []K {
	return t.collect(PreOrder)
}

// Inorder returns all keys in ascending order.
func (t *Tree[K]) Inorder() []K {
	if t.IsEmpty() {
		return []K{}
	}
	return t.appendInorder(make([]K, 0, t.Size()), t.root)
}

// Postorder returns all keys in post-order.
func (t *Tree[K]) Postorder() []K {
	return t.collect(PostOrder)
}

// All returns an iterator over all keys in ascending order.
//
// The keys are materialized when the iterator is created, so the sequence is
// not affected by later mutations of the tree.
func (t *Tree[K]) All() iter.Seq[K] {
	keys := t.Inorder()
	return func(yield func(K) bool) {
		for _, k := range keys {
			if !yield(k) {
				return
			}
		}
	}
}

func (t *Tree[K]) collect(order Order) []K {
	keys := make([]K, 0, t.Size())
	t.Walk(order, func(key K, _ int) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (t *Tree[K]) appendInorder(keys []K, n NodeID) []K {
	if n == NoNode {
		return keys
	}
	node := t.mem.at(n)
	keys = t.appendInorder(keys, node.left)
	keys = append(keys, node.key)
	return t.appendInorder(keys, node.right)
}
