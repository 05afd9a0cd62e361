package bst

import "cmp"

// Tree is an unbalanced binary search tree over keys of type K.
//
// A Tree is a single-owner structure and must not be used concurrently.
type Tree[K any] struct {
	cfg  Config[K]
	mem  arena[K]
	root NodeID
}

// New creates an empty tree with validated configuration.
func New[K any](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree[K]{cfg: cfg}
	t.mem.init()
	return t, nil
}

// NewOrdered creates an empty tree for a naturally ordered key type.
func NewOrdered[K cmp.Ordered]() *Tree[K] {
	t, err := New(OrderedConfig[K]())
	assert(err == nil, "NewOrdered: cannot create tree")
	return t
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config[K] {
	return t.cfg
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == NoNode
}

// Size returns the number of keys in the tree.
func (t *Tree[K]) Size() int {
	if t == nil {
		return 0
	}
	return t.mem.count
}

// Height returns the height of the tree. The empty tree has height -1, a
// tree with a single node has height 0.
func (t *Tree[K]) Height() int {
	if t == nil {
		return -1
	}
	return t.height(t.root)
}

func (t *Tree[K]) height(n NodeID) int {
	if n == NoNode {
		return -1
	}
	node := t.mem.at(n)
	return 1 + max(t.height(node.left), t.height(node.right))
}

// Clear removes all keys.
func (t *Tree[K]) Clear() {
	t.mem.init()
	t.root = NoNode
}

// Contains reports whether a key equal to key is stored in the tree.
// It returns ErrInvalidArgument for a nil key.
func (t *Tree[K]) Contains(key K) (bool, error) {
	n, err := t.Lookup(key)
	return n != NoNode, err
}

// Get returns the stored key equal to key, if present.
// It returns ErrInvalidArgument for a nil key.
func (t *Tree[K]) Get(key K) (K, bool, error) {
	var zero K
	n, err := t.Lookup(key)
	if err != nil || n == NoNode {
		return zero, false, err
	}
	return t.mem.at(n).key, true, nil
}

// Lookup returns the first node on the search path holding a key equal to key,
// or NoNode.
func (t *Tree[K]) Lookup(key K) (NodeID, error) {
	if IsNil(key) {
		return NoNode, ErrInvalidArgument
	}
	cur := t.root
	for cur != NoNode {
		node := t.mem.at(cur)
		c := t.cfg.Compare(node.key, key)
		switch {
		case c == 0:
			return cur, nil
		case c < 0:
			cur = node.right
		default:
			cur = node.left
		}
	}
	return NoNode, nil
}

// Add inserts key into the tree. Keys equal to an existing key are placed in
// the left subtree of that key.
func (t *Tree[K]) Add(key K) error {
	_, _, err := t.Insert(key)
	return err
}

// Insert inserts key and returns the new node together with its depth
// (the root has depth 0).
func (t *Tree[K]) Insert(key K) (NodeID, int, error) {
	if IsNil(key) {
		return NoNode, -1, ErrInvalidArgument
	}
	root, added, depth := t.addToSubtree(t.root, NoNode, key, 0)
	t.setRoot(root)
	return added, depth, nil
}

// addToSubtree inserts key below n and returns the (possibly new) root of the
// subtree for the caller to relink, plus the inserted node and its depth.
func (t *Tree[K]) addToSubtree(n, parent NodeID, key K, depth int) (NodeID, NodeID, int) {
	if n == NoNode {
		id := t.mem.alloc(key, parent)
		return id, id, depth
	}
	if t.cfg.Compare(key, t.mem.at(n).key) <= 0 {
		child, added, d := t.addToSubtree(t.mem.at(n).left, n, key, depth+1)
		t.setLeft(n, child)
		return n, added, d
	}
	child, added, d := t.addToSubtree(t.mem.at(n).right, n, key, depth+1)
	t.setRight(n, child)
	return n, added, d
}

// Replace overwrites the stored key equal to key with key. This lets clients
// update satellite data of keys which compare equal. It reports whether a
// key has been replaced; the tree's shape never changes.
func (t *Tree[K]) Replace(key K) (bool, error) {
	n, err := t.Lookup(key)
	if err != nil || n == NoNode {
		return false, err
	}
	t.mem.at(n).key = key
	return true, nil
}

// Remove deletes a key equal to key and reports whether one was found.
// Nodes with two children receive the key of their in-order predecessor, which
// is then deleted from the left subtree.
func (t *Tree[K]) Remove(key K) (bool, error) {
	found, err := t.Contains(key)
	if err != nil || !found {
		return false, err
	}
	t.setRoot(t.removeFromSubtree(t.root, key))
	return true, nil
}

// removeFromSubtree must only be called on a subtree known to contain key.
func (t *Tree[K]) removeFromSubtree(n NodeID, key K) NodeID {
	assert(n != NoNode, "removeFromSubtree: key not present in subtree")
	node := t.mem.at(n)
	c := t.cfg.Compare(key, node.key)
	switch {
	case c < 0:
		t.setLeft(n, t.removeFromSubtree(node.left, key))
		return n
	case c > 0:
		t.setRight(n, t.removeFromSubtree(node.right, key))
		return n
	}
	left, right := node.left, node.right
	switch {
	case left == NoNode:
		t.mem.release(n)
		return right
	case right == NoNode:
		t.mem.release(n)
		return left
	}
	pred := t.rightmost(left)
	t.mem.at(n).key = t.mem.at(pred).key
	t.setLeft(n, t.removeRightmost(left))
	return n
}

func (t *Tree[K]) removeRightmost(n NodeID) NodeID {
	node := t.mem.at(n)
	if node.right == NoNode {
		left := node.left
		t.mem.release(n)
		return left
	}
	t.setRight(n, t.removeRightmost(node.right))
	return n
}

// Min returns the smallest key, or false for an empty tree.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	return t.mem.at(t.leftmost(t.root)).key, true
}

// Max returns the largest key, or false for an empty tree.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	return t.mem.at(t.rightmost(t.root)).key, true
}

func (t *Tree[K]) leftmost(n NodeID) NodeID {
	for l := t.mem.at(n).left; l != NoNode; l = t.mem.at(n).left {
		n = l
	}
	return n
}

func (t *Tree[K]) rightmost(n NodeID) NodeID {
	for r := t.mem.at(n).right; r != NoNode; r = t.mem.at(n).right {
		n = r
	}
	return n
}

// --- Linking ---------------------------------------------------------------

func (t *Tree[K]) setRoot(n NodeID) {
	t.root = n
	if n != NoNode {
		t.mem.at(n).parent = NoNode
	}
}

func (t *Tree[K]) setLeft(n, child NodeID) {
	t.mem.at(n).left = child
	if child != NoNode {
		t.mem.at(child).parent = n
	}
}

func (t *Tree[K]) setRight(n, child NodeID) {
	t.mem.at(n).right = child
	if child != NoNode {
		t.mem.at(child).parent = n
	}
}
