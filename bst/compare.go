package bst

// Equals reports whether other has the same shape as t and holds equal keys
// at corresponding positions. Keys are compared with t's comparator.
func (t *Tree[K]) Equals(other *Tree[K]) bool {
	if t == nil || other == nil {
		return t.IsEmpty() && other.IsEmpty()
	}
	return t.subtreeEquals(t.root, other, other.root)
}

func (t *Tree[K]) subtreeEquals(n NodeID, other *Tree[K], m NodeID) bool {
	if n == NoNode || m == NoNode {
		return n == m
	}
	a, b := t.mem.at(n), other.mem.at(m)
	if t.cfg.Compare(a.key, b.key) != 0 {
		return false
	}
	return t.subtreeEquals(a.left, other, b.left) && t.subtreeEquals(a.right, other, b.right)
}

// SameValues reports whether t and other hold the same keys in sorted order,
// regardless of their shapes.
func (t *Tree[K]) SameValues(other *Tree[K]) bool {
	if t.Size() != other.Size() {
		return false
	}
	if t.IsEmpty() {
		return true
	}
	mine, theirs := t.Inorder(), other.Inorder()
	for i := range mine {
		if t.cfg.Compare(mine[i], theirs[i]) != 0 {
			return false
		}
	}
	return true
}

// IsBalanced reports whether the heights of the two subtrees of every node
// differ by at most one (AVL balance). This is a diagnostic only; package
// scapegoat balances by weight, not by height.
func (t *Tree[K]) IsBalanced() bool {
	_, ok := t.balancedHeight(t.root)
	return ok
}

func (t *Tree[K]) balancedHeight(n NodeID) (int, bool) {
	if n == NoNode {
		return -1, true
	}
	node := t.mem.at(n)
	lh, ok := t.balancedHeight(node.left)
	if !ok {
		return 0, false
	}
	rh, ok := t.balancedHeight(node.right)
	if !ok || lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}
