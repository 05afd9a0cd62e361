package bst

// Low-level navigation for balancing layers built on top of Tree.
//
// All of these accept NoNode and answer with NoNode, zero values or 0,
// respectively. A NodeID must not be kept across a mutating call.

// Root returns the root node.
func (t *Tree[K]) Root() NodeID {
	return t.root
}

// Key returns the key stored at n.
func (t *Tree[K]) Key(n NodeID) K {
	return t.mem.at(n).key
}

// Left returns the left child of n.
func (t *Tree[K]) Left(n NodeID) NodeID {
	return t.mem.at(n).left
}

// Right returns the right child of n.
func (t *Tree[K]) Right(n NodeID) NodeID {
	return t.mem.at(n).right
}

// Parent returns the parent of n, or NoNode for the root.
func (t *Tree[K]) Parent(n NodeID) NodeID {
	return t.mem.at(n).parent
}

// Sibling returns the other child of n's parent.
func (t *Tree[K]) Sibling(n NodeID) NodeID {
	p := t.mem.at(n).parent
	if p == NoNode {
		return NoNode
	}
	parent := t.mem.at(p)
	if parent.left == n {
		return parent.right
	}
	return parent.left
}

// SubtreeSize counts the nodes of the subtree rooted at n.
func (t *Tree[K]) SubtreeSize(n NodeID) int {
	if n == NoNode {
		return 0
	}
	node := t.mem.at(n)
	return 1 + t.SubtreeSize(node.left) + t.SubtreeSize(node.right)
}

// Depth returns the number of edges between n and the root.
func (t *Tree[K]) Depth(n NodeID) int {
	if n == NoNode {
		return -1
	}
	d := 0
	for p := t.mem.at(n).parent; p != NoNode; p = t.mem.at(p).parent {
		d++
	}
	return d
}
