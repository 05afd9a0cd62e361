package bst

// Balance rebuilds the whole tree into a median-split shape. For n distinct
// keys the resulting height is ⌊log₂ n⌋.
func (t *Tree[K]) Balance() {
	if t.IsEmpty() {
		return
	}
	t.RebuildSubtree(t.root)
}

// RebuildSubtree reconstructs the subtree rooted at n into perfect weight
// balance and re-attaches it at n's position. It returns the root of the new
// subtree and the number of nodes rebuilt. The set of keys is unchanged, but
// every NodeID of the old subtree becomes invalid.
//
// The in-order keys of the subtree are extracted first, then fresh nodes are
// built by repeatedly choosing the median of the remaining range. Old slots
// are released only after the new subtree exists, and the new subtree is
// linked in last.
func (t *Tree[K]) RebuildSubtree(n NodeID) (NodeID, int) {
	if n == NoNode {
		return NoNode, 0
	}
	parent := t.mem.at(n).parent
	isLeft := parent != NoNode && t.mem.at(parent).left == n
	keys := t.appendInorder(make([]K, 0, t.SubtreeSize(n)), n)
	tracer().Debugf("bst: rebuilding subtree of %d nodes", len(keys))
	//
	fresh := t.build(keys, 0, len(keys)-1, parent)
	t.releaseSubtree(n)
	switch {
	case parent == NoNode:
		t.setRoot(fresh)
	case isLeft:
		t.setLeft(parent, fresh)
	default:
		t.setRight(parent, fresh)
	}
	return fresh, len(keys)
}

// build creates a subtree from the sorted range keys[lo..hi]. The median is
// advanced past keys equal to it, so that equal keys end up in the left
// subtree of the node holding them.
func (t *Tree[K]) build(keys []K, lo, hi int, parent NodeID) NodeID {
	if lo > hi {
		return NoNode
	}
	mid := lo + (hi-lo)/2
	for mid < hi && t.cfg.Compare(keys[mid+1], keys[mid]) == 0 {
		mid++
	}
	id := t.mem.alloc(keys[mid], parent)
	left := t.build(keys, lo, mid-1, id)
	right := t.build(keys, mid+1, hi, id)
	node := t.mem.at(id)
	node.left, node.right = left, right
	return id
}

func (t *Tree[K]) releaseSubtree(n NodeID) {
	if n == NoNode {
		return
	}
	node := t.mem.at(n)
	left, right := node.left, node.right
	t.mem.release(n)
	t.releaseSubtree(left)
	t.releaseSubtree(right)
}
