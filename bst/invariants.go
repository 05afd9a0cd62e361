package bst

import "fmt"

// Check validates structural tree invariants: key ordering, parent links and
// arena bookkeeping.
//
// This checker walks the complete tree and is intended for tests.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupted)
	}
	if t.root != NoNode && t.mem.at(t.root).parent != NoNode {
		return fmt.Errorf("%w: root has a parent", ErrCorrupted)
	}
	reached, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		tracer().Errorf("bst: %v", err)
		return err
	}
	if reached != t.mem.count {
		return fmt.Errorf("%w: size mismatch (%d reachable != %d counted)", ErrCorrupted, reached, t.mem.count)
	}
	if slots := len(t.mem.nodes) - 1; reached+len(t.mem.free) != slots {
		return fmt.Errorf("%w: arena leak (%d reachable + %d free != %d slots)",
			ErrCorrupted, reached, len(t.mem.free), slots)
	}
	return nil
}

// checkNode verifies that all keys below n lie in (lower, upper]. A nil bound
// is unbounded.
func (t *Tree[K]) checkNode(n NodeID, lower, upper *K) (int, error) {
	if n == NoNode {
		return 0, nil
	}
	if int(n) >= len(t.mem.nodes) {
		return 0, fmt.Errorf("%w: node id %d out of arena", ErrCorrupted, n)
	}
	node := t.mem.at(n)
	if lower != nil && t.cfg.Compare(node.key, *lower) <= 0 {
		return 0, fmt.Errorf("%w: key at node %d not greater than its right-ancestor", ErrCorrupted, n)
	}
	if upper != nil && t.cfg.Compare(node.key, *upper) > 0 {
		return 0, fmt.Errorf("%w: key at node %d greater than its left-ancestor", ErrCorrupted, n)
	}
	for _, child := range [2]NodeID{node.left, node.right} {
		if child != NoNode && t.mem.at(child).parent != n {
			return 0, fmt.Errorf("%w: broken parent link at node %d", ErrCorrupted, child)
		}
	}
	key := node.key
	l, err := t.checkNode(node.left, lower, &key)
	if err != nil {
		return 0, err
	}
	r, err := t.checkNode(node.right, &key, upper)
	if err != nil {
		return 0, err
	}
	return 1 + l + r, nil
}
