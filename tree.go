package scapegoat

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"math"

	"github.com/npillmayer/scapegoat/bst"
)

// Tree is an ordered set of keys, balanced by occasional partial or full
// rebuilds.
//
// A tree created by
//
//	Tree[K]{}
//
// is not usable; create trees with New or NewOrdered.
type Tree[K any] struct {
	cfg        Config[K]
	base       *bst.Tree[K]
	upperBound int // high-water mark of the size since the last rebuild
	stats      Stats
}

// New creates an empty tree with validated configuration.
func New[K any](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	base, err := bst.New(cfg.base())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIllegalArguments, err)
	}
	return &Tree[K]{cfg: cfg, base: base}, nil
}

// NewOrdered creates an empty tree for a naturally ordered key type.
func NewOrdered[K cmp.Ordered](opts ...Option[K]) *Tree[K] {
	t, err := New(OrderedConfig(opts...))
	assert(err == nil, "NewOrdered: cannot create tree")
	return t
}

// Add inserts key. If the insertion leaves the tree out of balance, the
// subtree of the scapegoat is rebuilt.
//
// Absent (nil) keys are rejected with an error wrapping ErrIllegalArguments.
func (t *Tree[K]) Add(key K) error {
	n, depth, err := t.base.Insert(key)
	if err != nil {
		return argumentError(err)
	}
	t.upperBound++
	t.stats.Inserts++
	// Before this insertion the height criterion held for upperBound-1, so the
	// tree is now too high exactly if the new node is too deep.
	if cause := t.violation(depth); cause != NoCriterion {
		tracer().Infof("scapegoat: %s criterion violated after insert (size=%d, upper bound=%d, depth=%d)",
			cause, t.Size(), t.upperBound, depth)
		bound := t.upperBound
		t.rebuild(PartialRebuild, t.findScapegoat(n), cause)
		// After deletions, resetting the upper bound tightens the height bound,
		// possibly below the depth of branches the rebuild did not touch.
		if t.upperBound < bound && !t.heightHolds(t.Height()) {
			tracer().Infof("scapegoat: height criterion violated after reset of upper bound")
			t.rebuild(FullRebuild, t.base.Root(), HeightCriterion)
		}
	}
	return nil
}

// findScapegoat walks up from n to the first ancestor A for which the child
// on the path holds more than ⅔ of A's nodes. Subtree sizes are accumulated
// on the way, so only siblings' subtrees are counted. The walk ends at the
// root at the latest.
func (t *Tree[K]) findScapegoat(n bst.NodeID) bst.NodeID {
	child, size := n, 1
	for {
		parent := t.base.Parent(child)
		if parent == bst.NoNode {
			return child
		}
		parentSize := size + 1 + t.base.SubtreeSize(t.base.Sibling(child))
		if 3*size > 2*parentSize {
			return parent
		}
		child, size = parent, parentSize
	}
}

// Remove deletes a key equal to key and reports whether one was present.
// If the deletion violates the weight criterion, the complete tree is rebuilt.
//
// Absent (nil) keys are rejected with an error wrapping ErrIllegalArguments.
func (t *Tree[K]) Remove(key K) (bool, error) {
	ok, err := t.base.Remove(key)
	if err != nil {
		return false, argumentError(err)
	}
	if !ok {
		return false, nil
	}
	t.stats.Removals++
	// A deletion never increases the height and leaves the upper bound alone,
	// so only the weight criterion can break.
	if !t.weightHolds() {
		tracer().Infof("scapegoat: weight criterion violated after remove (size=%d, upper bound=%d)",
			t.Size(), t.upperBound)
		t.rebuild(FullRebuild, t.base.Root(), WeightCriterion)
	}
	return true, nil
}

// Balance rebuilds the complete tree and resets the upper bound.
func (t *Tree[K]) Balance() {
	t.rebuild(FullRebuild, t.base.Root(), NoCriterion)
}

func (t *Tree[K]) rebuild(kind RebuildKind, n bst.NodeID, cause Criterion) {
	ev := RebuildEvent{
		Kind:       kind,
		Cause:      cause,
		Depth:      t.base.Depth(n),
		UpperBound: t.upperBound,
	}
	_, ev.Nodes = t.base.RebuildSubtree(n)
	t.upperBound = t.base.Size()
	ev.Size = t.upperBound
	if kind == PartialRebuild {
		t.stats.PartialRebuilds++
	} else {
		t.stats.FullRebuilds++
	}
	t.stats.RebuiltNodes += ev.Nodes
	tracer().Debugf("scapegoat: %s", ev)
	if t.cfg.OnRebuild != nil {
		t.cfg.OnRebuild(ev)
	}
}

// --- Criteria --------------------------------------------------------------

// weightHolds checks size ≥ ⅔ · upperBound.
func (t *Tree[K]) weightHolds() bool {
	return 3*t.Size() >= 2*t.upperBound
}

// heightHolds checks h ≤ log_{3/2}(upperBound).
func (t *Tree[K]) heightHolds(h int) bool {
	return h <= maxHeight(t.upperBound)
}

// maxHeight returns ⌊log_{3/2}(n)⌋, the largest height allowed for upper
// bound n, and -1 for n = 0.
func maxHeight(n int) int {
	if n <= 0 {
		return -1
	}
	return int(math.Floor(math.Log(float64(n)) / log32))
}

var log32 = math.Log(1.5)

func (t *Tree[K]) violation(h int) Criterion {
	if !t.weightHolds() {
		return WeightCriterion
	}
	if !t.heightHolds(h) {
		return HeightCriterion
	}
	return NoCriterion
}

// --- Queries ---------------------------------------------------------------

// Contains reports whether a key equal to key is in the tree.
func (t *Tree[K]) Contains(key K) (bool, error) {
	found, err := t.base.Contains(key)
	return found, argumentError(err)
}

// replace overwrites the stored key equal to key without changing the shape
// of the tree.
func (t *Tree[K]) replace(key K) (bool, error) {
	ok, err := t.base.Replace(key)
	return ok, argumentError(err)
}

// Get returns the stored key equal to key, if present.
func (t *Tree[K]) Get(key K) (K, bool, error) {
	k, found, err := t.base.Get(key)
	return k, found, argumentError(err)
}

// Size returns the number of keys in the tree.
func (t *Tree[K]) Size() int {
	return t.base.Size()
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.base.IsEmpty()
}

// Height returns the height of the tree, -1 for the empty tree.
func (t *Tree[K]) Height() int {
	return t.base.Height()
}

// UpperBound returns the largest size the tree has reached since the last
// rebuild.
func (t *Tree[K]) UpperBound() int {
	return t.upperBound
}

// Stats returns operation and rebuild counters.
func (t *Tree[K]) Stats() Stats {
	return t.stats
}

// Min returns the smallest key, or false for an empty tree.
func (t *Tree[K]) Min() (K, bool) {
	return t.base.Min()
}

// Max returns the largest key, or false for an empty tree.
func (t *Tree[K]) Max() (K, bool) {
	return t.base.Max()
}

// Preorder returns all keys in pre-order.
func (t *Tree[K]) Preorder() []K {
	return t.base.Preorder()
}

// Inorder returns all keys in ascending order.
func (t *Tree[K]) Inorder() []K {
	return t.base.Inorder()
}

// Postorder returns all keys in post-order.
func (t *Tree[K]) Postorder() []K {
	return t.base.Postorder()
}

// All returns an iterator over a snapshot of all keys in ascending order.
func (t *Tree[K]) All() iter.Seq[K] {
	return t.base.All()
}

// Walk visits all keys in the given order, together with the depth of their
// nodes. The tree must not be mutated from within fn.
func (t *Tree[K]) Walk(order bst.Order, fn func(key K, depth int) bool) {
	t.base.Walk(order, fn)
}

// Equals reports whether other has the same shape and keys as t.
func (t *Tree[K]) Equals(other *Tree[K]) bool {
	return t.base.Equals(other.base)
}

// SameValues reports whether t and other hold the same keys, regardless of
// their shapes.
func (t *Tree[K]) SameValues(other *Tree[K]) bool {
	return t.base.SameValues(other.base)
}

// IsBalanced reports whether the tree happens to be AVL-balanced. This is a
// diagnostic; scapegoat trees are not required to be AVL-balanced.
func (t *Tree[K]) IsBalanced() bool {
	return t.base.IsBalanced()
}

// WriteDot outputs the tree in Graphviz DOT format (for debugging purposes).
func (t *Tree[K]) WriteDot(w io.Writer, label func(K) string) error {
	return t.base.WriteDot(w, label)
}

// Check validates the structure of the tree and both balance criteria.
func (t *Tree[K]) Check() error {
	if err := t.base.Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	if t.Size() > t.upperBound {
		return fmt.Errorf("%w: size %d exceeds upper bound %d", ErrInvariant, t.Size(), t.upperBound)
	}
	if !t.weightHolds() {
		return fmt.Errorf("%w: size %d below ⅔ of upper bound %d", ErrInvariant, t.Size(), t.upperBound)
	}
	if h := t.Height(); !t.heightHolds(h) {
		return fmt.Errorf("%w: height %d exceeds log_{3/2}(%d)", ErrInvariant, h, t.upperBound)
	}
	return nil
}

func argumentError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrIllegalArguments, err)
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
