package bst

import (
	"math/rand"
	"slices"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./bst -run TestRandomizedAgainstModel -count=1
//   - Fuzz test:
//     go test ./bst -run '^$' -fuzz FuzzTreeOps -fuzztime=10s

func assertTreeMatchesModel(t *testing.T, tree *Tree[int], model []int) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invalid tree: %v", err)
	}
	got := tree.Inorder()
	want := slices.Clone(model)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Fatalf("model mismatch: got=%v want=%v", got, want)
	}
}

func applyOps(t *testing.T, tree *Tree[int], ops []byte) []int {
	t.Helper()
	var model []int
	for i := 0; i+1 < len(ops); i += 2 {
		key := int(ops[i+1] % 32)
		switch ops[i] % 4 {
		case 0, 1:
			if err := tree.Add(key); err != nil {
				t.Fatalf("Add(%d): %v", key, err)
			}
			model = append(model, key)
		case 2:
			ok, err := tree.Remove(key)
			if err != nil {
				t.Fatalf("Remove(%d): %v", key, err)
			}
			idx := slices.Index(model, key)
			if ok != (idx >= 0) {
				t.Fatalf("Remove(%d) = %v, model disagrees", key, ok)
			}
			if ok {
				model = slices.Delete(model, idx, idx+1)
			}
		case 3:
			tree.Balance()
		}
	}
	return model
}

func TestRandomizedAgainstModel(t *testing.T) {
	r := rand.New(rand.NewSource(4711))
	for round := range 50 {
		ops := make([]byte, 2*(10+r.Intn(200)))
		r.Read(ops)
		tree := NewOrdered[int]()
		model := applyOps(t, tree, ops)
		assertTreeMatchesModel(t, tree, model)
		if tree.Size() != len(model) {
			t.Fatalf("round %d: size %d != model size %d", round, tree.Size(), len(model))
		}
	}
}

func TestBalanceIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	tree := NewOrdered[int]()
	for _, k := range r.Perm(1000) {
		_ = tree.Add(k)
	}
	tree.Balance()
	once := tree.Preorder()
	h := tree.Height()
	tree.Balance()
	if !slices.Equal(once, tree.Preorder()) {
		t.Errorf("balancing a balanced tree changed its shape")
	}
	if h != tree.Height() || h > 10 { // ⌈log₂ 1000⌉ = 10
		t.Errorf("unexpected height %d after balance", tree.Height())
	}
	if !tree.IsBalanced() {
		t.Errorf("expected AVL-balanced shape after balance")
	}
}

func FuzzTreeOps(f *testing.F) {
	f.Add([]byte{0, 5, 0, 3, 2, 5, 3, 0})
	f.Add([]byte{0, 1, 0, 1, 0, 1, 2, 1, 3, 3})
	f.Fuzz(func(t *testing.T, ops []byte) {
		tree := NewOrdered[int]()
		model := applyOps(t, tree, ops)
		assertTreeMatchesModel(t, tree, model)
	})
}
