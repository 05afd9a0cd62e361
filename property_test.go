package scapegoat

import (
	"math/rand"
	"slices"
	"testing"
)

// Randomized operation sequences, checked against a sorted slice as model
// and against all tree invariants after every single operation.
//
// How to run:
//
//	go test -run TestRandomOperations -count=1 .
//	go test -fuzz FuzzOperations -fuzztime=30s .
func TestRandomOperations(t *testing.T) {
	for _, seed := range []int64{1, 42, 4711, 31337} {
		rng := rand.New(rand.NewSource(seed))
		tree := NewOrdered[int]()
		var model []int
		for step := range 3000 {
			key := rng.Intn(500)
			switch rng.Intn(3) {
			case 0, 1:
				if found, _ := tree.Contains(key); found {
					continue // keep keys distinct
				}
				if err := tree.Add(key); err != nil {
					t.Fatalf("seed %d step %d: Add(%d): %v", seed, step, key, err)
				}
				i, _ := slices.BinarySearch(model, key)
				model = slices.Insert(model, i, key)
			default:
				ok, err := tree.Remove(key)
				if err != nil {
					t.Fatalf("seed %d step %d: Remove(%d): %v", seed, step, key, err)
				}
				i, inModel := slices.BinarySearch(model, key)
				if ok != inModel {
					t.Fatalf("seed %d step %d: Remove(%d) = %v, model says %v", seed, step, key, ok, inModel)
				}
				if ok {
					model = slices.Delete(model, i, i+1)
				}
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("seed %d step %d: %v", seed, step, err)
			}
		}
		if !slices.Equal(tree.Inorder(), model) {
			t.Fatalf("seed %d: tree keys differ from model", seed)
		}
		t.Logf("seed %d: size=%d height=%d stats=%+v", seed, tree.Size(), tree.Height(), tree.Stats())
	}
}

// Rebuilds must never change the multiset of keys, including equal keys.
func TestRebuildsKeepDuplicates(t *testing.T) {
	tree := NewOrdered[int]()
	var model []int
	for i := range 200 {
		key := i % 7
		_ = tree.Add(key)
		j, _ := slices.BinarySearch(model, key)
		model = slices.Insert(model, j, key)
	}
	if !slices.Equal(tree.Inorder(), model) {
		t.Fatalf("keys changed by rebuilds")
	}
	tree.Balance()
	if !slices.Equal(tree.Inorder(), model) {
		t.Fatalf("keys changed by balancing")
	}
	if err := tree.base.Check(); err != nil {
		t.Fatal(err)
	}
	for range 200 {
		if ok, _ := tree.Remove(3); !ok {
			break
		}
	}
	if found, _ := tree.Contains(3); found {
		t.Errorf("expected all copies of 3 to be removed")
	}
}

func FuzzOperations(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7})
	f.Add([]byte{200, 10, 138, 10, 250, 9, 129, 3})
	f.Fuzz(func(t *testing.T, ops []byte) {
		tree := NewOrdered[byte]()
		for _, op := range ops {
			key := op & 0x3f
			if op&0x80 != 0 {
				if _, err := tree.Remove(key); err != nil {
					t.Fatal(err)
				}
			} else if found, _ := tree.Contains(key); !found {
				if err := tree.Add(key); err != nil {
					t.Fatal(err)
				}
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("after op %#x: %v", op, err)
			}
		}
	})
}
