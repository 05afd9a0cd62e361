package scapegoat

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMapPutGetDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	m := NewOrderedMap[string, int]()
	for i, k := range []string{"one", "two", "three", "four", "five"} {
		replaced, err := m.Put(k, i+1)
		if err != nil || replaced {
			t.Fatalf("Put(%q) = %v, %v", k, replaced, err)
		}
	}
	if m.Len() != 5 {
		t.Fatalf("expected 5 entries, have %d", m.Len())
	}
	if v, ok, _ := m.Get("three"); !ok || v != 3 {
		t.Errorf("Get(three) = %d, %v", v, ok)
	}
	if _, ok, _ := m.Get("six"); ok {
		t.Errorf("did not expect to find six")
	}
	shape := m.tree.Preorder()
	replaced, err := m.Put("three", 33)
	if err != nil || !replaced {
		t.Fatalf("Put(three) should replace, is %v, %v", replaced, err)
	}
	if v, _, _ := m.Get("three"); v != 33 || m.Len() != 5 {
		t.Errorf("expected replaced value 33 and 5 entries, have %d and %d", v, m.Len())
	}
	if !sameKeys(shape, m.tree.Preorder()) {
		t.Errorf("replacing a value must not change the tree")
	}
	if s := m.Stats(); s.Inserts != 5 || s.PartialRebuilds+s.FullRebuilds != 0 {
		t.Errorf("replacing a value must not count as insert or rebuild, have %+v", s)
	}
	if ok, _ := m.Delete("two"); !ok {
		t.Errorf("expected to delete two")
	}
	if ok, _ := m.Delete("two"); ok {
		t.Errorf("did not expect to delete two twice")
	}
	if got := strings.Join(m.Keys(), ","); got != "five,four,one,three" {
		t.Errorf("keys = %q", got)
	}
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestMapOrderAndBounds(t *testing.T) {
	m := NewOrderedMap[int, string]()
	if _, _, ok := m.Min(); ok {
		t.Errorf("expected no minimum in empty map")
	}
	for i := 100; i > 0; i-- {
		if _, err := m.Put(i, fmt.Sprintf("v%d", i)); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	if k, v, _ := m.Min(); k != 1 || v != "v1" {
		t.Errorf("Min = %d/%s", k, v)
	}
	if k, v, _ := m.Max(); k != 100 || v != "v100" {
		t.Errorf("Max = %d/%s", k, v)
	}
	prev := 0
	for k, v := range m.All() {
		if k != prev+1 || v != fmt.Sprintf("v%d", k) {
			t.Fatalf("unexpected entry %d/%s after %d", k, v, prev)
		}
		prev = k
		if k == 50 {
			break
		}
	}
	if prev != 50 {
		t.Errorf("expected iteration to stop at 50, stopped at %d", prev)
	}
	if s := m.Stats(); s.Inserts != 100 || s.PartialRebuilds == 0 {
		t.Errorf("unexpected stats %+v", s)
	}
}

func TestMapRejectsNilKeys(t *testing.T) {
	m, err := NewMap[*int, string](func(a, b *int) int { return *a - *b })
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Put(nil, "x"); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("Put(nil): unexpected error %v", err)
	}
	if _, _, err := m.Get(nil); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("Get(nil): unexpected error %v", err)
	}
	if _, err := m.Delete(nil); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("Delete(nil): unexpected error %v", err)
	}
	if _, err := NewMap[int, int](nil); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("NewMap(nil): unexpected error %v", err)
	}
}

func sameKeys[K comparable, V any](a, b []entry[K, V]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].key != b[i].key {
			return false
		}
	}
	return true
}
