package bst

import (
	"cmp"
	"fmt"
	"reflect"
)

// Config configures a binary search tree.
type Config[K any] struct {
	// Compare defines a total order on keys. It returns a negative number if
	// a < b, zero if a == b and a positive number if a > b.
	Compare func(a, b K) int
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}

// OrderedConfig returns a configuration comparing keys with cmp.Compare.
func OrderedConfig[K cmp.Ordered]() Config[K] {
	return Config[K]{Compare: cmp.Compare[K]}
}

// IsNil reports whether key is an absent key, i.e. a nil pointer, interface,
// map, slice, function or channel. Keys of any other kind are never absent.
func IsNil[K any](key K) bool {
	v := reflect.ValueOf(&key).Elem()
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
