package bst

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("bst: invalid configuration")
	// ErrInvalidArgument signals an absent (nil) key.
	ErrInvalidArgument = errors.New("bst: invalid argument")
	// ErrCorrupted signals a violated structural invariant, reported by Check.
	ErrCorrupted = errors.New("bst: corrupted tree")
)
